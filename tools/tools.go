package tools

import (
	"context"
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/invopop/jsonschema"

	"github.com/joakimAbdinurIusuf/claudecode-ragchatbot/store"
)

// ToolDefinition describes one tool the model may call: wire name, model-facing
// description, and the JSON schema of its input.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema anthropic.ToolInputSchemaParam
}

// Source is a citation produced by one tool execution, surfaced to callers
// that want to show where an answer came from.
type Source struct {
	Label string `json:"label"`
	Link  string `json:"link,omitempty"`
}

// Tool is a single model-invocable capability. Execute returns the string
// result sent back to the model plus any citation sources; sources are
// returned explicitly rather than accumulated in shared state.
type Tool interface {
	Definition() ToolDefinition
	Execute(ctx context.Context, input json.RawMessage) (string, []Source, error)
}

// CourseStore is the search surface the course tools consume.
type CourseStore interface {
	Search(ctx context.Context, query, courseName string, lessonNumber int) (store.SearchResults, error)
	Outline(ctx context.Context, courseName string) (store.Course, error)
}

// GenerateSchema derives a JSON Schema for T from its struct tags.
func GenerateSchema[T any]() anthropic.ToolInputSchemaParam {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return anthropic.ToolInputSchemaParam{
		Properties: schema.Properties,
		Required:   schema.Required,
	}
}
