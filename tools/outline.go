package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type CourseOutlineInput struct {
	CourseName string `json:"course_name" jsonschema_description:"Course title to fetch the outline for (partial matches allowed)."`
}

var CourseOutlineInputSchema = GenerateSchema[CourseOutlineInput]()

// CourseOutlineTool returns a course's title, link, instructor and full
// lesson list for structure questions.
type CourseOutlineTool struct {
	store CourseStore
}

func NewCourseOutlineTool(st CourseStore) *CourseOutlineTool {
	return &CourseOutlineTool{store: st}
}

func (t *CourseOutlineTool) Definition() ToolDefinition {
	return ToolDefinition{
		Name:        "get_course_outline",
		Description: "Get the complete outline of a course: title, link, instructor, and all lessons with numbers and titles.",
		InputSchema: CourseOutlineInputSchema,
	}
}

func (t *CourseOutlineTool) Execute(ctx context.Context, input json.RawMessage) (string, []Source, error) {
	var in CourseOutlineInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", nil, err
	}

	c, err := t.store.Outline(ctx, in.CourseName)
	if err != nil {
		return fmt.Sprintf("No course found matching '%s'", in.CourseName), nil, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Course: %s\n", c.Title)
	if c.Link != "" {
		fmt.Fprintf(&b, "Link: %s\n", c.Link)
	}
	if c.Instructor != "" {
		fmt.Fprintf(&b, "Instructor: %s\n", c.Instructor)
	}
	fmt.Fprintf(&b, "\nLessons (%d):\n", len(c.Lessons))
	for _, l := range c.Lessons {
		fmt.Fprintf(&b, "%d. %s", l.Number, l.Title)
		if l.Link != "" {
			fmt.Fprintf(&b, " (%s)", l.Link)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n"), []Source{{Label: c.Title, Link: c.Link}}, nil
}
