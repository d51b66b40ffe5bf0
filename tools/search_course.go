package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type SearchCourseInput struct {
	Query        string `json:"query" jsonschema_description:"What to look for in the course materials."`
	CourseName   string `json:"course_name,omitempty" jsonschema_description:"Course title to restrict the search to (partial matches allowed, e.g. 'MCP', 'Introduction')."`
	LessonNumber int    `json:"lesson_number,omitempty" jsonschema_description:"Specific lesson number to search within (e.g. 1, 2, 3)."`
}

var SearchCourseInputSchema = GenerateSchema[SearchCourseInput]()

// CourseSearchTool answers content questions by keyword search over indexed
// course chunks. Search misses and store-level search errors are reported as
// the tool result string so the model can tell the user what happened.
type CourseSearchTool struct {
	store CourseStore
}

func NewCourseSearchTool(st CourseStore) *CourseSearchTool {
	return &CourseSearchTool{store: st}
}

func (t *CourseSearchTool) Definition() ToolDefinition {
	return ToolDefinition{
		Name:        "search_course_content",
		Description: "Search course materials with smart course name matching and lesson filtering.",
		InputSchema: SearchCourseInputSchema,
	}
}

func (t *CourseSearchTool) Execute(ctx context.Context, input json.RawMessage) (string, []Source, error) {
	var in SearchCourseInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", nil, err
	}

	res, err := t.store.Search(ctx, in.Query, in.CourseName, in.LessonNumber)
	if err != nil {
		return err.Error(), nil, nil
	}
	if res.Empty() {
		return emptySearchMessage(in), nil, nil
	}

	var blocks []string
	var sources []Source
	for _, hit := range res.Hits {
		header := fmt.Sprintf("[%s]", hit.CourseTitle)
		label := hit.CourseTitle
		if hit.LessonNumber > 0 {
			header = fmt.Sprintf("[%s - Lesson %d]", hit.CourseTitle, hit.LessonNumber)
			label = fmt.Sprintf("%s - Lesson %d", hit.CourseTitle, hit.LessonNumber)
		}
		blocks = append(blocks, header+"\n"+hit.Content)
		sources = append(sources, Source{Label: label, Link: hit.Link})
	}
	return strings.Join(blocks, "\n\n"), sources, nil
}

func emptySearchMessage(in SearchCourseInput) string {
	msg := "No relevant content found"
	if in.CourseName != "" {
		msg += fmt.Sprintf(" in course '%s'", in.CourseName)
	}
	if in.LessonNumber > 0 {
		msg += fmt.Sprintf(" in lesson %d", in.LessonNumber)
	}
	return msg + "."
}
