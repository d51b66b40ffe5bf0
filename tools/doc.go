// Package tools defines tool contracts and the course-material tools.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Manager: name -> Tool dispatch plus citation-source aggregation.
//   - Course tools: search_course_content, get_course_outline.
//   - Invariant: sources flow back through Execute return values; the
//     Manager is the only accumulator and callers reset it between queries.
package tools
