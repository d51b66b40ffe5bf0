package engine

import (
	"github.com/anthropics/anthropic-sdk-go"

	"github.com/joakimAbdinurIusuf/claudecode-ragchatbot/tools"
)

// systemPrompt is the static behavioral policy sent with every request.
const systemPrompt = `You are an AI assistant specialized in course materials and educational content with access to comprehensive search and outline tools for course information.

Tool Usage Guidelines - Sequential Tool Calling Enabled:
- **Course outline/structure questions**: ALWAYS use the get_course_outline tool to get complete course information including title, course link, and all lessons with numbers and titles
- **Course content questions**: ALWAYS use the search_course_content tool first for ANY topic that might be covered in course materials (ML, AI, programming, data science, etc.)
- **Sequential usage**: You can make up to 2 rounds of tool calls per user query for complex queries
- **Round 1**: Make your initial search or outline request to gather foundational information
- **Round 2**: If beneficial, make a follow-up tool call to search for additional details, comparisons, or specific aspects
- Synthesize tool results into accurate, fact-based responses
- If tools yield no results, state this clearly without offering alternatives

Response Protocol:
- **When in doubt, search first**: If a query could possibly relate to course content, use search_course_content tool
- **Sequential strategy**: After getting initial results, consider if a follow-up search would add significant value
- **Course outline questions** (e.g., "What is the outline of...", "What lessons are in...", "Course structure..."): Use get_course_outline tool, then search specific lessons if needed
- **Comparison queries**: Search each topic/course separately for comprehensive comparisons
- **Only use general knowledge** for clearly unrelated topics (geography, history, basic facts not covered in courses)
- **No meta-commentary**:
 - Provide direct answers only — no reasoning process, tool explanations, or question-type analysis
 - Do not mention "based on the search results" or "using the outline tool"

For Outline Queries:
- Always include the complete course title, course link (if available), and the full lesson list
- Format each lesson as: lesson number, lesson title, and lesson link (if available)
- Present information in a clear, structured format

All responses must be:
1. **Brief, Concise and focused** - Get to the point quickly
2. **Educational** - Maintain instructional value
3. **Clear** - Use accessible language
4. **Example-supported** - Include relevant examples when they aid understanding
Provide only the direct answer to what was asked.`

// buildParams assembles the request for round one: policy (plus delimited
// prior conversation when present) as system content, the query as the seed
// user message, and tool schemas with automatic tool choice when supplied.
// Later rounds reuse the same params with messages appended, so system
// content and tool availability persist across the whole run.
func (g *Generator) buildParams(query, history string, toolDefs []tools.ToolDefinition) anthropic.MessageNewParams {
	system := systemPrompt
	if history != "" {
		system = systemPrompt + "\n\nPrevious conversation:\n" + history
	}

	params := anthropic.MessageNewParams{
		Model:       g.Model,
		MaxTokens:   g.MaxTokens,
		Temperature: anthropic.Float(0),
		System:      []anthropic.TextBlockParam{{Text: system}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(query))},
	}
	if len(toolDefs) > 0 {
		params.Tools = anthropicTools(toolDefs)
		params.ToolChoice = anthropic.ToolChoiceUnionParam{OfAuto: &anthropic.ToolChoiceAutoParam{}}
	}
	return params
}

func anthropicTools(defs []tools.ToolDefinition) []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(defs))
	for _, t := range defs {
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: t.InputSchema,
		}})
	}
	return out
}
