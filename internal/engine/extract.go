package engine

import "github.com/anthropics/anthropic-sdk-go"

const (
	// noContentAnswer is returned when a response carries no content at all.
	noContentAnswer = "I apologize, but I couldn't generate a response."
	// noTextAnswer is returned when a response has content but no text block,
	// e.g. a tool-shaped response at the round cap.
	noTextAnswer = "I processed your request but couldn't generate a text response."
)

// ExtractText pulls the user-facing text out of a possibly mixed-content
// response: the first text block wins. It never fails; responses without
// text degrade to a fixed fallback string.
func ExtractText(msg *anthropic.Message) string {
	if msg == nil || len(msg.Content) == 0 {
		return noContentAnswer
	}
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			return tb.Text
		}
	}
	return noTextAnswer
}
