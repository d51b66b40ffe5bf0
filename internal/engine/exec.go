package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"golang.org/x/sync/errgroup"

	"github.com/joakimAbdinurIusuf/claudecode-ragchatbot/internal/events"
)

type toolCall struct {
	id    string
	name  string
	input json.RawMessage
}

// executeAll runs every tool_use block of one model turn through the
// executor. Calls within a turn are independent, so they run concurrently;
// results land in the slot of their originating block, keyed by its ID, so
// completion order never reorders the outgoing message.
//
// Fail-fast: the first error cancels the remaining calls and fails the whole
// batch. Partial results would show the model half an answer with no way to
// see the missing half.
func (g *Generator) executeAll(ctx context.Context, resp *anthropic.Message, executor ToolExecutor) ([]anthropic.ContentBlockParamUnion, error) {
	var calls []toolCall
	for _, block := range resp.Content {
		if v, ok := block.AsAny().(anthropic.ToolUseBlock); ok {
			// Pass raw JSON input through to the tool implementation
			calls = append(calls, toolCall{id: v.ID, name: v.Name, input: json.RawMessage(v.JSON.Input.Raw())})
		}
	}
	if len(calls) == 0 {
		return nil, nil
	}

	queryID, _ := events.QueryIDFromContext(ctx)

	results := make([]anthropic.ContentBlockParamUnion, len(calls))
	grp, gctx := errgroup.WithContext(ctx)
	for i, c := range calls {
		i, c := i, c
		grp.Go(func() error {
			start := time.Now()
			out, err := executor.Execute(gctx, c.name, c.input)
			fields := map[string]any{
				"tool_name":   c.name,
				"tool_use_id": c.id,
				"duration_ms": time.Since(start).Milliseconds(),
				"query_id":    queryID,
			}
			if err != nil {
				fields["error"] = "tool error"
				events.Emit("tool_exec", fields)
				return fmt.Errorf("tool %s: %w", c.name, err)
			}
			fields["error"] = nil
			fields["output_size"] = len(out)
			events.Emit("tool_exec", fields)
			results[i] = anthropic.NewToolResultBlock(c.id, out, false)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
