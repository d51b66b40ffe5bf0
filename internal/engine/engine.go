package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/rs/zerolog/log"

	"github.com/joakimAbdinurIusuf/claudecode-ragchatbot/internal/events"
	"github.com/joakimAbdinurIusuf/claudecode-ragchatbot/tools"
)

// MaxToolRounds caps how many Messages API calls one query may make.
// Unconstrained tool chaining can loop indefinitely; two rounds still allow
// a follow-up lookup after the first search.
const MaxToolRounds = 2

// toolFailureAnswer is returned when a tool batch fails; the run ends there.
const toolFailureAnswer = "I encountered an error while searching for information. Let me provide what I can from my knowledge."

// terminalReason records how a run's round loop ended.
type terminalReason string

const (
	terminalNone             terminalReason = "none"
	terminalEndTurn          terminalReason = "end_turn"
	terminalMaxRounds        terminalReason = "max_rounds"
	terminalToolFailure      terminalReason = "tool_failure"
	terminalTransportFailure terminalReason = "transport_failure"
)

// ToolExecutor dispatches one tool call by name. *tools.Manager satisfies it.
type ToolExecutor interface {
	Execute(ctx context.Context, name string, input json.RawMessage) (string, error)
}

// Generator drives query answering against the Anthropic Messages API.
type Generator struct {
	Client    *anthropic.Client
	Model     anthropic.Model
	MaxTokens int64
}

func New(client *anthropic.Client, model anthropic.Model) *Generator {
	return &Generator{Client: client, Model: model, MaxTokens: 1200}
}

// runState tracks one query's round loop. Created fresh per query and
// discarded after the final answer; it owns no external resources.
type runState struct {
	rounds       int
	toolsEnabled bool
	terminal     terminalReason
}

// GenerateAnswer answers query, optionally grounding the model with prior
// conversation text and tools. It never returns an error for model or tool
// conditions; failures degrade to fixed fallback text. Tool execution only
// happens when both toolDefs and executor are supplied; a tool-shaped
// response outside that is treated as malformed.
func (g *Generator) GenerateAnswer(ctx context.Context, query, history string, toolDefs []tools.ToolDefinition, executor ToolExecutor) string {
	queryID, ok := events.QueryIDFromContext(ctx)
	if !ok {
		queryID = fmt.Sprintf("query-%d", time.Now().UnixNano())
		ctx = events.WithQueryID(ctx, queryID)
	}

	state := runState{
		toolsEnabled: len(toolDefs) > 0 && executor != nil,
		terminal:     terminalNone,
	}
	params := g.buildParams(query, history, toolDefs)

	resp, err := g.Client.Messages.New(ctx, params)
	if err != nil {
		state.terminal = terminalTransportFailure
		g.finish(queryID, state)
		log.Error().Err(err).Str("query_id", queryID).Msg("initial model call failed")
		return fmt.Sprintf("I couldn't reach the model to answer this question: %v", err)
	}
	state.rounds = 1

	for {
		if resp.StopReason != "tool_use" {
			state.terminal = terminalEndTurn
			g.finish(queryID, state)
			return ExtractText(resp)
		}
		if !state.toolsEnabled {
			// A tool-shaped response with no tools supplied is malformed;
			// fall back to whatever text it carries.
			log.Warn().Str("query_id", queryID).Msg("model requested tools but none are enabled")
			state.terminal = terminalEndTurn
			g.finish(queryID, state)
			return ExtractText(resp)
		}

		log.Debug().Str("query_id", queryID).Int("round", state.rounds).Msg("starting tool execution round")
		events.Emit("round_started", map[string]any{"query_id": queryID, "round": state.rounds})

		params.Messages = append(params.Messages, resp.ToParam())
		results, err := g.executeAll(ctx, resp, executor)
		if err != nil {
			log.Error().Err(err).Str("query_id", queryID).Int("round", state.rounds).Msg("tool execution failed")
			state.terminal = terminalToolFailure
			g.finish(queryID, state)
			return toolFailureAnswer
		}
		if len(results) > 0 {
			// One user message carries every result of the round, each tagged
			// with its originating tool_use ID.
			params.Messages = append(params.Messages, anthropic.NewUserMessage(results...))
		}

		if state.rounds >= MaxToolRounds {
			log.Debug().Str("query_id", queryID).Int("max_rounds", MaxToolRounds).Msg("maximum tool rounds reached")
			state.terminal = terminalMaxRounds
			g.finish(queryID, state)
			return ExtractText(resp)
		}

		// Same params: system content and tools stay available every round.
		next, err := g.Client.Messages.New(ctx, params)
		if err != nil {
			log.Error().Err(err).Str("query_id", queryID).Int("round", state.rounds).Msg("model call failed mid-run")
			state.terminal = terminalTransportFailure
			g.finish(queryID, state)
			return ExtractText(resp)
		}
		resp = next
		state.rounds++
	}
}

func (g *Generator) finish(queryID string, state runState) {
	events.Emit("run_complete", map[string]any{
		"query_id":        queryID,
		"rounds":          state.rounds,
		"tools_enabled":   state.toolsEnabled,
		"terminal_reason": string(state.terminal),
	})
}
