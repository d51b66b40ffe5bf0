// Package engine drives bounded multi-round message exchange with the
// Anthropic Messages API and dispatches tool calls between rounds.
//
// Invariants:
//   - at most MaxToolRounds requests are sent per query; a further round is
//     never started once the cap is reached.
//   - every tool_use block in a response gets a matching tool_result in the
//     user message appended before the next request.
//   - system content (including any prior-conversation text) and tool
//     availability carry into every round unchanged.
//   - GenerateAnswer always returns a string; model and tool failures
//     degrade to fixed fallback text instead of propagating.
//
// Flow:
//
//	user(text) -> assistant(tool_use) -> user(tool_result) -> assistant(text)
package engine
