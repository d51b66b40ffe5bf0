package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Manager maps tool names to capabilities and aggregates the citation
// sources returned by executions since the last reset.
//
// Execution within one model turn may be concurrent, so dispatch and source
// aggregation are mutex-guarded. Isolation across concurrent top-level
// queries is the caller's concern; one Manager serves one query at a time.
type Manager struct {
	mu      sync.Mutex
	byName  map[string]Tool
	order   []string
	sources []Source
}

func NewManager(ts ...Tool) *Manager {
	m := &Manager{byName: map[string]Tool{}}
	for _, t := range ts {
		m.Register(t)
	}
	return m
}

// Register adds a tool; a duplicate name replaces the earlier registration.
func (m *Manager) Register(t Tool) {
	name := t.Definition().Name
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byName[name]; !ok {
		m.order = append(m.order, name)
	}
	m.byName[name] = t
}

// Definitions lists registered tool definitions in registration order.
func (m *Manager) Definitions() []ToolDefinition {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ToolDefinition, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.byName[name].Definition())
	}
	return out
}

// Execute dispatches one tool call by name and records any sources the tool
// returned. Unknown names are an error.
func (m *Manager) Execute(ctx context.Context, name string, input json.RawMessage) (string, error) {
	m.mu.Lock()
	t, ok := m.byName[name]
	m.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("unknown tool %q", name)
	}

	out, sources, err := t.Execute(ctx, input)
	if err != nil {
		return "", fmt.Errorf("tool %s: %w", name, err)
	}
	if len(sources) > 0 {
		m.mu.Lock()
		m.sources = append(m.sources, sources...)
		m.mu.Unlock()
	}
	return out, nil
}

// LastSources returns the sources accumulated since the last reset.
func (m *Manager) LastSources() []Source {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Source, len(m.sources))
	copy(out, m.sources)
	return out
}

// ResetSources clears the source accumulator. Callers reset between
// top-level queries so citations never leak across runs.
func (m *Manager) ResetSources() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources = nil
}
