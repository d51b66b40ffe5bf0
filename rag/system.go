package rag

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/pkg/errors"

	"github.com/joakimAbdinurIusuf/claudecode-ragchatbot/internal/engine"
	"github.com/joakimAbdinurIusuf/claudecode-ragchatbot/session"
	"github.com/joakimAbdinurIusuf/claudecode-ragchatbot/store"
	"github.com/joakimAbdinurIusuf/claudecode-ragchatbot/tools"
)

// Config holds the tunable parts of a System.
type Config struct {
	Model      anthropic.Model
	MaxHistory int // messages retained per session; 0 means the default
	MaxResults int // hits per content search; 0 means the default
}

// System wires the course store, tools, session tracking and the round
// engine into one query surface.
type System struct {
	Store    *store.MemoryStore
	Tools    *tools.Manager
	Sessions *session.Manager

	generator *engine.Generator
}

func New(client *anthropic.Client, cfg Config) (*System, error) {
	if client == nil {
		return nil, errors.New("anthropic client is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("model is required")
	}
	var storeOpts []store.MemoryStoreOption
	if cfg.MaxResults > 0 {
		storeOpts = append(storeOpts, store.WithMaxResults(cfg.MaxResults))
	}
	st := store.NewMemoryStore(storeOpts...)
	return &System{
		Store:     st,
		Tools:     tools.NewCourseManager(st),
		Sessions:  session.NewManager(cfg.MaxHistory),
		generator: engine.New(client, cfg.Model),
	}, nil
}

// AddCourse indexes one course's metadata and content.
func (s *System) AddCourse(c store.Course, chunks []store.Chunk) error {
	if err := s.Store.AddCourse(c); err != nil {
		return errors.Wrap(err, "add course")
	}
	if err := s.Store.AddChunks(chunks); err != nil {
		return errors.Wrapf(err, "add chunks for %q", c.Title)
	}
	return nil
}

// NewSession starts a fresh conversation and returns its ID.
func (s *System) NewSession() string {
	return s.Sessions.NewSession()
}

// Query answers one question within a session. The answer is always a
// string (the engine degrades failures to fallback text); sources cite the
// course material consulted during this query only.
func (s *System) Query(ctx context.Context, sessionID, query string) (string, []tools.Source) {
	history := s.Sessions.History(sessionID)

	// Ensure no citations from an earlier run leak into this one.
	s.Tools.ResetSources()

	answer := s.generator.GenerateAnswer(ctx, query, history, s.Tools.Definitions(), s.Tools)
	sources := s.Tools.LastSources()
	s.Tools.ResetSources()

	s.Sessions.AddExchange(sessionID, query, answer)
	return answer, sources
}
