package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// DefaultMaxResults caps how many hits one search returns.
const DefaultMaxResults = 5

// MemoryStore is a map-backed course index with keyword search. It is the
// narrow collaborator the course tools consume; embedding-based retrieval
// lives behind the same surface in deployments that need it.
type MemoryStore struct {
	mu         sync.RWMutex
	courses    map[string]Course
	titles     []string // insertion order, for deterministic resolution
	chunks     []Chunk
	maxResults int
}

type MemoryStoreOption func(*MemoryStore)

// WithMaxResults overrides the per-search hit cap.
func WithMaxResults(n int) MemoryStoreOption {
	return func(s *MemoryStore) {
		if n > 0 {
			s.maxResults = n
		}
	}
}

func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		courses:    map[string]Course{},
		maxResults: DefaultMaxResults,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddCourse registers course metadata. Re-adding a title replaces it.
func (s *MemoryStore) AddCourse(c Course) error {
	if strings.TrimSpace(c.Title) == "" {
		return errors.New("course title is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.courses[c.Title]; !ok {
		s.titles = append(s.titles, c.Title)
	}
	s.courses[c.Title] = c
	return nil
}

// AddChunks indexes searchable content. Every chunk must reference a
// registered course.
func (s *MemoryStore) AddChunks(chunks []Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range chunks {
		if _, ok := s.courses[c.CourseTitle]; !ok {
			return errors.Errorf("chunk references unknown course %q", c.CourseTitle)
		}
	}
	s.chunks = append(s.chunks, chunks...)
	return nil
}

// CourseCount returns the number of registered courses.
func (s *MemoryStore) CourseCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.courses)
}

// ResolveCourseName maps a possibly partial, case-insensitive course name to
// a registered title. Substring matches win; otherwise the title sharing the
// most words with the input is picked.
func (s *MemoryStore) ResolveCourseName(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolveLocked(name)
}

func (s *MemoryStore) resolveLocked(name string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}
	for _, title := range s.titles {
		if strings.Contains(strings.ToLower(title), needle) {
			return title, true
		}
	}
	bestScore := 0
	best := ""
	words := strings.Fields(needle)
	for _, title := range s.titles {
		lower := strings.ToLower(title)
		score := 0
		for _, w := range words {
			if strings.Contains(lower, w) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = title
		}
	}
	return best, best != ""
}

// Search returns up to maxResults chunks matching the query, optionally
// restricted to one course and lesson. An unresolvable course name is an
// error so the caller can report the miss verbatim.
func (s *MemoryStore) Search(ctx context.Context, query, courseName string, lessonNumber int) (SearchResults, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	title := ""
	if courseName != "" {
		resolved, ok := s.resolveLocked(courseName)
		if !ok {
			return SearchResults{}, errors.Errorf("no course found matching '%s'", courseName)
		}
		title = resolved
	}

	terms := strings.Fields(strings.ToLower(query))

	type scored struct {
		chunk Chunk
		score int
	}
	var matches []scored
	for _, c := range s.chunks {
		if title != "" && c.CourseTitle != title {
			continue
		}
		if lessonNumber > 0 && c.LessonNumber != lessonNumber {
			continue
		}
		lower := strings.ToLower(c.Content)
		score := 0
		for _, t := range terms {
			if strings.Contains(lower, t) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{chunk: c, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if len(matches) > s.maxResults {
		matches = matches[:s.maxResults]
	}

	res := SearchResults{}
	for _, m := range matches {
		res.Hits = append(res.Hits, SearchHit{
			Content:      m.chunk.Content,
			CourseTitle:  m.chunk.CourseTitle,
			LessonNumber: m.chunk.LessonNumber,
			Link:         s.lessonLinkLocked(m.chunk.CourseTitle, m.chunk.LessonNumber),
		})
	}
	return res, nil
}

// Outline returns the metadata of the course matching name.
func (s *MemoryStore) Outline(ctx context.Context, courseName string) (Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	title, ok := s.resolveLocked(courseName)
	if !ok {
		return Course{}, errors.Errorf("no course found matching '%s'", courseName)
	}
	return s.courses[title], nil
}

func (s *MemoryStore) lessonLinkLocked(courseTitle string, lessonNumber int) string {
	c, ok := s.courses[courseTitle]
	if !ok {
		return ""
	}
	for _, l := range c.Lessons {
		if l.Number == lessonNumber {
			return l.Link
		}
	}
	return c.Link
}
