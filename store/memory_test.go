package store_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joakimAbdinurIusuf/claudecode-ragchatbot/store"
)

func seededStore(t *testing.T, opts ...store.MemoryStoreOption) *store.MemoryStore {
	t.Helper()
	s := store.NewMemoryStore(opts...)

	ml := store.Course{
		Title:      "Introduction to Machine Learning",
		Link:       "https://example.com/ml-course",
		Instructor: "Dr. Jane Smith",
		Lessons: []store.Lesson{
			{Number: 1, Title: "ML Basics", Link: "https://example.com/ml-course/lesson-1"},
			{Number: 2, Title: "Supervised Learning", Link: "https://example.com/ml-course/lesson-2"},
		},
	}
	mcp := store.Course{
		Title:      "Building Towards Computer Use",
		Link:       "https://example.com/mcp-course",
		Instructor: "Colt Steele",
		Lessons:    []store.Lesson{{Number: 1, Title: "Getting Started"}},
	}
	require.NoError(t, s.AddCourse(ml))
	require.NoError(t, s.AddCourse(mcp))
	require.NoError(t, s.AddChunks([]store.Chunk{
		{Content: "Machine learning is a subset of artificial intelligence.", CourseTitle: ml.Title, LessonNumber: 1, Index: 0},
		{Content: "Supervised learning uses labeled training data.", CourseTitle: ml.Title, LessonNumber: 2, Index: 0},
		{Content: "Computer use lets models operate a desktop.", CourseTitle: mcp.Title, LessonNumber: 1, Index: 0},
	}))
	return s
}

func TestMemoryStore_SearchMatchesContent(t *testing.T) {
	s := seededStore(t)

	res, err := s.Search(context.Background(), "machine learning", "", 0)
	require.NoError(t, err)
	require.False(t, res.Empty())
	assert.Equal(t, "Introduction to Machine Learning", res.Hits[0].CourseTitle)
	assert.Equal(t, 1, res.Hits[0].LessonNumber)
	assert.Equal(t, "https://example.com/ml-course/lesson-1", res.Hits[0].Link)
}

func TestMemoryStore_SearchCourseFilterIsFuzzy(t *testing.T) {
	s := seededStore(t)

	res, err := s.Search(context.Background(), "learning", "machine", 0)
	require.NoError(t, err)
	require.False(t, res.Empty())
	for _, hit := range res.Hits {
		assert.Equal(t, "Introduction to Machine Learning", hit.CourseTitle)
	}
}

func TestMemoryStore_SearchLessonFilter(t *testing.T) {
	s := seededStore(t)

	res, err := s.Search(context.Background(), "learning", "", 2)
	require.NoError(t, err)
	require.Len(t, res.Hits, 1)
	assert.Equal(t, 2, res.Hits[0].LessonNumber)
}

func TestMemoryStore_SearchUnknownCourse(t *testing.T) {
	s := seededStore(t)

	_, err := s.Search(context.Background(), "anything", "Quantum Basket Weaving", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no course found matching")
}

func TestMemoryStore_SearchNoMatches(t *testing.T) {
	s := seededStore(t)

	res, err := s.Search(context.Background(), "zzzz qqqq", "", 0)
	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestMemoryStore_SearchRespectsMaxResults(t *testing.T) {
	s := store.NewMemoryStore(store.WithMaxResults(2))
	require.NoError(t, s.AddCourse(store.Course{Title: "Course"}))
	var chunks []store.Chunk
	for i := 0; i < 5; i++ {
		chunks = append(chunks, store.Chunk{
			Content:     fmt.Sprintf("repeated topic number %d", i),
			CourseTitle: "Course",
			Index:       i,
		})
	}
	require.NoError(t, s.AddChunks(chunks))

	res, err := s.Search(context.Background(), "topic", "", 0)
	require.NoError(t, err)
	assert.Len(t, res.Hits, 2)
}

func TestMemoryStore_ResolveCourseName(t *testing.T) {
	s := seededStore(t)

	title, ok := s.ResolveCourseName("machine learning")
	require.True(t, ok)
	assert.Equal(t, "Introduction to Machine Learning", title)

	title, ok = s.ResolveCourseName("COMPUTER USE")
	require.True(t, ok)
	assert.Equal(t, "Building Towards Computer Use", title)

	// Word overlap fallback when no substring matches.
	title, ok = s.ResolveCourseName("computer basics")
	require.True(t, ok)
	assert.Equal(t, "Building Towards Computer Use", title)

	_, ok = s.ResolveCourseName("underwater history")
	assert.False(t, ok)
}

func TestMemoryStore_Outline(t *testing.T) {
	s := seededStore(t)

	c, err := s.Outline(context.Background(), "machine")
	require.NoError(t, err)
	assert.Equal(t, "Introduction to Machine Learning", c.Title)
	assert.Equal(t, "Dr. Jane Smith", c.Instructor)
	assert.Len(t, c.Lessons, 2)

	_, err = s.Outline(context.Background(), "nonexistent")
	require.Error(t, err)
}

func TestMemoryStore_AddValidation(t *testing.T) {
	s := store.NewMemoryStore()

	require.Error(t, s.AddCourse(store.Course{Title: "  "}))
	require.Error(t, s.AddChunks([]store.Chunk{{Content: "x", CourseTitle: "missing"}}))

	require.NoError(t, s.AddCourse(store.Course{Title: "A"}))
	assert.Equal(t, 1, s.CourseCount())
}
