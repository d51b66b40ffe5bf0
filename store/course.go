package store

// Lesson is one numbered unit of a course.
type Lesson struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Link   string `json:"link,omitempty"`
}

// Course holds the metadata for one indexed course.
type Course struct {
	Title      string   `json:"title"`
	Link       string   `json:"link,omitempty"`
	Instructor string   `json:"instructor,omitempty"`
	Lessons    []Lesson `json:"lessons,omitempty"`
}

// Chunk is one searchable piece of course content, tagged with where it
// came from. LessonNumber 0 means the chunk is not tied to a lesson.
type Chunk struct {
	Content      string `json:"content"`
	CourseTitle  string `json:"course_title"`
	LessonNumber int    `json:"lesson_number,omitempty"`
	Index        int    `json:"chunk_index"`
}

// SearchHit is one matching chunk with enough context to cite it.
type SearchHit struct {
	Content      string
	CourseTitle  string
	LessonNumber int
	Link         string
}

// SearchResults is the ordered outcome of one content search.
type SearchResults struct {
	Hits []SearchHit
}

// Empty reports whether the search matched nothing.
func (r SearchResults) Empty() bool { return len(r.Hits) == 0 }
