package tools

// NewCourseManager returns a Manager with the standard course tools wired
// against st.
func NewCourseManager(st CourseStore) *Manager {
	return NewManager(NewCourseSearchTool(st), NewCourseOutlineTool(st))
}
