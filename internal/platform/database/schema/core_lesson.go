package schema

// LessonTable represents the 'core.lesson' table
type LessonTable struct {
	Table     string
	ID        string
	Title     string
	Content   string
	CourseID  string
	CreatedAt string
}

// Lesson is the schema definition for core.lesson
var Lesson = LessonTable{
	Table:     "core.lesson",
	ID:        "id",
	Title:     "title",
	Content:   "content",
	CourseID:  "courseid",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t LessonTable) Columns() []string {
	return []string{t.ID, t.Title, t.Content, t.CourseID, t.CreatedAt}
}
