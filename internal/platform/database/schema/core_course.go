package schema

// CourseTable represents the 'core.course' table
type CourseTable struct {
	Table        string
	ID           string
	Title        string
	Slug         string
	Description  string
	Price        string
	InstructorID string
	CreatedAt    string
	UpdatedAt    string
}

// Course is the schema definition for core.course
var Course = CourseTable{
	Table:        "core.course",
	ID:           "id",
	Title:        "title",
	Slug:         "slug",
	Description:  "description",
	Price:        "price",
	InstructorID: "instructorid",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t CourseTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Description, t.Price, t.InstructorID,
		t.CreatedAt, t.UpdatedAt,
	}
}
