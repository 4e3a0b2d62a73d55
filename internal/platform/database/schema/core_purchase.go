package schema

// PurchaseTable represents the 'core.purchase' table
type PurchaseTable struct {
	Table     string
	ID        string
	UserID    string
	CourseID  string
	CreatedAt string
}

// Purchase is the schema definition for core.purchase
//
// The table carries a UNIQUE (userid, courseid) constraint; duplicate
// purchase detection relies on it rather than a pre-insert lookup.
var Purchase = PurchaseTable{
	Table:     "core.purchase",
	ID:        "id",
	UserID:    "userid",
	CourseID:  "courseid",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t PurchaseTable) Columns() []string {
	return []string{t.ID, t.UserID, t.CourseID, t.CreatedAt}
}
