// Copyright (c) 2026 Coursia. All rights reserved.

/*
Package course implements the course catalogue of the Coursia marketplace.

A course is owned by the instructor who created it; only that instructor may
modify or delete it. The public catalogue (list and detail) requires no
authentication.
*/
package course

import "time"

// Course represents a sellable course owned by an instructor.
type Course struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  *string   `json:"description"`
	Price        int       `json:"price"`
	InstructorID string    `json:"instructor_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCourse      = "course"
	FieldCourses     = "courses"
	FieldCourseID    = "courseId"
	FieldPagination  = "pagination"
)
