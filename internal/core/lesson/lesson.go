// Copyright (c) 2026 Coursia. All rights reserved.

/*
Package lesson implements the lesson content of the Coursia marketplace.

Lessons belong to a course; only the instructor owning the parent course may
add lessons to it. Reading a course's lesson list is public.
*/
package lesson

import "time"

// Lesson represents one unit of course content.
type Lesson struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CourseID  string    `json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}

// # Field Identifiers

const (
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldCourseID = "courseId"
	FieldLessonID = "lessonId"
	FieldLessons  = "lessons"
)
