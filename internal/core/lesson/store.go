// Copyright (c) 2026 Coursia. All rights reserved.

package lesson

import "context"

// Repository defines the data access contract for lessons.
type Repository interface {

	/*
		Create persists a brand-new lesson.

		Parameters:
		  - context: context.Context
		  - lesson: *Lesson

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, lesson *Lesson) error

	/*
		ListByCourse returns every lesson of a course in creation order.

		Parameters:
		  - context: context.Context
		  - courseID: string

		Returns:
		  - []*Lesson: Lessons of the course
		  - error: Retrieval failures
	*/
	ListByCourse(context context.Context, courseID string) ([]*Lesson, error)
}
