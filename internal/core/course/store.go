// Copyright (c) 2026 Coursia. All rights reserved.

package course

import "context"

// # Course Data Access

// Repository defines the data access contract for courses.
type Repository interface {

	/*
		Create persists a brand-new course.

		Parameters:
		  - context: context.Context
		  - course: *Course

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, course *Course) error

	/*
		List returns a catalogue page ordered by creation time (newest first).

		Parameters:
		  - context: context.Context
		  - limit: int
		  - offset: int

		Returns:
		  - []*Course: Page of courses
		  - int: Total course count
		  - error: Retrieval failures
	*/
	List(context context.Context, limit, offset int) ([]*Course, int, error)

	/*
		FindByID returns the course with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Course: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id string) (*Course, error)

	/*
		Update persists changes to a course's mutable fields.

		Parameters:
		  - context: context.Context
		  - course: *Course

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, course *Course) error

	/*
		Delete permanently removes a course and its dependent rows.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Deletion failures
	*/
	Delete(context context.Context, id string) error
}

// # Catalogue Cache

// Cache defines the contract for the volatile catalogue page cache.
//
// Implementations must treat a miss as [apperr.NotFound] so callers can fall
// through to the repository.
type Cache interface {

	// GetPage returns a cached catalogue page, or apperr.NotFound on a miss.
	GetPage(context context.Context, page, limit int) ([]*Course, int, error)

	// SetPage stores a catalogue page with its total count.
	SetPage(context context.Context, page, limit int, courses []*Course, total int) error

	// Invalidate drops every cached page after a course mutation.
	Invalidate(context context.Context) error
}
