// Copyright (c) 2026 Coursia. All rights reserved.

package purchase

import (
	"context"

	"github.com/coursia/api/internal/core/course"
)

// Repository defines the data access contract for purchases.
type Repository interface {

	/*
		Create persists a new purchase.

		Implementations must map a duplicate (user, course) pair to a 409
		Conflict carrying "Course already purchased".

		Parameters:
		  - context: context.Context
		  - purchase: *Purchase

		Returns:
		  - error: Conflict on a duplicate, or persistence failures
	*/
	Create(context context.Context, purchase *Purchase) error

	/*
		ListCoursesByUser returns the courses a user has purchased, newest
		purchase first.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []*course.Course: Purchased courses
		  - error: Retrieval failures
	*/
	ListCoursesByUser(context context.Context, userID string) ([]*course.Course, error)
}
