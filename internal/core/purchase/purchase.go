// Copyright (c) 2026 Coursia. All rights reserved.

/*
Package purchase implements course purchases in the Coursia marketplace.

Only students purchase courses; a student buys a given course at most once.
Uniqueness is enforced by the database constraint on (user, course), not by a
pre-insert lookup, so two racing purchase requests cannot both succeed.
*/
package purchase

import "time"

// Purchase records that a student owns access to a course.
type Purchase struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CourseID  string    `json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}

// # Field Identifiers

const (
	FieldCourseID   = "courseId"
	FieldPurchaseID = "purchaseId"
	FieldCourses    = "courses"
	FieldUserID     = "userId"
)
