// Copyright (c) 2026 Coursia. All rights reserved.

/*
Package authz contains the pure authorization decisions for the marketplace.

Every protected action has one decision function taking the authenticated
identity and the relevant facts about the target resource, returning nil
(allow) or a 403 [apperr.AppError] carrying the action-specific reason.

# Check Ordering

The decision messages are part of the API contract, and so is the order in
which handlers evaluate checks:

 1. Role (403, action-specific message)
 2. Input validation (400, field messages)
 3. Resource existence (404)
 4. Ownership (403, "Unauthorized.")
 5. Uniqueness (409)
 6. Mutation

Handlers run the role-only check via [RequireRole] before decoding the body;
services run the full decision after loading the resource. Role is therefore
checked twice on ownership paths — deliberately, since a missing resource
must yield 404 before the ownership verdict, and a non-instructor must be
turned away before the body is even parsed.

Functions here are pure: no storage access, no context, no side effects.
*/
package authz

import (
	"github.com/coursia/api/internal/platform/apperr"
	"github.com/coursia/api/internal/platform/sec"
)

// # Decision Messages

const (
	MsgOnlyInstructorsCreateCourse = "Only instructors can create a course"
	MsgOnlyInstructorsModifyCourse = "Only instructors can modify a course"
	MsgOnlyInstructorsAddLesson    = "Only instructors can add lesson"
	MsgOnlyStudentsPurchase        = "Only students can purchase courses."
	MsgUnauthorized                = "Unauthorized."
	MsgCannotViewPurchases         = "You are not authorized to view purchases"
)

// RequireRole denies with the given message unless the identity holds the role.
func RequireRole(identity *sec.AuthClaims, role sec.UserRole, message string) error {
	if identity == nil || identity.Role != string(role) {
		return apperr.Forbidden(message)
	}
	return nil
}

// CanCreateCourse allows only instructors to publish a new course.
func CanCreateCourse(identity *sec.AuthClaims) error {
	return RequireRole(identity, sec.RoleInstructor, MsgOnlyInstructorsCreateCourse)
}

// CanModifyCourse allows only the owning instructor to update or delete a
// course. Role is checked before ownership so a student probing another
// user's course sees the role message, never the ownership one.
func CanModifyCourse(identity *sec.AuthClaims, instructorID string) error {
	if err := RequireRole(identity, sec.RoleInstructor, MsgOnlyInstructorsModifyCourse); err != nil {
		return err
	}
	if identity.UserID != instructorID {
		return apperr.Forbidden(MsgUnauthorized)
	}
	return nil
}

// CanCreateLesson allows only the instructor owning the parent course to
// attach a lesson to it.
func CanCreateLesson(identity *sec.AuthClaims, instructorID string) error {
	if err := RequireRole(identity, sec.RoleInstructor, MsgOnlyInstructorsAddLesson); err != nil {
		return err
	}
	if identity.UserID != instructorID {
		return apperr.Forbidden(MsgUnauthorized)
	}
	return nil
}

// CanPurchase allows only students to buy courses.
func CanPurchase(identity *sec.AuthClaims) error {
	return RequireRole(identity, sec.RoleStudent, MsgOnlyStudentsPurchase)
}

// CanViewPurchases allows an identity to list only its own purchases,
// regardless of role.
func CanViewPurchases(identity *sec.AuthClaims, targetUserID string) error {
	if identity == nil || identity.UserID != targetUserID {
		return apperr.Forbidden(MsgCannotViewPurchases)
	}
	return nil
}
