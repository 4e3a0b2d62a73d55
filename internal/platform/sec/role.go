// Copyright (c) 2026 Coursia. All rights reserved.

package sec

// # User Roles

// UserRole represents the account type granted at signup.
//
// The two roles are disjoint capability sets, not a hierarchy: an
// instructor cannot purchase courses and a student cannot publish them.
type UserRole string

const (
	// Purchases and consumes courses. Default role for new accounts.
	RoleStudent UserRole = "STUDENT"

	// Publishes and manages their own courses and lessons.
	RoleInstructor UserRole = "INSTRUCTOR"
)

// Valid reports whether the role is one of the known account types.
func (r UserRole) Valid() bool {
	return r == RoleStudent || r == RoleInstructor
}
