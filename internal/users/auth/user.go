// Copyright (c) 2026 Coursia. All rights reserved.

/*
Package auth implements the user identity layer of the Coursia marketplace.

It defines the core domain entity (User) and the logic for account creation
and credential verification.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to user identity.
*/
package auth

import (
	"time"

	"github.com/coursia/api/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the Coursia platform.
//
// A user is either a STUDENT or an INSTRUCTOR; the role is fixed at signup
// and embedded in every access token the user is issued.
type User struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldToken    = "token"
	FieldUser     = "user"
)
