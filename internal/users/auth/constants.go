// Copyright (c) 2026 Coursia. All rights reserved.

package auth

import "time"

// # Authentication Constraints

const (
	// AccessTokenTTL is the duration a JWT access token remains valid.
	//
	// Tokens are self-contained: the role claim inside an issued token is
	// not re-checked against the database on every request, so a role that
	// changes in storage only takes effect once the old token expires.
	AccessTokenTTL = 7 * 24 * time.Hour

	// MinPasswordLength is the minimum accepted password length at signup.
	MinPasswordLength = 8
)
