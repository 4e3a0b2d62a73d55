// Copyright (c) 2026 Coursia. All rights reserved.

package middleware

import (
	"net/http"
	"strings"

	"github.com/coursia/api/internal/platform/apperr"
	"github.com/coursia/api/internal/platform/constants"
	"github.com/coursia/api/internal/platform/ctxutil"
	"github.com/coursia/api/internal/platform/respond"
	"github.com/coursia/api/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the concrete
// [sec.TokenService], allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// It is mounted on protected route groups only; public routes never run it.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. Parse and verify the JWT via [TokenVerifier].
//  3. Inject [*sec.AuthClaims] into the request context for downstream use.
//
// # Uniform Rejection
//
// Every failure mode (header absent, wrong scheme, missing token, failed
// verification) produces the exact same 401 envelope. A caller probing the
// gate learns nothing about which check tripped.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Header Presence ────────────────────────────────────────────
			if authHeader == "" {
				respond.Error(writer, request, errNotAuthenticated())
				return
			}

			// ── 2. Scheme Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != constants.AuthScheme || parts[1] == "" {
				respond.Error(writer, request, errNotAuthenticated())
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyToken(parts[1])
			if err != nil {
				respond.Error(writer, request, errNotAuthenticated())
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// GetUser retrieves the [*sec.AuthClaims] from the [context.Context]
// populated by [Authenticate]. It returns nil for anonymous requests.
var GetUser = ctxutil.GetAuthUser

// errNotAuthenticated is the single rejection outcome of the auth gate.
func errNotAuthenticated() error {
	return apperr.Unauthorized("User is not authenticated.")
}
