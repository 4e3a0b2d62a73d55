// Copyright (c) 2026 Coursia. All rights reserved.

package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursia/api/internal/platform/ctxutil"
	"github.com/coursia/api/internal/platform/middleware"
	"github.com/coursia/api/internal/platform/sec"
)

// stubVerifier accepts exactly one token string and returns fixed claims.
type stubVerifier struct {
	goodToken string
	claims    *sec.AuthClaims
}

func (s *stubVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr == s.goodToken {
		return s.claims, nil
	}
	return nil, errors.New("invalid token")
}

/*
TestAuthenticate_Rejections verifies every failure mode yields the same
uniform 401 response.
*/
func TestAuthenticate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing_header", ""},
		{"wrong_scheme", "Basic abc123"},
		{"missing_token", "Bearer "},
		{"scheme_only", "Bearer"},
		{"invalid_token", "Bearer bad-token"},
		{"extra_parts", "Bearer good-token trailing"},
	}

	verifier := &stubVerifier{
		goodToken: "good-token",
		claims:    &sec.AuthClaims{UserID: "user-1", Role: string(sec.RoleStudent)},
	}
	gate := middleware.Authenticate(verifier)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/courses", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}

			recorder := httptest.NewRecorder()
			gate.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)

			body := map[string]any{}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])

			// The message must not reveal which check failed.
			assert.Equal(t, "User is not authenticated.", body["message"])
		})
	}
}

/*
TestAuthenticate_Success verifies a valid bearer token reaches the handler
with the identity injected into the request context.
*/
func TestAuthenticate_Success(t *testing.T) {
	claims := &sec.AuthClaims{UserID: "user-1", Role: string(sec.RoleInstructor)}
	verifier := &stubVerifier{goodToken: "good-token", claims: claims}

	var seen *sec.AuthClaims
	inner := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetAuthUser(request.Context())
		writer.WriteHeader(http.StatusOK)
	})

	gate := middleware.Authenticate(verifier)(inner)

	request := httptest.NewRequest(http.MethodPost, "/api/courses", nil)
	request.Header.Set("Authorization", "Bearer good-token")

	recorder := httptest.NewRecorder()
	gate.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "user-1", seen.UserID)
	assert.Equal(t, "INSTRUCTOR", seen.Role)
}
