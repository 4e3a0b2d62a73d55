// Copyright (c) 2026 Coursia. All rights reserved.

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursia/api/internal/platform/sec"
)

func newService(t *testing.T, secret string) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(secret, "coursia.test")
	require.NoError(t, err)
	return service
}

/*
TestTokenService_RoundTrip verifies that an issued token verifies back into
the same identity claims.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newService(t, "test-secret")

	token, err := service.GenerateAccessToken("user-1", string(sec.RoleInstructor), time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "INSTRUCTOR", claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "coursia.test", claims.Issuer)
}

/*
TestTokenService_Expiry verifies that an expired token is rejected.
*/
func TestTokenService_Expiry(t *testing.T) {
	service := newService(t, "test-secret")

	token, err := service.GenerateAccessToken("user-1", string(sec.RoleStudent), -1*time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}

/*
TestTokenService_OpaqueFailures verifies that all invalid inputs collapse to
the same opaque error, so callers cannot distinguish the failure cause.
*/
func TestTokenService_OpaqueFailures(t *testing.T) {
	service := newService(t, "test-secret")
	otherService := newService(t, "another-secret")

	validToken, err := otherService.GenerateAccessToken("user-1", string(sec.RoleStudent), time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"empty", ""},
		{"wrong_secret", validToken},
		{"truncated", validToken[:len(validToken)/2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.VerifyToken(tt.token)
			assert.ErrorIs(t, err, sec.ErrInvalidToken)
		})
	}
}

/*
TestTokenService_EmptySecret verifies the constructor refuses an empty key.
*/
func TestTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "coursia.test")
	assert.Error(t, err)
}
