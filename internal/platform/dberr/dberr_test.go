// Copyright (c) 2026 Coursia. All rights reserved.

package dberr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursia/api/internal/platform/apperr"
	"github.com/coursia/api/internal/platform/dberr"
)

/*
TestWrap_Classification verifies the pgx error to AppError mapping.
*/
func TestWrap_Classification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"no_rows", pgx.ErrNoRows, http.StatusNotFound, "NOT_FOUND"},
		{"pg_error", &pgconn.PgError{Code: "23503"}, http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"plain_error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "some_query")

			ae := apperr.As(wrapped)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantStatus, ae.HTTPStatus)
			assert.Equal(t, tt.wantCode, ae.Code)
		})
	}
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "unused"))
	assert.NoError(t, dberr.WrapConflict(nil, "unused", "unused"))
}

/*
TestWrapConflict verifies that only a unique constraint violation is promoted
to a 409 with the caller's message; everything else follows Wrap.
*/
func TestWrapConflict(t *testing.T) {
	wrapped := dberr.WrapConflict(&pgconn.PgError{Code: "23505"}, "create_purchase", "Course already purchased")

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
	assert.EqualError(t, wrapped, "Course already purchased")

	wrapped = dberr.WrapConflict(pgx.ErrNoRows, "create_purchase", "Course already purchased")
	ae = apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, dberr.IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, dberr.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, dberr.IsUniqueViolation(errors.New("boom")))
}
