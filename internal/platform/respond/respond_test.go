// Copyright (c) 2026 Coursia. All rights reserved.

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursia/api/internal/platform/apperr"
	"github.com/coursia/api/internal/platform/respond"
)

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

/*
TestRespond_SuccessEnvelope verifies the shape of success responses.
*/
func TestRespond_SuccessEnvelope(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.Created(recorder, "Course created successfully.", respond.Fields{
		"courseId": "c-1",
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Course created successfully.", body["message"])
	assert.Equal(t, "c-1", body["courseId"])
	assert.NotContains(t, body, "errors")
}

/*
TestRespond_ErrorEnvelope verifies AppError status mapping and payload shape.
*/
func TestRespond_ErrorEnvelope(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not_found", apperr.NotFound("Course"), http.StatusNotFound, "Course not found."},
		{"forbidden", apperr.Forbidden("Unauthorized."), http.StatusForbidden, "Unauthorized."},
		{"conflict", apperr.Conflict("Course already purchased"), http.StatusConflict, "Course already purchased"},
		{"bad_request", apperr.BadRequest("Invalid email or password."), http.StatusBadRequest, "Invalid email or password."},
		{"unexpected", errors.New("pq: connection refused"), http.StatusInternalServerError, "Internal server error."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/", nil)

			respond.Error(recorder, request, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			body := decodeBody(t, recorder)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMsg, body["message"])
		})
	}
}

/*
TestRespond_ValidationErrors verifies that field errors render as an array of
message strings, mirroring the schema-validation contract.
*/
func TestRespond_ValidationErrors(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/", nil)

	err := apperr.ValidationError("Validation failed",
		apperr.FieldError{Field: "title", Message: "This field is required"},
		apperr.FieldError{Field: "price", Message: "Must be a positive integer"},
	)

	respond.Error(recorder, request, err)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.NotContains(t, body, "message")

	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"This field is required", "Must be a positive integer"}, errs)
}
