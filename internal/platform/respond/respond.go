// Copyright (c) 2026 Coursia. All rights reserved.

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// It ensures that every response (Success or Error) across the entire application
// follows a strict, predictable JSON envelope structure:
//
//	{"success": bool, "message"?: string, "errors"?: [string], ...data fields}
//
// This consistency is crucial for frontend SPAs to parse data robustly.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/coursia/api/internal/platform/apperr"
	"github.com/coursia/api/internal/platform/constants"
	"github.com/coursia/api/internal/platform/ctxutil"
)

// Fields holds the data fields merged into the success envelope alongside
// the "success" and "message" keys.
type Fields map[string]any

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK success envelope.
func OK(writer http.ResponseWriter, message string, fields Fields) {
	JSON(writer, http.StatusOK, successEnvelope(message, fields))
}

// Created writes a 201 Created success envelope.
func Created(writer http.ResponseWriter, message string, fields Fields) {
	JSON(writer, http.StatusCreated, successEnvelope(message, fields))
}

// Error converts any Go error into a standardized JSON API error response.
//
// Non-[apperr.AppError] values are treated as unexpected internal errors:
// the cause is logged server-side and a generic 500 envelope is returned.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		// Unexpected internal error: log full details but hide them from the client.
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	envelope := map[string]any{constants.FieldSuccess: false}

	// Validation failures surface as an errors array; everything else as a
	// single message. The envelope never carries both.
	if len(appError.Details) > 0 {
		messages := make([]string, 0, len(appError.Details))
		for _, detail := range appError.Details {
			messages = append(messages, detail.Message)
		}
		envelope[constants.FieldErrors] = messages
	} else {
		envelope[constants.FieldMessage] = appError.Message
	}

	JSON(writer, appError.HTTPStatus, envelope)
}

// successEnvelope assembles the success payload from a message and data fields.
func successEnvelope(message string, fields Fields) map[string]any {
	envelope := make(map[string]any, len(fields)+2)
	envelope[constants.FieldSuccess] = true

	if message != "" {
		envelope[constants.FieldMessage] = message
	}

	for key, value := range fields {
		envelope[key] = value
	}

	return envelope
}
