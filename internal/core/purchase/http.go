// Copyright (c) 2026 Coursia. All rights reserved.

package purchase

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coursia/api/internal/authz"
	"github.com/coursia/api/internal/core/course"
	requestutil "github.com/coursia/api/internal/platform/request"
	"github.com/coursia/api/internal/platform/respond"
	"github.com/coursia/api/internal/platform/sec"
	"github.com/coursia/api/internal/platform/validate"
)

// Handler implements the purchase HTTP endpoints.
type Handler struct {
	service      *Service
	authenticate func(http.Handler) http.Handler
}

// NewHandler constructs a new [Handler] with its service dependency and the
// authentication gate. Every purchase route requires authentication.
func NewHandler(service *Service, authenticate func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, authenticate: authenticate}
}

// RegisterRoutes mounts the purchase routes on the given router.
//
// # Endpoints
//   - POST /               : Student purchases a course.
//   - GET  /users/{userID} : User lists their own purchased courses.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Use(handler.authenticate)

	router.Post("/", handler.createPurchase)
	router.Get("/users/{userID}", handler.listByUser)
}

// # Request Payloads

type createPurchaseRequest struct {
	CourseID string `json:"courseId"`
}

/*
CreatePurchase records a course purchase for the authenticated student.

POST /api/purchases

Description: The role is checked before the body is decoded; duplicate
purchases surface as 409 from the storage constraint.

Request:
  - Body: createPurchaseRequest (CourseID)

Response:
  - 201: Success: purchaseId
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 401: ErrUnauthorized: Missing or invalid token
  - 403: ErrForbidden: Caller is not a student
  - 404: ErrNotFound: "Course not found."
  - 409: ErrConflict: "Course already purchased"
*/
func (handler *Handler) createPurchase(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := authz.RequireRole(claims, sec.RoleStudent, authz.MsgOnlyStudentsPurchase); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createPurchaseRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.UUID(FieldCourseID, input.CourseID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	purchase, err := handler.service.Create(request.Context(), claims, input.CourseID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "", respond.Fields{
		FieldPurchaseID: purchase.ID,
	})
}

/*
ListByUser returns the purchased courses of the authenticated user.

GET /api/purchases/users/{userID}

Response:
  - 200: Success: courses
  - 401: ErrUnauthorized: Missing or invalid token
  - 403: ErrForbidden: "You are not authorized to view purchases"
*/
func (handler *Handler) listByUser(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID := requestutil.Param(request, "userID")

	courses, err := handler.service.ListByUser(request.Context(), claims, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if courses == nil {
		courses = []*course.Course{}
	}

	respond.OK(writer, "", respond.Fields{FieldCourses: courses})
}
