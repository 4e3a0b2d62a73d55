// Copyright (c) 2026 Coursia. All rights reserved.

package course

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coursia/api/internal/authz"
	requestutil "github.com/coursia/api/internal/platform/request"
	"github.com/coursia/api/internal/platform/respond"
	"github.com/coursia/api/internal/platform/sec"
	"github.com/coursia/api/internal/platform/validate"
	"github.com/coursia/api/pkg/pagination"
)

// Handler implements the course catalogue HTTP endpoints.
type Handler struct {
	service      *Service
	authenticate func(http.Handler) http.Handler
}

// NewHandler constructs a new [Handler] with its service dependency and the
// authentication gate used for the protected routes.
func NewHandler(service *Service, authenticate func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, authenticate: authenticate}
}

// RegisterRoutes mounts the course routes on the given router.
//
// # Endpoints
//   - GET    /      : Public catalogue page.
//   - GET    /{id}  : Public course detail.
//   - POST   /      : Instructor publishes a course.
//   - PATCH  /{id}  : Owning instructor updates a course.
//   - DELETE /{id}  : Owning instructor removes a course.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listCourses)
	router.Get("/{id}", handler.getCourse)

	// Authenticated
	router.Group(func(protected chi.Router) {
		protected.Use(handler.authenticate)

		protected.Post("/", handler.createCourse)
		protected.Patch("/{id}", handler.updateCourse)
		protected.Delete("/{id}", handler.deleteCourse)
	})
}

// # Request Payloads

type createCourseRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Price       int     `json:"price"`
}

type updateCourseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Price       *int    `json:"price"`
}

/*
CreateCourse publishes a new course.

POST /api/courses

Description: The role is checked before the body is even decoded, so a
student probing the endpoint never learns whether their payload was valid.

Request:
  - Body: createCourseRequest (Title, optional Description, Price)

Response:
  - 201: Success: "Course created successfully." + courseId
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 401: ErrUnauthorized: Missing or invalid token
  - 403: ErrForbidden: Caller is not an instructor
*/
func (handler *Handler) createCourse(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := authz.RequireRole(claims, sec.RoleInstructor, authz.MsgOnlyInstructorsCreateCourse); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createCourseRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		Positive(FieldPrice, input.Price)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	course, err := handler.service.Create(request.Context(), claims, CreateInput{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Course created successfully.", respond.Fields{
		FieldCourseID: course.ID,
	})
}

/*
ListCourses returns one public catalogue page.

GET /api/courses

Response:
  - 200: Success: courses + pagination
*/
func (handler *Handler) listCourses(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	courses, total, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if courses == nil {
		courses = []*Course{}
	}

	respond.OK(writer, "", respond.Fields{
		FieldCourses:    courses,
		FieldPagination: pagination.NewMeta(params.Page, params.Limit, total),
	})
}

/*
GetCourse returns one public course detail.

GET /api/courses/{id}

Response:
  - 200: Success: course
  - 400: ErrValidation: Malformed course ID
  - 404: ErrNotFound: "Course not found."
*/
func (handler *Handler) getCourse(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.UUID(FieldCourseID, id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	course, err := handler.service.GetByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "", respond.Fields{FieldCourse: course})
}

/*
UpdateCourse applies a partial update to an owned course.

PATCH /api/courses/{id}

Response:
  - 200: Success: "Course updated successfully." + course
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 401: ErrUnauthorized: Missing or invalid token
  - 403: ErrForbidden: Not an instructor, or not the owner
  - 404: ErrNotFound: "Course not found."
*/
func (handler *Handler) updateCourse(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := authz.RequireRole(claims, sec.RoleInstructor, authz.MsgOnlyInstructorsModifyCourse); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateCourseRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.UUID(FieldCourseID, id)
	if input.Title != nil {
		validator.Required(FieldTitle, *input.Title)
	}
	if input.Price != nil {
		validator.Positive(FieldPrice, *input.Price)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	course, err := handler.service.Update(request.Context(), claims, id, UpdateInput{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Course updated successfully.", respond.Fields{
		FieldCourse: course,
	})
}

/*
DeleteCourse removes an owned course.

DELETE /api/courses/{id}

Response:
  - 200: Success: "Course deleted successfully."
  - 401: ErrUnauthorized: Missing or invalid token
  - 403: ErrForbidden: Not an instructor, or not the owner
  - 404: ErrNotFound: "Course not found."
*/
func (handler *Handler) deleteCourse(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := authz.RequireRole(claims, sec.RoleInstructor, authz.MsgOnlyInstructorsModifyCourse); err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.UUID(FieldCourseID, id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), claims, id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Course deleted successfully.", nil)
}
