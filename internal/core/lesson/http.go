// Copyright (c) 2026 Coursia. All rights reserved.

package lesson

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coursia/api/internal/authz"
	requestutil "github.com/coursia/api/internal/platform/request"
	"github.com/coursia/api/internal/platform/respond"
	"github.com/coursia/api/internal/platform/sec"
	"github.com/coursia/api/internal/platform/validate"
)

// Handler implements the lesson HTTP endpoints.
type Handler struct {
	service      *Service
	authenticate func(http.Handler) http.Handler
}

// NewHandler constructs a new [Handler] with its service dependency and the
// authentication gate used for the protected routes.
func NewHandler(service *Service, authenticate func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, authenticate: authenticate}
}

// RegisterRoutes mounts the lesson routes on the given router.
//
// # Endpoints
//   - POST / : Owning instructor attaches a lesson to a course.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(protected chi.Router) {
		protected.Use(handler.authenticate)

		protected.Post("/", handler.createLesson)
	})
}

// RegisterCourseRoutes mounts the public lesson listing under the course
// router, keeping the catalogue URL shape (/api/courses/{courseID}/lessons).
func (handler *Handler) RegisterCourseRoutes(router chi.Router) {
	router.Get("/{courseID}/lessons", handler.listByCourse)
}

// # Request Payloads

type createLessonRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	CourseID string `json:"courseId"`
}

/*
CreateLesson attaches a new lesson to an owned course.

POST /api/lessons

Description: The role is checked before the body is decoded; course existence
(404) is resolved before the ownership verdict (403).

Request:
  - Body: createLessonRequest (Title, Content, CourseID)

Response:
  - 201: Success: lessonId
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 401: ErrUnauthorized: Missing or invalid token
  - 403: ErrForbidden: Not an instructor, or not the course owner
  - 404: ErrNotFound: "Course not found."
*/
func (handler *Handler) createLesson(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := authz.RequireRole(claims, sec.RoleInstructor, authz.MsgOnlyInstructorsAddLesson); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createLessonRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		Required(FieldContent, input.Content).
		UUID(FieldCourseID, input.CourseID)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	lesson, err := handler.service.Create(request.Context(), claims, CreateInput{
		Title:    input.Title,
		Content:  input.Content,
		CourseID: input.CourseID,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "", respond.Fields{
		FieldLessonID: lesson.ID,
	})
}

/*
ListByCourse returns the public lesson list of a course.

GET /api/courses/{courseID}/lessons

Response:
  - 200: Success: lessons
  - 400: ErrValidation: Malformed course ID
  - 404: ErrNotFound: "Course not found."
*/
func (handler *Handler) listByCourse(writer http.ResponseWriter, request *http.Request) {
	courseID := requestutil.Param(request, "courseID")

	validator := &validate.Validator{}
	validator.UUID(FieldCourseID, courseID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	lessons, err := handler.service.ListByCourse(request.Context(), courseID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if lessons == nil {
		lessons = []*Lesson{}
	}

	respond.OK(writer, "", respond.Fields{FieldLessons: lessons})
}
