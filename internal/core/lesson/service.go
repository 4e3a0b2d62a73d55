// Copyright (c) 2026 Coursia. All rights reserved.

package lesson

import (
	"context"
	"log/slog"

	"github.com/coursia/api/internal/authz"
	"github.com/coursia/api/internal/core/course"
	"github.com/coursia/api/internal/platform/sec"
	"github.com/coursia/api/pkg/uuid"
)

// CourseDirectory resolves a lesson's parent course. Satisfied by the course
// repository; lessons only need the lookup, never the mutations.
type CourseDirectory interface {
	FindByID(context context.Context, id string) (*course.Course, error)
}

// Service implements the lesson content use cases.
type Service struct {
	repo    Repository
	courses CourseDirectory
	logger  *slog.Logger
}

// NewService constructs a new [Service] with its storage dependencies.
func NewService(repo Repository, courses CourseDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		courses: courses,
		logger:  logger,
	}
}

// CreateInput holds the data required to attach a lesson to a course.
type CreateInput struct {
	Title    string
	Content  string
	CourseID string
}

/*
Create attaches a new lesson to a course owned by the caller.

Description: Loads the parent course first so a missing course yields
NotFound before the ownership verdict, then checks role and ownership.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims
  - input: CreateInput

Returns:
  - *Lesson: Created entity
  - err: NotFound ("Course not found."), Forbidden, or storage errors
*/
func (service *Service) Create(context context.Context, identity *sec.AuthClaims, input CreateInput) (*Lesson, error) {
	parent, err := service.courses.FindByID(context, input.CourseID)
	if err != nil {
		return nil, err
	}

	if err := authz.CanCreateLesson(identity, parent.InstructorID); err != nil {
		return nil, err
	}

	lesson := &Lesson{
		ID:       uuid.New(),
		Title:    input.Title,
		Content:  input.Content,
		CourseID: input.CourseID,
	}

	if err := service.repo.Create(context, lesson); err != nil {
		return nil, err
	}

	service.logger.Info("lesson_created",
		slog.String("lesson_id", lesson.ID),
		slog.String("course_id", lesson.CourseID),
	)

	return lesson, nil
}

/*
ListByCourse returns the lessons of a course.

Description: Resolves the course first so an unknown course yields
"Course not found." instead of an empty list.

Parameters:
  - context: context.Context
  - courseID: string

Returns:
  - []*Lesson: Lessons of the course
  - err: NotFound or retrieval failures
*/
func (service *Service) ListByCourse(context context.Context, courseID string) ([]*Lesson, error) {
	if _, err := service.courses.FindByID(context, courseID); err != nil {
		return nil, err
	}

	return service.repo.ListByCourse(context, courseID)
}
