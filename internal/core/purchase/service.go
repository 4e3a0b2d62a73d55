// Copyright (c) 2026 Coursia. All rights reserved.

package purchase

import (
	"context"
	"log/slog"

	"github.com/coursia/api/internal/authz"
	"github.com/coursia/api/internal/core/course"
	"github.com/coursia/api/internal/platform/sec"
	"github.com/coursia/api/pkg/uuid"
)

// CourseDirectory resolves the course being purchased. Satisfied by the
// course repository.
type CourseDirectory interface {
	FindByID(context context.Context, id string) (*course.Course, error)
}

// Service implements the purchase use cases.
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

/*
Create records a student's purchase of a course.

Description: Verifies the student role and course existence, then inserts
directly; the duplicate check is the database constraint, so concurrent
purchases of the same course by the same student collapse to one 201 and one
409 rather than two rows.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims
  - courseID: string

Returns:
  - *Purchase: Created entity
  - err: Forbidden (non-student), NotFound, Conflict, or storage errors
*/
func (service *Service) Create(context context.Context, identity *sec.AuthClaims, courseID string) (*Purchase, error) {
	if err := authz.CanPurchase(identity); err != nil {
		return nil, err
	}

	if _, err := service.courses.FindByID(context, courseID); err != nil {
		return nil, err
	}

	purchase := &Purchase{
		ID:       uuid.New(),
		UserID:   identity.UserID,
		CourseID: courseID,
	}

	if err := service.repo.Create(context, purchase); err != nil {
		return nil, err
	}

	service.logger.Info("course_purchased",
		slog.String("purchase_id", purchase.ID),
		slog.String("user_id", purchase.UserID),
		slog.String("course_id", purchase.CourseID),
	)

	return purchase, nil
}

/*
ListByUser returns the courses a user has purchased.

Description: An identity may list only its own purchases, regardless of role.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims
  - targetUserID: string

Returns:
  - []*course.Course: Purchased courses
  - err: Forbidden (foreign user) or retrieval failures
*/
func (service *Service) ListByUser(context context.Context, identity *sec.AuthClaims, targetUserID string) ([]*course.Course, error) {
	if err := authz.CanViewPurchases(identity, targetUserID); err != nil {
		return nil, err
	}

	return service.repo.ListCoursesByUser(context, targetUserID)
}
