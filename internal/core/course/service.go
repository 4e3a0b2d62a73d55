// Copyright (c) 2026 Coursia. All rights reserved.

package course

import (
	"context"
	"log/slog"

	"github.com/coursia/api/internal/authz"
	"github.com/coursia/api/internal/platform/sec"
	"github.com/coursia/api/pkg/pagination"
	"github.com/coursia/api/pkg/slug"
	"github.com/coursia/api/pkg/uuid"
)

// Service implements the course catalogue use cases.
type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

// NewService constructs a new [Service] with its storage and cache dependencies.
func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// CreateInput holds the data required to publish a new course.
type CreateInput struct {
	Title       string
	Description *string
	Price       int
}

/*
Create publishes a new course owned by the authenticated instructor.

Description: Verifies the instructor role, derives a URL slug from the title,
and persists the course. The catalogue cache is invalidated afterwards.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims
  - input: CreateInput

Returns:
  - *Course: Created entity
  - err: Forbidden (non-instructor) or storage errors
*/
func (service *Service) Create(context context.Context, identity *sec.AuthClaims, input CreateInput) (*Course, error) {
	if err := authz.CanCreateCourse(identity); err != nil {
		return nil, err
	}

	course := &Course{
		ID:           uuid.New(),
		Title:        input.Title,
		Slug:         slug.From(input.Title),
		Description:  input.Description,
		Price:        input.Price,
		InstructorID: identity.UserID,
	}

	if err := service.repo.Create(context, course); err != nil {
		return nil, err
	}

	service.invalidateCatalogue(context)
	service.logger.Info("course_created",
		slog.String("course_id", course.ID),
		slog.String("instructor_id", course.InstructorID),
	)

	return course, nil
}

/*
List returns one catalogue page, served from cache when possible.

Description: Cache misses fall through to the repository and repopulate the
cache. Cache failures are logged and never surface to the caller.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []*Course: Page of courses
  - int: Total course count
  - err: Retrieval failures
*/
func (service *Service) List(context context.Context, params pagination.Params) ([]*Course, int, error) {
	if courses, total, err := service.cache.GetPage(context, params.Page, params.Limit); err == nil {
		return courses, total, nil
	}

	courses, total, err := service.repo.List(context, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, err
	}

	if err := service.cache.SetPage(context, params.Page, params.Limit, courses, total); err != nil {
		service.logger.Warn("course_cache_set_failed", slog.Any("error", err))
	}

	return courses, total, nil
}

// GetByID returns a single course, or a NotFound error.
func (service *Service) GetByID(context context.Context, id string) (*Course, error) {
	return service.repo.FindByID(context, id)
}

// UpdateInput holds the patchable course fields. Nil fields are left unchanged.
type UpdateInput struct {
	Title       *string
	Description *string
	Price       *int
}

/*
Update applies a partial update to a course owned by the caller.

Description: Loads the course first so a missing resource yields NotFound
before any ownership verdict, then checks role and ownership, applies the
non-nil fields, and persists. The slug follows the title.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims
  - id: string
  - input: UpdateInput

Returns:
  - *Course: Updated entity
  - err: NotFound, Forbidden, or storage errors
*/
func (service *Service) Update(context context.Context, identity *sec.AuthClaims, id string, input UpdateInput) (*Course, error) {
	course, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if err := authz.CanModifyCourse(identity, course.InstructorID); err != nil {
		return nil, err
	}

	if input.Title != nil {
		course.Title = *input.Title
		course.Slug = slug.From(*input.Title)
	}
	if input.Description != nil {
		course.Description = input.Description
	}
	if input.Price != nil {
		course.Price = *input.Price
	}

	if err := service.repo.Update(context, course); err != nil {
		return nil, err
	}

	service.invalidateCatalogue(context)
	service.logger.Info("course_updated", slog.String("course_id", course.ID))

	return course, nil
}

/*
Delete removes a course owned by the caller.

Description: Same precedence as Update — existence before ownership.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims
  - id: string

Returns:
  - err: NotFound, Forbidden, or storage errors
*/
func (service *Service) Delete(context context.Context, identity *sec.AuthClaims, id string) error {
	course, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}

	if err := authz.CanModifyCourse(identity, course.InstructorID); err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.invalidateCatalogue(context)
	service.logger.Warn("course_deleted", slog.String("course_id", id))

	return nil
}

// invalidateCatalogue drops the cached catalogue pages, logging on failure.
func (service *Service) invalidateCatalogue(context context.Context) {
	if err := service.cache.Invalidate(context); err != nil {
		service.logger.Warn("course_cache_invalidate_failed", slog.Any("error", err))
	}
}
