// Copyright (c) 2026 Coursia. All rights reserved.

package course

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursia/api/internal/authz"
	"github.com/coursia/api/internal/platform/apperr"
	"github.com/coursia/api/internal/platform/sec"
	"github.com/coursia/api/pkg/pagination"
	"github.com/coursia/api/pkg/pointer"
)

// fakeRepository is an in-memory Repository preserving insertion order.
type fakeRepository struct {
	courses []*Course
}

func (f *fakeRepository) Create(_ context.Context, course *Course) error {
	f.courses = append(f.courses, course)
	return nil
}

func (f *fakeRepository) List(_ context.Context, limit, offset int) ([]*Course, int, error) {
	total := len(f.courses)
	if offset >= total {
		return nil, total, nil
	}
	end := min(offset+limit, total)
	return f.courses[offset:end], total, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*Course, error) {
	for _, course := range f.courses {
		if course.ID == id {
			return course, nil
		}
	}
	return nil, apperr.NotFound("Course")
}

func (f *fakeRepository) Update(_ context.Context, course *Course) error {
	for i, existing := range f.courses {
		if existing.ID == course.ID {
			f.courses[i] = course
			return nil
		}
	}
	return apperr.NotFound("Course")
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	for i, existing := range f.courses {
		if existing.ID == id {
			f.courses = append(f.courses[:i], f.courses[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Course")
}

// fakeCache records invalidations and optionally serves one canned page.
type fakeCache struct {
	page          []*Course
	total         int
	invalidations int
	sets          int
}

func (f *fakeCache) GetPage(_ context.Context, _, _ int) ([]*Course, int, error) {
	if f.page == nil {
		return nil, 0, apperr.NotFound("Catalogue page")
	}
	return f.page, f.total, nil
}

func (f *fakeCache) SetPage(_ context.Context, _, _ int, courses []*Course, total int) error {
	f.sets++
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context) error {
	f.invalidations++
	return nil
}

func instructor(id string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: id, Role: string(sec.RoleInstructor)}
}

func student(id string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: id, Role: string(sec.RoleStudent)}
}

func newTestService() (*Service, *fakeRepository, *fakeCache) {
	repo := &fakeRepository{}
	cache := &fakeCache{}
	service := NewService(repo, cache, slog.Default())
	return service, repo, cache
}

func assertForbidden(t *testing.T, err error, message string) {
	t.Helper()
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 403, ae.HTTPStatus)
	assert.Equal(t, message, ae.Message)
}

func TestCreate_Instructor(t *testing.T) {
	service, repo, cache := newTestService()

	course, err := service.Create(context.Background(), instructor("ins-1"), CreateInput{
		Title: "Introduction to Go",
		Price: 4900,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, course.ID)
	assert.Equal(t, "introduction-to-go", course.Slug)
	assert.Equal(t, "ins-1", course.InstructorID)
	assert.Len(t, repo.courses, 1)
	assert.Equal(t, 1, cache.invalidations)
}

func TestCreate_StudentDenied(t *testing.T) {
	service, repo, _ := newTestService()

	_, err := service.Create(context.Background(), student("stu-1"), CreateInput{
		Title: "Sneaky Course", Price: 100,
	})

	assertForbidden(t, err, authz.MsgOnlyInstructorsCreateCourse)
	assert.Empty(t, repo.courses)
}

func TestUpdate_PartialFields(t *testing.T) {
	service, _, cache := newTestService()

	created, err := service.Create(context.Background(), instructor("ins-1"), CreateInput{
		Title:       "Old Title",
		Description: pointer.To("old description"),
		Price:       1000,
	})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), instructor("ins-1"), created.ID, UpdateInput{
		Title: pointer.To("New Title"),
	})

	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "new-title", updated.Slug)
	assert.Equal(t, "old description", pointer.Val(updated.Description))
	assert.Equal(t, 1000, updated.Price)
	assert.Equal(t, 2, cache.invalidations)
}

func TestUpdate_Authorization(t *testing.T) {
	service, _, _ := newTestService()

	created, err := service.Create(context.Background(), instructor("owner"), CreateInput{
		Title: "Owned Course", Price: 1000,
	})
	require.NoError(t, err)

	tests := []struct {
		name        string
		identity    *sec.AuthClaims
		courseID    string
		wantStatus  int
		wantMessage string
	}{
		{"student", student("stu-1"), created.ID, 403, authz.MsgOnlyInstructorsModifyCourse},
		{"non-owning instructor", instructor("rival"), created.ID, 403, authz.MsgUnauthorized},
		{"missing course wins over ownership", instructor("rival"), "01890000-0000-7000-8000-000000000000", 404, "Course not found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Update(context.Background(), tt.identity, tt.courseID, UpdateInput{
				Price: pointer.To(1),
			})

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantStatus, ae.HTTPStatus)
			assert.Equal(t, tt.wantMessage, ae.Message)
		})
	}
}

func TestDelete_OwnerOnly(t *testing.T) {
	service, repo, _ := newTestService()

	created, err := service.Create(context.Background(), instructor("owner"), CreateInput{
		Title: "Owned Course", Price: 1000,
	})
	require.NoError(t, err)

	err = service.Delete(context.Background(), instructor("rival"), created.ID)
	assertForbidden(t, err, authz.MsgUnauthorized)
	assert.Len(t, repo.courses, 1)

	err = service.Delete(context.Background(), instructor("owner"), created.ID)
	require.NoError(t, err)
	assert.Empty(t, repo.courses)
}

func TestList_CacheFallthrough(t *testing.T) {
	service, repo, cache := newTestService()
	repo.courses = []*Course{{ID: "c1", Title: "Cached Later"}}

	// Miss populates the cache from the repository.
	courses, total, err := service.List(context.Background(), pagination.Params{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, courses, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, cache.sets)

	// A primed cache short-circuits the repository.
	cache.page = []*Course{{ID: "c2", Title: "From Cache"}}
	cache.total = 7

	courses, total, err = service.List(context.Background(), pagination.Params{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, "c2", courses[0].ID)
	assert.Equal(t, 7, total)
	assert.Equal(t, 1, cache.sets, "a cache hit must not rewrite the page")
}
