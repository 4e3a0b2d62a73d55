// Copyright (c) 2026 Coursia. All rights reserved.

package purchase

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursia/api/internal/authz"
	"github.com/coursia/api/internal/core/course"
	"github.com/coursia/api/internal/platform/apperr"
	"github.com/coursia/api/internal/platform/sec"
)

// fakeRepository enforces the (user, course) uniqueness the way the real
// table constraint does.
type fakeRepository struct {
	purchases []*Purchase
	courses   map[string]*course.Course
}

func (f *fakeRepository) Create(_ context.Context, purchase *Purchase) error {
	for _, existing := range f.purchases {
		if existing.UserID == purchase.UserID && existing.CourseID == purchase.CourseID {
			return apperr.Conflict("Course already purchased")
		}
	}
	f.purchases = append(f.purchases, purchase)
	return nil
}

func (f *fakeRepository) ListCoursesByUser(_ context.Context, userID string) ([]*course.Course, error) {
	var out []*course.Course
	for _, purchase := range f.purchases {
		if purchase.UserID == userID {
			out = append(out, f.courses[purchase.CourseID])
		}
	}
	return out, nil
}

// fakeCourseDirectory serves the same course set as the repository.
type fakeCourseDirectory struct {
	byID map[string]*course.Course
}

func (f *fakeCourseDirectory) FindByID(_ context.Context, id string) (*course.Course, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, apperr.NotFound("Course")
	}
	return c, nil
}

func student(id string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: id, Role: string(sec.RoleStudent)}
}

func instructor(id string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: id, Role: string(sec.RoleInstructor)}
}

func newTestService() (*Service, *fakeRepository) {
	catalogue := map[string]*course.Course{
		"course-1": {ID: "course-1", Title: "Course One", InstructorID: "ins-1"},
	}
	repo := &fakeRepository{courses: catalogue}
	return NewService(repo, &fakeCourseDirectory{byID: catalogue}, slog.Default()), repo
}

func TestCreate_Student(t *testing.T) {
	service, repo := newTestService()

	purchase, err := service.Create(context.Background(), student("stu-1"), "course-1")

	require.NoError(t, err)
	assert.NotEmpty(t, purchase.ID)
	assert.Equal(t, "stu-1", purchase.UserID)
	assert.Len(t, repo.purchases, 1)
}

func TestCreate_Denials(t *testing.T) {
	service, repo := newTestService()

	tests := []struct {
		name        string
		identity    *sec.AuthClaims
		courseID    string
		wantStatus  int
		wantMessage string
	}{
		{"instructor", instructor("ins-1"), "course-1", 403, authz.MsgOnlyStudentsPurchase},
		{"missing course", student("stu-1"), "missing", 404, "Course not found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), tt.identity, tt.courseID)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantStatus, ae.HTTPStatus)
			assert.Equal(t, tt.wantMessage, ae.Message)
		})
	}

	assert.Empty(t, repo.purchases)
}

func TestCreate_DuplicateConflict(t *testing.T) {
	service, repo := newTestService()

	_, err := service.Create(context.Background(), student("stu-1"), "course-1")
	require.NoError(t, err)

	_, err = service.Create(context.Background(), student("stu-1"), "course-1")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 409, ae.HTTPStatus)
	assert.Equal(t, "Course already purchased", ae.Message)
	assert.Len(t, repo.purchases, 1)
}

func TestListByUser_SelfOnly(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Create(context.Background(), student("stu-1"), "course-1")
	require.NoError(t, err)

	courses, err := service.ListByUser(context.Background(), student("stu-1"), "stu-1")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "course-1", courses[0].ID)

	// A valid token for a different user is still denied.
	_, err = service.ListByUser(context.Background(), student("stu-2"), "stu-1")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 403, ae.HTTPStatus)
	assert.Equal(t, authz.MsgCannotViewPurchases, ae.Message)
}
