// Copyright (c) 2026 Coursia. All rights reserved.

package lesson

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

// fakeRepository is an in-memory lesson Repository.
type fakeRepository struct {
	lessons []*Lesson
}

func (f *fakeRepository) Create(_ context.Context, lesson *Lesson) error {
	f.lessons = append(f.lessons, lesson)
	return nil
}

func (f *fakeRepository) ListByCourse(_ context.Context, courseID string) ([]*Lesson, error) {
	var out []*Lesson
	for _, lesson := range f.lessons {
		if lesson.CourseID == courseID {
			out = append(out, lesson)
		}
	}
	return out, nil
}

// fakeCourseDirectory serves a fixed set of courses.
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

func instructor(id string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: id, Role: string(sec.RoleInstructor)}
}

func student(id string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: id, Role: string(sec.RoleStudent)}
}

func newTestService() (*Service, *fakeRepository) {
	repo := &fakeRepository{}
	courses := &fakeCourseDirectory{byID: map[string]*course.Course{
		"course-1": {ID: "course-1", Title: "Owned Course", InstructorID: "owner"},
	}}
	return NewService(repo, courses, slog.Default()), repo
}

func TestCreate_Owner(t *testing.T) {
	service, repo := newTestService()

	lesson, err := service.Create(context.Background(), instructor("owner"), CreateInput{
		Title:    "Lesson 1",
		Content:  "Hello, lessons.",
		CourseID: "course-1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, lesson.ID)
	assert.Equal(t, "course-1", lesson.CourseID)
	assert.Len(t, repo.lessons, 1)
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
		{"student", student("stu-1"), "course-1", 403, authz.MsgOnlyInstructorsAddLesson},
		{"non-owning instructor", instructor("rival"), "course-1", 403, authz.MsgUnauthorized},
		{"missing course wins over ownership", instructor("rival"), "missing", 404, "Course not found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), tt.identity, CreateInput{
				Title: "Lesson", Content: "Content", CourseID: tt.courseID,
			})

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantStatus, ae.HTTPStatus)
			assert.Equal(t, tt.wantMessage, ae.Message)
		})
	}

	assert.Empty(t, repo.lessons)
}

func TestListByCourse(t *testing.T) {
	service, repo := newTestService()
	repo.lessons = []*Lesson{
		{ID: "l1", CourseID: "course-1"},
		{ID: "l2", CourseID: "other"},
	}

	lessons, err := service.ListByCourse(context.Background(), "course-1")
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Equal(t, "l1", lessons[0].ID)

	_, err = service.ListByCourse(context.Background(), "missing")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)
}
