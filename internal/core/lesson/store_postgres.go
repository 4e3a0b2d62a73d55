// Copyright (c) 2026 Coursia. All rights reserved.

package lesson

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursia/api/internal/platform/database/schema"
	"github.com/coursia/api/internal/platform/dberr"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Create(context context.Context, lesson *Lesson) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING %s
	`,
		schema.Lesson.Table, schema.Lesson.ID, schema.Lesson.Title, schema.Lesson.Content,
		schema.Lesson.CourseID, schema.Lesson.CreatedAt,
		schema.Lesson.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		lesson.ID, lesson.Title, lesson.Content, lesson.CourseID,
	).Scan(&lesson.CreatedAt)

	return dberr.Wrap(err, "create_lesson")
}

func (repository *PostgresRepository) ListByCourse(context context.Context, courseID string) ([]*Lesson, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		schema.Lesson.ID, schema.Lesson.Title, schema.Lesson.Content,
		schema.Lesson.CourseID, schema.Lesson.CreatedAt,
		schema.Lesson.Table, schema.Lesson.CourseID, schema.Lesson.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, courseID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_lessons")
	}
	defer rows.Close()

	var lessons []*Lesson
	for rows.Next() {
		l := &Lesson{}
		if err := rows.Scan(&l.ID, &l.Title, &l.Content, &l.CourseID, &l.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_lesson")
		}
		lessons = append(lessons, l)
	}

	return lessons, nil
}
