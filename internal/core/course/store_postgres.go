// Copyright (c) 2026 Coursia. All rights reserved.

package course

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursia/api/internal/platform/apperr"
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

func (repository *PostgresRepository) Create(context context.Context, course *Course) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.Course.Table, schema.Course.ID, schema.Course.Title, schema.Course.Slug,
		schema.Course.Description, schema.Course.Price, schema.Course.InstructorID,
		schema.Course.CreatedAt, schema.Course.UpdatedAt,
		schema.Course.CreatedAt, schema.Course.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		course.ID, course.Title, course.Slug, course.Description, course.Price, course.InstructorID,
	).Scan(&course.CreatedAt, &course.UpdatedAt)

	return dberr.Wrap(err, "Course already exists")
}

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Course, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Course.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_courses")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		schema.Course.ID, schema.Course.Title, schema.Course.Slug, schema.Course.Description,
		schema.Course.Price, schema.Course.InstructorID, schema.Course.CreatedAt, schema.Course.UpdatedAt,
		schema.Course.Table, schema.Course.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_courses")
	}
	defer rows.Close()

	var courses []*Course
	for rows.Next() {
		c := &Course{}
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Slug, &c.Description, &c.Price, &c.InstructorID, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_course")
		}
		courses = append(courses, c)
	}

	return courses, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Course, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Course.ID, schema.Course.Title, schema.Course.Slug, schema.Course.Description,
		schema.Course.Price, schema.Course.InstructorID, schema.Course.CreatedAt, schema.Course.UpdatedAt,
		schema.Course.Table, schema.Course.ID,
	)

	c := &Course{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&c.ID, &c.Title, &c.Slug, &c.Description, &c.Price, &c.InstructorID, &c.CreatedAt, &c.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Course")
		}
		return nil, dberr.Wrap(err, "get_course")
	}

	return c, nil
}

func (repository *PostgresRepository) Update(context context.Context, course *Course) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1
	`,
		schema.Course.Table, schema.Course.Title, schema.Course.Slug, schema.Course.Description,
		schema.Course.Price, schema.Course.UpdatedAt, schema.Course.ID,
	)

	course.UpdatedAt = time.Now()
	cmd, err := repository.db.Exec(context, query,
		course.ID, course.Title, course.Slug, course.Description, course.Price, course.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update_course")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Course")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Course.Table, schema.Course.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_course")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Course")
	}
	return nil
}
