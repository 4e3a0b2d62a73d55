// Copyright (c) 2026 Coursia. All rights reserved.

package purchase

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursia/api/internal/core/course"
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

func (repository *PostgresRepository) Create(context context.Context, purchase *Purchase) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s
	`,
		schema.Purchase.Table, schema.Purchase.ID, schema.Purchase.UserID,
		schema.Purchase.CourseID, schema.Purchase.CreatedAt,
		schema.Purchase.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		purchase.ID, purchase.UserID, purchase.CourseID,
	).Scan(&purchase.CreatedAt)

	// The UNIQUE (userid, courseid) constraint is the duplicate check.
	return dberr.WrapConflict(err, "create_purchase", "Course already purchased")
}

func (repository *PostgresRepository) ListCoursesByUser(context context.Context, userID string) ([]*course.Course, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s
		FROM %s p
		JOIN %s c ON c.%s = p.%s
		WHERE p.%s = $1
		ORDER BY p.%s DESC
	`,
		schema.Course.ID, schema.Course.Title, schema.Course.Slug, schema.Course.Description,
		schema.Course.Price, schema.Course.InstructorID, schema.Course.CreatedAt, schema.Course.UpdatedAt,
		schema.Purchase.Table, schema.Course.Table, schema.Course.ID, schema.Purchase.CourseID,
		schema.Purchase.UserID, schema.Purchase.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_purchased_courses")
	}
	defer rows.Close()

	var courses []*course.Course
	for rows.Next() {
		c := &course.Course{}
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Slug, &c.Description, &c.Price, &c.InstructorID, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_purchased_course")
		}
		courses = append(courses, c)
	}

	return courses, nil
}
