package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academia/course-portal/internal/app/models"
)

// Course error types
var (
	ErrCourseNotFound = errors.New("course not found")
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create persists a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (title, description)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, course.Title, course.Description).Scan(&course.ID)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetAll retrieves all courses with their enrollments, in persistence order.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, title, description
		FROM courses
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	byID := make(map[int64]*models.Course)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Title, &course.Description); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
		byID[course.ID] = &course
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachEnrollments(ctx, byID); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetCatalog retrieves all courses without relations. Used for the
// available-courses listing.
func (r *CourseRepository) GetCatalog(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, title, description
		FROM courses
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Title, &course.Description); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetByID retrieves a course by ID with its enrollments attached.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, title, description
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(&course.ID, &course.Title, &course.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	byID := map[int64]*models.Course{course.ID: &course}
	if err := r.attachEnrollments(ctx, byID); err != nil {
		return nil, err
	}

	return &course, nil
}

// Exists checks if a course exists with the given ID
func (r *CourseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}

	return exists, nil
}

// Update overwrites the mutable fields of an existing course.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET title = $1, description = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, course.Title, course.Description, course.ID)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID. Enrollments referencing the course are
// removed by the store's cascade rule.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// attachEnrollments loads enrollments for the given courses and attaches them
// in persistence order.
func (r *CourseRepository) attachEnrollments(ctx context.Context, courses map[int64]*models.Course) error {
	if len(courses) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(courses))
	for id := range courses {
		ids = append(ids, id)
	}

	query := `
		SELECT id, student_id, course_id
		FROM enrollments
		WHERE course_id = ANY($1)
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("error retrieving enrollments for courses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var enrollment models.Enrollment
		if err := rows.Scan(&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID); err != nil {
			return err
		}

		if course, ok := courses[enrollment.CourseID]; ok {
			course.Enrollments = append(course.Enrollments, &enrollment)
		}
	}

	return rows.Err()
}
