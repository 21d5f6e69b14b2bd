package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/academia/course-portal/internal/app/models"
	"github.com/academia/course-portal/internal/db"
	"github.com/academia/course-portal/internal/pkg/dberrors"
)

// Enrollment error types
var (
	ErrEnrollmentNotFound      = errors.New("enrollment not found")
	ErrAlreadyEnrolled         = errors.New("student is already enrolled in this course")
	ErrEnrollmentTargetMissing = errors.New("student or course not found")
)

// enrollmentPairConstraint enforces at most one enrollment per
// (student_id, course_id) pair.
const enrollmentPairConstraint = "enrollments_student_course_key"

// EnrollmentRepository handles database operations for enrollments. Writes
// run inside a transaction so the existence and duplicate checks are atomic
// with the insert; the unique constraint on the pair is the backstop for
// anything that slips past.
type EnrollmentRepository struct {
	db *db.PostgresDB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(database *db.PostgresDB) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: database,
	}
}

// Create persists a new enrollment after verifying, in the same transaction,
// that both endpoints exist and the pair is not already enrolled.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := checkEnrollmentTargets(ctx, tx, enrollment.StudentID, enrollment.CourseID); err != nil {
			return err
		}

		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
			enrollment.StudentID, enrollment.CourseID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking enrollment existence: %w", err)
		}
		if exists {
			return ErrAlreadyEnrolled
		}

		return tx.QueryRow(ctx, `
			INSERT INTO enrollments (student_id, course_id)
			VALUES ($1, $2)
			RETURNING id`,
			enrollment.StudentID, enrollment.CourseID).Scan(&enrollment.ID)
	})
	if err != nil {
		if dberrors.IsUniqueViolation(err, enrollmentPairConstraint) {
			return ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err) {
			return ErrEnrollmentTargetMissing
		}
		return err
	}

	return nil
}

// GetAll retrieves all enrollments with their student and course attached,
// in persistence order.
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	rows, err := r.db.Pool.Query(ctx, enrollmentSelect+` ORDER BY e.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// GetByID retrieves an enrollment by ID with student and course attached.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	rows, err := r.db.Pool.Query(ctx, enrollmentSelect+` WHERE e.id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEnrollmentNotFound
	}

	return scanEnrollment(rows)
}

// Update re-points an existing enrollment under the same invariants as
// Create: both endpoints must exist and the new pair must not be taken.
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM enrollments WHERE id = $1)`, enrollment.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking enrollment existence: %w", err)
		}
		if !exists {
			return ErrEnrollmentNotFound
		}

		if err := checkEnrollmentTargets(ctx, tx, enrollment.StudentID, enrollment.CourseID); err != nil {
			return err
		}

		err = tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM enrollments
			WHERE student_id = $1 AND course_id = $2 AND id != $3)`,
			enrollment.StudentID, enrollment.CourseID, enrollment.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking enrollment uniqueness: %w", err)
		}
		if exists {
			return ErrAlreadyEnrolled
		}

		_, err = tx.Exec(ctx, `
			UPDATE enrollments
			SET student_id = $1, course_id = $2
			WHERE id = $3`,
			enrollment.StudentID, enrollment.CourseID, enrollment.ID)
		return err
	})
	if err != nil {
		if dberrors.IsUniqueViolation(err, enrollmentPairConstraint) {
			return ErrAlreadyEnrolled
		}
		return err
	}

	return nil
}

// Delete deletes an enrollment by ID
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrEnrollmentNotFound
	}

	return nil
}

// CoursesForStudent returns, in persistence order of the enrollments, the
// courses the student is enrolled in. Callers verify the student exists.
func (r *EnrollmentRepository) CoursesForStudent(ctx context.Context, studentID int64) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.title, c.description
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = $1
		ORDER BY e.id
	`

	rows, err := r.db.Pool.Query(ctx, query, studentID)
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

// StudentsForCourse returns, in persistence order of the enrollments, the
// students enrolled in the course. Callers verify the course exists.
func (r *EnrollmentRepository) StudentsForCourse(ctx context.Context, courseID int64) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.name, s.username, s.email, s.password
		FROM enrollments e
		JOIN students s ON s.id = e.student_id
		WHERE e.course_id = $1
		ORDER BY e.id
	`

	rows, err := r.db.Pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Username,
			&student.Email,
			&student.Password,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

const enrollmentSelect = `
	SELECT e.id, e.student_id, e.course_id,
	       s.id, s.name, s.username, s.email,
	       c.id, c.title, c.description
	FROM enrollments e
	JOIN students s ON s.id = e.student_id
	JOIN courses c ON c.id = e.course_id`

// scanEnrollment scans one row of enrollmentSelect.
func scanEnrollment(rows pgx.Rows) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	var student models.Student
	var course models.Course

	if err := rows.Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.CourseID,
		&student.ID,
		&student.Name,
		&student.Username,
		&student.Email,
		&course.ID,
		&course.Title,
		&course.Description,
	); err != nil {
		return nil, err
	}

	enrollment.Student = &student
	enrollment.Course = &course
	return &enrollment, nil
}

// checkEnrollmentTargets verifies both endpoints of an enrollment exist
// within the caller's transaction.
func checkEnrollmentTargets(ctx context.Context, tx pgx.Tx, studentID, courseID int64) error {
	var studentExists, courseExists bool

	err := tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, studentID).Scan(&studentExists)
	if err != nil {
		return fmt.Errorf("error checking student existence: %w", err)
	}

	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, courseID).Scan(&courseExists)
	if err != nil {
		return fmt.Errorf("error checking course existence: %w", err)
	}

	if !studentExists || !courseExists {
		return ErrEnrollmentTargetMissing
	}

	return nil
}
