package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/academia/course-portal/internal/app/models"
	"github.com/academia/course-portal/internal/pkg/dberrors"
)

// Student error types
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrUsernameTaken   = errors.New("username already exists")
)

// usernameUniqueConstraint is the unique index enforcing global username
// uniqueness on the students table.
const usernameUniqueConstraint = "students_username_key"

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create persists a new student. The password field must already be hashed.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, username, email, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.Name, student.Username, student.Email, student.Password).Scan(&student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, usernameUniqueConstraint) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetAll retrieves all students with their enrollments and each enrollment's
// course, in persistence order.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, name, username, email, password
		FROM students
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	byID := make(map[int64]*models.Student)
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
		byID[student.ID] = &student
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachEnrollments(ctx, byID); err != nil {
		return nil, err
	}

	return students, nil
}

// GetByID retrieves a student by ID with enrollments and courses attached.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, name, username, email, password
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.Username,
		&student.Email,
		&student.Password,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	byID := map[int64]*models.Student{student.ID: &student}
	if err := r.attachEnrollments(ctx, byID); err != nil {
		return nil, err
	}

	return &student, nil
}

// GetByUsername retrieves a student by username for credential verification.
// No relations are loaded.
func (r *StudentRepository) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	query := `
		SELECT id, name, username, email, password
		FROM students
		WHERE username = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, username).Scan(
		&student.ID,
		&student.Name,
		&student.Username,
		&student.Email,
		&student.Password,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by username: %w", err)
	}

	return &student, nil
}

// ExistsByUsername checks if a student exists with the given username
func (r *StudentRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking username existence: %w", err)
	}

	return exists, nil
}

// Exists checks if a student exists with the given ID
func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// Update overwrites name and email for a student. The password column is
// touched only when passwordHash is non-empty, so an update without a new
// password never blanks the stored hash.
func (r *StudentRepository) Update(ctx context.Context, id int64, name, email, passwordHash string) error {
	var cmdTag pgconn.CommandTag
	var err error

	if passwordHash != "" {
		cmdTag, err = r.db.Exec(ctx, `
			UPDATE students
			SET name = $1, email = $2, password = $3
			WHERE id = $4
		`, name, email, passwordHash, id)
	} else {
		cmdTag, err = r.db.Exec(ctx, `
			UPDATE students
			SET name = $1, email = $2
			WHERE id = $3
		`, name, email, id)
	}

	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by ID. Enrollments referencing the student are
// removed by the store's cascade rule.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// attachEnrollments loads enrollments (with their course) for the given
// students and attaches them in persistence order.
func (r *StudentRepository) attachEnrollments(ctx context.Context, students map[int64]*models.Student) error {
	if len(students) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(students))
	for id := range students {
		ids = append(ids, id)
	}

	query := `
		SELECT e.id, e.student_id, e.course_id, c.id, c.title, c.description
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = ANY($1)
		ORDER BY e.id
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("error retrieving enrollments for students: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var enrollment models.Enrollment
		var course models.Course
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.StudentID,
			&enrollment.CourseID,
			&course.ID,
			&course.Title,
			&course.Description,
		); err != nil {
			return err
		}
		enrollment.Course = &course

		if student, ok := students[enrollment.StudentID]; ok {
			student.Enrollments = append(student.Enrollments, &enrollment)
		}
	}

	return rows.Err()
}
