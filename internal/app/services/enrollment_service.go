package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/academia/course-portal/internal/app/models"
	"github.com/academia/course-portal/internal/app/repositories"
	"github.com/academia/course-portal/internal/pkg/apperrors"
)

// enrollmentService implements EnrollmentService. The duplicate and existence
// checks themselves run atomically inside the repository's transaction; this
// layer maps repository errors onto the API error taxonomy.
type enrollmentService struct {
	enrollmentRepo repositories.IEnrollmentRepository
	studentRepo    repositories.IStudentRepository
	courseRepo     repositories.ICourseRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(
	enrollmentRepo repositories.IEnrollmentRepository,
	studentRepo repositories.IStudentRepository,
	courseRepo repositories.ICourseRepository,
) EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
	}
}

// GetAllEnrollments retrieves all enrollments with student and course attached.
func (s *enrollmentService) GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}

	return enrollments, nil
}

// GetEnrollmentByID retrieves an enrollment by ID
func (s *enrollmentService) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid enrollment ID", apperrors.ErrValidationFailed)
	}

	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEnrollmentNotFound) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return enrollment, nil
}

// Enroll links a student to a course. Fails with a bad request when either
// endpoint does not exist or an enrollment for the pair already exists.
func (s *enrollmentService) Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	if studentID <= 0 || courseID <= 0 {
		return nil, fmt.Errorf("%w: student and course IDs are required", apperrors.ErrValidationFailed)
	}

	enrollment := &models.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		switch {
		case errors.Is(err, repositories.ErrEnrollmentTargetMissing):
			return nil, apperrors.ErrEnrollmentTargetMissing
		case errors.Is(err, repositories.ErrAlreadyEnrolled):
			return nil, apperrors.ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	return enrollment, nil
}

// UpdateEnrollment re-points an enrollment under the same invariants as Enroll.
func (s *enrollmentService) UpdateEnrollment(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment == nil || enrollment.ID <= 0 {
		return fmt.Errorf("%w: invalid enrollment ID", apperrors.ErrValidationFailed)
	}
	if enrollment.StudentID <= 0 || enrollment.CourseID <= 0 {
		return fmt.Errorf("%w: student and course IDs are required", apperrors.ErrValidationFailed)
	}

	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		switch {
		case errors.Is(err, repositories.ErrEnrollmentNotFound):
			return apperrors.ErrEnrollmentNotFound
		case errors.Is(err, repositories.ErrEnrollmentTargetMissing):
			return apperrors.ErrEnrollmentTargetMissing
		case errors.Is(err, repositories.ErrAlreadyEnrolled):
			return apperrors.ErrAlreadyEnrolled
		}
		return fmt.Errorf("error updating enrollment: %w", err)
	}

	return nil
}

// Unenroll deletes an enrollment by ID
func (s *enrollmentService) Unenroll(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid enrollment ID", apperrors.ErrValidationFailed)
	}

	if err := s.enrollmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEnrollmentNotFound) {
			return apperrors.ErrEnrollmentNotFound
		}
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	return nil
}

// CoursesForStudent lists the courses a student is enrolled in, in
// persistence order of the enrollments.
func (s *enrollmentService) CoursesForStudent(ctx context.Context, studentID int64) ([]*models.Course, error) {
	if studentID <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	exists, err := s.studentRepo.Exists(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	courses, err := s.enrollmentRepo.CoursesForStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses for student: %w", err)
	}

	return courses, nil
}

// StudentsForCourse lists the students enrolled in a course, in persistence
// order of the enrollments.
func (s *enrollmentService) StudentsForCourse(ctx context.Context, courseID int64) ([]*models.Student, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	exists, err := s.courseRepo.Exists(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	students, err := s.enrollmentRepo.StudentsForCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students for course: %w", err)
	}

	return students, nil
}
