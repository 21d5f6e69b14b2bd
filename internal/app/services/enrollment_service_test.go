package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academia/course-portal/internal/app/models"
	"github.com/academia/course-portal/internal/app/repositories"
	"github.com/academia/course-portal/internal/pkg/apperrors"
)

func newTestEnrollmentService(
	enrollmentRepo *mockEnrollmentRepository,
	studentRepo *mockStudentRepository,
	courseRepo *mockCourseRepository,
) EnrollmentService {
	if enrollmentRepo == nil {
		enrollmentRepo = &mockEnrollmentRepository{}
	}
	if studentRepo == nil {
		studentRepo = &mockStudentRepository{}
	}
	if courseRepo == nil {
		courseRepo = &mockCourseRepository{}
	}
	return NewEnrollmentService(enrollmentRepo, studentRepo, courseRepo)
}

func TestEnrollSuccess(t *testing.T) {
	enrollmentRepo := &mockEnrollmentRepository{
		createFn: func(ctx context.Context, enrollment *models.Enrollment) error {
			enrollment.ID = 7
			return nil
		},
	}
	service := newTestEnrollmentService(enrollmentRepo, nil, nil)

	enrollment, err := service.Enroll(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(7), enrollment.ID)
	assert.Equal(t, int64(1), enrollment.StudentID)
	assert.Equal(t, int64(2), enrollment.CourseID)
}

func TestEnrollInvalidIDs(t *testing.T) {
	service := newTestEnrollmentService(nil, nil, nil)

	_, err := service.Enroll(context.Background(), 0, 2)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = service.Enroll(context.Background(), 1, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestEnrollTargetMissing(t *testing.T) {
	enrollmentRepo := &mockEnrollmentRepository{
		createFn: func(ctx context.Context, enrollment *models.Enrollment) error {
			return repositories.ErrEnrollmentTargetMissing
		},
	}
	service := newTestEnrollmentService(enrollmentRepo, nil, nil)

	_, err := service.Enroll(context.Background(), 99, 2)
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentTargetMissing)
}

func TestEnrollDuplicatePair(t *testing.T) {
	enrollmentRepo := &mockEnrollmentRepository{
		createFn: func(ctx context.Context, enrollment *models.Enrollment) error {
			return repositories.ErrAlreadyEnrolled
		},
	}
	service := newTestEnrollmentService(enrollmentRepo, nil, nil)

	_, err := service.Enroll(context.Background(), 1, 2)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
}

func TestUpdateEnrollmentIDValidation(t *testing.T) {
	service := newTestEnrollmentService(nil, nil, nil)

	err := service.UpdateEnrollment(context.Background(), &models.Enrollment{StudentID: 1, CourseID: 2})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = service.UpdateEnrollment(context.Background(), &models.Enrollment{ID: 1, CourseID: 2})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateEnrollmentNotFound(t *testing.T) {
	enrollmentRepo := &mockEnrollmentRepository{
		updateFn: func(ctx context.Context, enrollment *models.Enrollment) error {
			return repositories.ErrEnrollmentNotFound
		},
	}
	service := newTestEnrollmentService(enrollmentRepo, nil, nil)

	err := service.UpdateEnrollment(context.Background(), &models.Enrollment{ID: 9, StudentID: 1, CourseID: 2})
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
}

func TestUnenrollNotFound(t *testing.T) {
	enrollmentRepo := &mockEnrollmentRepository{
		deleteFn: func(ctx context.Context, id int64) error {
			return repositories.ErrEnrollmentNotFound
		},
	}
	service := newTestEnrollmentService(enrollmentRepo, nil, nil)

	err := service.Unenroll(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
}

func TestCoursesForStudent(t *testing.T) {
	studentRepo := &mockStudentRepository{
		existsFn: func(ctx context.Context, id int64) (bool, error) {
			return true, nil
		},
	}
	enrollmentRepo := &mockEnrollmentRepository{
		coursesForStudentFn: func(ctx context.Context, studentID int64) ([]*models.Course, error) {
			assert.Equal(t, int64(1), studentID)
			return []*models.Course{{ID: 2, Title: "Linear Algebra"}}, nil
		},
	}
	service := newTestEnrollmentService(enrollmentRepo, studentRepo, nil)

	courses, err := service.CoursesForStudent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Linear Algebra", courses[0].Title)
}

func TestCoursesForStudentUnknownStudent(t *testing.T) {
	studentRepo := &mockStudentRepository{
		existsFn: func(ctx context.Context, id int64) (bool, error) {
			return false, nil
		},
	}
	service := newTestEnrollmentService(nil, studentRepo, nil)

	_, err := service.CoursesForStudent(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentsForCourseUnknownCourse(t *testing.T) {
	courseRepo := &mockCourseRepository{
		existsFn: func(ctx context.Context, id int64) (bool, error) {
			return false, nil
		},
	}
	service := newTestEnrollmentService(nil, nil, courseRepo)

	_, err := service.StudentsForCourse(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
