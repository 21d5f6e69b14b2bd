package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/academia/course-portal/internal/app/models"
	"github.com/academia/course-portal/internal/app/repositories"
	"github.com/academia/course-portal/internal/pkg/apperrors"
)

// courseService implements CourseService.
type courseService struct {
	courseRepo repositories.ICourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.ICourseRepository) CourseService {
	return &courseService{
		courseRepo: courseRepo,
	}
}

// validateCourse validates course data before database operations
func (s *courseService) validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(course.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// GetAllCourses retrieves all courses with their enrollments attached.
func (s *courseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	return courses, nil
}

// GetAvailableCourses retrieves the plain course catalog without relations.
func (s *courseService) GetAvailableCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course catalog: %w", err)
	}

	return courses, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// CreateCourse creates a new course
func (s *courseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// UpdateCourse updates an existing course
func (s *courseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}

	if course.ID <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	return nil
}

// DeleteCourse deletes a course by ID
func (s *courseService) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	return nil
}
