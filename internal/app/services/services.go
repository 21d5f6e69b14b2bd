package services

import (
	"context"

	"github.com/academia/course-portal/internal/app/models"
	"github.com/academia/course-portal/internal/app/models/dto"
)

// AuthService handles credential verification, token issuance and student
// registration.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.Student, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, error)
}

// StudentService handles CRUD operations on student records.
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, req *dto.UpdateStudentRequest) error
	DeleteStudent(ctx context.Context, id int64) error
}

// CourseService handles CRUD operations on the course catalog.
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetAvailableCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) error
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

// EnrollmentService enforces the enrollment invariants: both endpoints must
// exist and at most one enrollment per (student, course) pair.
type EnrollmentService interface {
	GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error)
	GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error)
	Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	UpdateEnrollment(ctx context.Context, enrollment *models.Enrollment) error
	Unenroll(ctx context.Context, id int64) error
	CoursesForStudent(ctx context.Context, studentID int64) ([]*models.Course, error)
	StudentsForCourse(ctx context.Context, courseID int64) ([]*models.Student, error)
}
