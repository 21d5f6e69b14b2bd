package repositories

import (
	"context"

	"github.com/academia/course-portal/internal/app/models"
	"github.com/academia/course-portal/internal/db"
)

// IStudentRepository defines the student persistence operations used by
// services and middleware.
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByUsername(ctx context.Context, username string) (*models.Student, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, name, email, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

// ICourseRepository defines the course persistence operations.
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetCatalog(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// IEnrollmentRepository defines the enrollment persistence operations.
type IEnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetAll(ctx context.Context) ([]*models.Enrollment, error)
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
	CoursesForStudent(ctx context.Context, studentID int64) ([]*models.Course, error)
	StudentsForCourse(ctx context.Context, courseID int64) ([]*models.Student, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(database.Pool),
		CourseRepository:     NewCourseRepository(database.Pool),
		EnrollmentRepository: NewEnrollmentRepository(database),
	}
}
