package services

import (
	"context"

	"github.com/academia/course-portal/internal/app/models"
)

// mockStudentRepository is a function-field test double so each test can stub
// exactly the calls it expects.
type mockStudentRepository struct {
	createFn           func(ctx context.Context, student *models.Student) error
	getAllFn           func(ctx context.Context) ([]*models.Student, error)
	getByIDFn          func(ctx context.Context, id int64) (*models.Student, error)
	getByUsernameFn    func(ctx context.Context, username string) (*models.Student, error)
	existsByUsernameFn func(ctx context.Context, username string) (bool, error)
	existsFn           func(ctx context.Context, id int64) (bool, error)
	updateFn           func(ctx context.Context, id int64, name, email, passwordHash string) error
	deleteFn           func(ctx context.Context, id int64) error
}

func (m *mockStudentRepository) Create(ctx context.Context, student *models.Student) error {
	return m.createFn(ctx, student)
}

func (m *mockStudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	return m.getAllFn(ctx)
}

func (m *mockStudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockStudentRepository) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	return m.getByUsernameFn(ctx, username)
}

func (m *mockStudentRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return m.existsByUsernameFn(ctx, username)
}

func (m *mockStudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return m.existsFn(ctx, id)
}

func (m *mockStudentRepository) Update(ctx context.Context, id int64, name, email, passwordHash string) error {
	return m.updateFn(ctx, id, name, email, passwordHash)
}

func (m *mockStudentRepository) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockCourseRepository struct {
	createFn     func(ctx context.Context, course *models.Course) error
	getAllFn     func(ctx context.Context) ([]*models.Course, error)
	getCatalogFn func(ctx context.Context) ([]*models.Course, error)
	getByIDFn    func(ctx context.Context, id int64) (*models.Course, error)
	existsFn     func(ctx context.Context, id int64) (bool, error)
	updateFn     func(ctx context.Context, course *models.Course) error
	deleteFn     func(ctx context.Context, id int64) error
}

func (m *mockCourseRepository) Create(ctx context.Context, course *models.Course) error {
	return m.createFn(ctx, course)
}

func (m *mockCourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	return m.getAllFn(ctx)
}

func (m *mockCourseRepository) GetCatalog(ctx context.Context) ([]*models.Course, error) {
	return m.getCatalogFn(ctx)
}

func (m *mockCourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockCourseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return m.existsFn(ctx, id)
}

func (m *mockCourseRepository) Update(ctx context.Context, course *models.Course) error {
	return m.updateFn(ctx, course)
}

func (m *mockCourseRepository) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockEnrollmentRepository struct {
	createFn            func(ctx context.Context, enrollment *models.Enrollment) error
	getAllFn            func(ctx context.Context) ([]*models.Enrollment, error)
	getByIDFn           func(ctx context.Context, id int64) (*models.Enrollment, error)
	updateFn            func(ctx context.Context, enrollment *models.Enrollment) error
	deleteFn            func(ctx context.Context, id int64) error
	coursesForStudentFn func(ctx context.Context, studentID int64) ([]*models.Course, error)
	studentsForCourseFn func(ctx context.Context, courseID int64) ([]*models.Student, error)
}

func (m *mockEnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	return m.createFn(ctx, enrollment)
}

func (m *mockEnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	return m.getAllFn(ctx)
}

func (m *mockEnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockEnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	return m.updateFn(ctx, enrollment)
}

func (m *mockEnrollmentRepository) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockEnrollmentRepository) CoursesForStudent(ctx context.Context, studentID int64) ([]*models.Course, error) {
	return m.coursesForStudentFn(ctx, studentID)
}

func (m *mockEnrollmentRepository) StudentsForCourse(ctx context.Context, courseID int64) ([]*models.Student, error) {
	return m.studentsForCourseFn(ctx, courseID)
}
