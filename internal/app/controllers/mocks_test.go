package controllers

import (
	"context"

	"github.com/academia/course-portal/internal/app/models"
	"github.com/academia/course-portal/internal/app/models/dto"
)

// Function-field service doubles; tests stub only the calls they expect.

type mockAuthService struct {
	registerFn func(ctx context.Context, req *dto.RegisterRequest) (*models.Student, error)
	loginFn    func(ctx context.Context, req *dto.LoginRequest) (string, error)
}

func (m *mockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Student, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	return m.loginFn(ctx, req)
}

type mockStudentService struct {
	getAllFn  func(ctx context.Context) ([]*models.Student, error)
	getByIDFn func(ctx context.Context, id int64) (*models.Student, error)
	createFn  func(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	updateFn  func(ctx context.Context, req *dto.UpdateStudentRequest) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockStudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return m.getAllFn(ctx)
}

func (m *mockStudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockStudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	return m.createFn(ctx, req)
}

func (m *mockStudentService) UpdateStudent(ctx context.Context, req *dto.UpdateStudentRequest) error {
	return m.updateFn(ctx, req)
}

func (m *mockStudentService) DeleteStudent(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockCourseService struct {
	getAllFn       func(ctx context.Context) ([]*models.Course, error)
	getAvailableFn func(ctx context.Context) ([]*models.Course, error)
	getByIDFn      func(ctx context.Context, id int64) (*models.Course, error)
	createFn       func(ctx context.Context, course *models.Course) error
	updateFn       func(ctx context.Context, course *models.Course) error
	deleteFn       func(ctx context.Context, id int64) error
}

func (m *mockCourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return m.getAllFn(ctx)
}

func (m *mockCourseService) GetAvailableCourses(ctx context.Context) ([]*models.Course, error) {
	return m.getAvailableFn(ctx)
}

func (m *mockCourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockCourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	return m.createFn(ctx, course)
}

func (m *mockCourseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	return m.updateFn(ctx, course)
}

func (m *mockCourseService) DeleteCourse(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockEnrollmentService struct {
	getAllFn            func(ctx context.Context) ([]*models.Enrollment, error)
	getByIDFn           func(ctx context.Context, id int64) (*models.Enrollment, error)
	enrollFn            func(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	updateFn            func(ctx context.Context, enrollment *models.Enrollment) error
	unenrollFn          func(ctx context.Context, id int64) error
	coursesForStudentFn func(ctx context.Context, studentID int64) ([]*models.Course, error)
	studentsForCourseFn func(ctx context.Context, courseID int64) ([]*models.Student, error)
}

func (m *mockEnrollmentService) GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	return m.getAllFn(ctx)
}

func (m *mockEnrollmentService) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockEnrollmentService) Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	return m.enrollFn(ctx, studentID, courseID)
}

func (m *mockEnrollmentService) UpdateEnrollment(ctx context.Context, enrollment *models.Enrollment) error {
	return m.updateFn(ctx, enrollment)
}

func (m *mockEnrollmentService) Unenroll(ctx context.Context, id int64) error {
	return m.unenrollFn(ctx, id)
}

func (m *mockEnrollmentService) CoursesForStudent(ctx context.Context, studentID int64) ([]*models.Course, error) {
	return m.coursesForStudentFn(ctx, studentID)
}

func (m *mockEnrollmentService) StudentsForCourse(ctx context.Context, courseID int64) ([]*models.Student, error) {
	return m.studentsForCourseFn(ctx, courseID)
}
