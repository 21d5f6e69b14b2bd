package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/academia/course-portal/internal/app/models"
	"github.com/academia/course-portal/internal/app/models/dto"
	"github.com/academia/course-portal/internal/app/services"
	"github.com/academia/course-portal/internal/middleware"
)

// EnrollmentController handles enrollment-related operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
	courseService     services.CourseService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService, courseService services.CourseService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
		courseService:     courseService,
	}
}

// GetEnrollments retrieves all enrollments
// @Summary Get all enrollments
// @Description Retrieves all enrollments with their student and course
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Enrollment "Enrollments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [get]
func (c *EnrollmentController) GetEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetAllEnrollments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enrollments)
}

// GetEnrollment retrieves an enrollment by ID
// @Summary Get enrollment by ID
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} models.Enrollment
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollmentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enrollment)
}

// CreateEnrollment creates a new enrollment
// @Summary Create an enrollment
// @Description Creates an enrollment; both endpoints must exist and the pair must not already be enrolled
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EnrollRequest true "Enrollment information"
// @Success 201 {object} models.Enrollment "Enrollment created"
// @Failure 400 {object} dto.ErrorResponse "Missing endpoints or duplicate enrollment"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	enrollment, err := c.enrollmentService.Enroll(ctx.Request.Context(), req.StudentID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/enrollments/%d", enrollment.ID))
	ctx.JSON(http.StatusCreated, enrollment)
}

// UpdateEnrollment updates an existing enrollment
// @Summary Update an enrollment
// @Tags enrollments
// @Accept json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Param request body models.Enrollment true "Updated enrollment information"
// @Success 204 "Enrollment updated"
// @Failure 400 {object} dto.ErrorResponse "ID mismatch or invalid data"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id} [put]
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var enrollment models.Enrollment
	if err := ctx.ShouldBindJSON(&enrollment); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if enrollment.ID != id {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Enrollment ID mismatch")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.enrollmentService.UpdateEnrollment(ctx.Request.Context(), &enrollment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeleteEnrollment deletes an enrollment by ID
// @Summary Delete an enrollment
// @Tags enrollments
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 204 "Enrollment deleted"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.enrollmentService.Unenroll(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetAvailableCourses lists the full course catalog
// @Summary List available courses
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Course
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/available-courses [get]
func (c *EnrollmentController) GetAvailableCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAvailableCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}
