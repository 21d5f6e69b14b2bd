package dto

// CreateStudentRequest represents the payload for creating a student record.
type CreateStudentRequest struct {
	Name     string `json:"name"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email"`
}

// UpdateStudentRequest represents the payload for updating a student. Name and
// email always overwrite the stored values; the password is re-hashed only
// when a non-empty one is supplied.
type UpdateStudentRequest struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// EnrollRequest represents the student-facing enrollment payload.
type EnrollRequest struct {
	StudentID int64 `json:"studentId" binding:"required"`
	CourseID  int64 `json:"courseId" binding:"required"`
}
