package models

// Enrollment is the join entity linking one Student to one Course. At most one
// row may exist per (StudentID, CourseID) pair.
type Enrollment struct {
	ID        int64 `json:"id" db:"id"`
	StudentID int64 `json:"studentId" db:"student_id"`
	CourseID  int64 `json:"courseId" db:"course_id"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}
