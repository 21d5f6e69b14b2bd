package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID       int64  `json:"id" db:"id" example:"1"`
	Name     string `json:"name" db:"name" example:"Ada Lovelace"`
	Username string `json:"username" db:"username" example:"ada"` // Unique across all students
	Email    string `json:"email" db:"email" example:"ada@example.com"`
	Password string `json:"-" db:"password"` // Stored bcrypt hash, never serialized

	// Relations (populated when needed)
	Enrollments []*Enrollment `json:"enrollments,omitempty"`
}
