package models

import "time"

// Account roles as stored in user_account.role. The role discriminates which
// attribute set is meaningful; it never changes after creation.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

// Student is the student-facing projection of a user account.
type Student struct {
	StudentID        int64      `db:"student_id" json:"student_id"`
	Name             string     `db:"name" json:"name"`
	Gender           *string    `db:"gender" json:"gender,omitempty"`
	Region           *string    `db:"region" json:"region,omitempty"`
	HighestEducation *string    `db:"highest_education" json:"highest_education,omitempty"`
	DateOfBirth      *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
}

// Instructor is the instructor-facing projection of a user account.
type Instructor struct {
	InstructorID int64   `db:"instructor_id" json:"instructor_id"`
	Name         string  `db:"name" json:"name"`
	Department   *string `db:"department" json:"department,omitempty"`
}
