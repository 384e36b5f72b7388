package models

import "time"

// Semester belongs to exactly one course and owns its disciplines.
type Semester struct {
	ID        int64     `db:"id"`
	Number    int       `db:"number"`
	CourseID  int64     `db:"course_id"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	CourseName string `db:"course_name"`
}

type SemesterFilter struct {
	CourseID *int64
	Active   *bool
}
