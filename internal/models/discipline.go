package models

import "time"

// Discipline is a subject taught within a semester.
type Discipline struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Workload    int       `db:"workload"`
	SemesterID  int64     `db:"semester_id"`
	Active      bool      `db:"active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`

	// Populated from the owning semester and course on read.
	SemesterNumber int    `db:"semester_number"`
	CourseID       int64  `db:"course_id"`
	CourseName     string `db:"course_name"`
}

type DisciplineFilter struct {
	SemesterID *int64
	CourseID   *int64
	Active     *bool
	NameSearch string
}
