package models

import "time"

// Curriculum links a discipline to a course.
type Curriculum struct {
	ID           int64     `db:"id"`
	CourseID     int64     `db:"course_id"`
	DisciplineID int64     `db:"discipline_id"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`

	// Read-time projection of the linked course, discipline and the discipline's semester.
	CourseName         string `db:"course_name"`
	DisciplineName     string `db:"discipline_name"`
	DisciplineWorkload int    `db:"discipline_workload"`
	SemesterID         int64  `db:"semester_id"`
	SemesterNumber     int    `db:"semester_number"`
}

type CurriculumFilter struct {
	CourseID     *int64
	DisciplineID *int64
	SemesterID   *int64
	Active       *bool
}
