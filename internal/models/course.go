package models

import "time"

// Course is a degree programme. It owns its semesters.
type Course struct {
	ID                int64     `db:"id"`
	Name              string    `db:"name"`
	Description       string    `db:"description"`
	TotalHours        int       `db:"total_hours"`
	DurationSemesters int       `db:"duration_semesters"`
	Active            bool      `db:"active"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// CourseFilter captures supported filters for listing courses.
type CourseFilter struct {
	Active            *bool
	NameSearch        string
	DurationSemesters *int
}
