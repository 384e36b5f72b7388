package dto

import (
	"time"

	"github.com/noah-isme/academy-api/internal/models"
)

// CourseRequest is the payload for creating and updating courses.
type CourseRequest struct {
	Name              string `json:"name" validate:"required,max=100"`
	Description       string `json:"description" validate:"max=500"`
	TotalHours        int    `json:"totalHours" validate:"required,gt=0"`
	DurationSemesters int    `json:"durationSemesters" validate:"required,gt=0"`
	Active            *bool  `json:"active,omitempty"`
}

// CourseResponse is the external shape of a course.
type CourseResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	TotalHours        int       `json:"totalHours"`
	DurationSemesters int       `json:"durationSemesters"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// NewCourseResponse maps a stored course.
func NewCourseResponse(c *models.Course) CourseResponse {
	return CourseResponse{
		ID:                c.ID,
		Name:              c.Name,
		Description:       c.Description,
		TotalHours:        c.TotalHours,
		DurationSemesters: c.DurationSemesters,
		Active:            c.Active,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func NewCourseResponses(courses []models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, NewCourseResponse(&courses[i]))
	}
	return out
}
