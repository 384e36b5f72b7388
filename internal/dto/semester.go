package dto

import (
	"time"

	"github.com/noah-isme/academy-api/internal/models"
)

// SemesterRequest is the payload for semesters. On update only number and active are applied.
type SemesterRequest struct {
	Number   int   `json:"number" validate:"required,gt=0"`
	CourseID int64 `json:"courseId" validate:"required,gt=0"`
	Active   *bool `json:"active,omitempty"`
}

type SemesterResponse struct {
	ID         int64     `json:"id"`
	Number     int       `json:"number"`
	CourseID   int64     `json:"courseId"`
	CourseName string    `json:"courseName"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewSemesterResponse(s *models.Semester) SemesterResponse {
	return SemesterResponse{
		ID:         s.ID,
		Number:     s.Number,
		CourseID:   s.CourseID,
		CourseName: s.CourseName,
		Active:     s.Active,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func NewSemesterResponses(semesters []models.Semester) []SemesterResponse {
	out := make([]SemesterResponse, 0, len(semesters))
	for i := range semesters {
		out = append(out, NewSemesterResponse(&semesters[i]))
	}
	return out
}
