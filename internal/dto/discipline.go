package dto

import (
	"time"

	"github.com/noah-isme/academy-api/internal/models"
)

// DisciplineRequest is the payload for disciplines. On update the semester is not reassigned.
type DisciplineRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Workload    int    `json:"workload" validate:"required,gt=0"`
	SemesterID  int64  `json:"semesterId" validate:"required,gt=0"`
	Active      *bool  `json:"active,omitempty"`
}

type DisciplineResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Workload       int       `json:"workload"`
	SemesterID     int64     `json:"semesterId"`
	SemesterNumber int       `json:"semesterNumber"`
	CourseID       int64     `json:"courseId"`
	CourseName     string    `json:"courseName"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func NewDisciplineResponse(d *models.Discipline) DisciplineResponse {
	return DisciplineResponse{
		ID:             d.ID,
		Name:           d.Name,
		Description:    d.Description,
		Workload:       d.Workload,
		SemesterID:     d.SemesterID,
		SemesterNumber: d.SemesterNumber,
		CourseID:       d.CourseID,
		CourseName:     d.CourseName,
		Active:         d.Active,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func NewDisciplineResponses(disciplines []models.Discipline) []DisciplineResponse {
	out := make([]DisciplineResponse, 0, len(disciplines))
	for i := range disciplines {
		out = append(out, NewDisciplineResponse(&disciplines[i]))
	}
	return out
}
