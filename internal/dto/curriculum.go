package dto

import (
	"sort"
	"strconv"
	"time"

	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/pkg/export"
)

// CurriculumRequest links a discipline to a course. On update only active is applied.
type CurriculumRequest struct {
	CourseID     int64 `json:"courseId" validate:"required,gt=0"`
	DisciplineID int64 `json:"disciplineId" validate:"required,gt=0"`
	Active       *bool `json:"active,omitempty"`
}

type CurriculumResponse struct {
	ID                 int64     `json:"id"`
	CourseID           int64     `json:"courseId"`
	CourseName         string    `json:"courseName"`
	DisciplineID       int64     `json:"disciplineId"`
	DisciplineName     string    `json:"disciplineName"`
	DisciplineWorkload int       `json:"disciplineWorkload"`
	SemesterID         int64     `json:"semesterId"`
	SemesterNumber     int       `json:"semesterNumber"`
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func NewCurriculumResponse(c *models.Curriculum) CurriculumResponse {
	return CurriculumResponse{
		ID:                 c.ID,
		CourseID:           c.CourseID,
		CourseName:         c.CourseName,
		DisciplineID:       c.DisciplineID,
		DisciplineName:     c.DisciplineName,
		DisciplineWorkload: c.DisciplineWorkload,
		SemesterID:         c.SemesterID,
		SemesterNumber:     c.SemesterNumber,
		Active:             c.Active,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func NewCurriculumResponses(entries []models.Curriculum) []CurriculumResponse {
	out := make([]CurriculumResponse, 0, len(entries))
	for i := range entries {
		out = append(out, NewCurriculumResponse(&entries[i]))
	}
	return out
}

// MatrixDiscipline is one discipline cell of a curriculum matrix.
type MatrixDiscipline struct {
	CurriculumID int64  `json:"curriculumId"`
	DisciplineID int64  `json:"disciplineId"`
	Name         string `json:"name"`
	Workload     int    `json:"workload"`
}

// MatrixSemester groups the disciplines offered in one semester of the course.
type MatrixSemester struct {
	SemesterID  int64              `json:"semesterId"`
	Number      int                `json:"number"`
	Workload    int                `json:"workload"`
	Disciplines []MatrixDiscipline `json:"disciplines"`
}

// CurriculumMatrix is the semester-by-semester view of a course curriculum.
type CurriculumMatrix struct {
	CourseID      int64            `json:"courseId"`
	CourseName    string           `json:"courseName"`
	TotalWorkload int              `json:"totalWorkload"`
	Semesters     []MatrixSemester `json:"semesters"`
}

// BuildCurriculumMatrix groups active entries by semester number. Semesters of the course without
// disciplines are kept; disciplines taken from another course's semester land in the bucket for that number.
func BuildCurriculumMatrix(course *models.Course, semesters []models.Semester, entries []models.Curriculum) CurriculumMatrix {
	matrix := CurriculumMatrix{CourseID: course.ID, CourseName: course.Name}
	buckets := make(map[int]*MatrixSemester, len(semesters))
	bucket := func(number int, semesterID int64) *MatrixSemester {
		if b, ok := buckets[number]; ok {
			return b
		}
		b := &MatrixSemester{SemesterID: semesterID, Number: number, Disciplines: []MatrixDiscipline{}}
		buckets[number] = b
		return b
	}
	for _, s := range semesters {
		bucket(s.Number, s.ID)
	}
	for _, e := range entries {
		if !e.Active {
			continue
		}
		b := bucket(e.SemesterNumber, e.SemesterID)
		b.Disciplines = append(b.Disciplines, MatrixDiscipline{
			CurriculumID: e.ID,
			DisciplineID: e.DisciplineID,
			Name:         e.DisciplineName,
			Workload:     e.DisciplineWorkload,
		})
		b.Workload += e.DisciplineWorkload
		matrix.TotalWorkload += e.DisciplineWorkload
	}

	matrix.Semesters = make([]MatrixSemester, 0, len(buckets))
	for _, b := range buckets {
		sort.SliceStable(b.Disciplines, func(i, j int) bool { return b.Disciplines[i].Name < b.Disciplines[j].Name })
		matrix.Semesters = append(matrix.Semesters, *b)
	}
	sort.Slice(matrix.Semesters, func(i, j int) bool { return matrix.Semesters[i].Number < matrix.Semesters[j].Number })
	return matrix
}

// Table flattens the matrix into export rows, one per discipline.
func (m CurriculumMatrix) Table() export.Table {
	table := export.Table{
		Title:   m.CourseName,
		Headers: []string{"Semester", "Discipline", "Workload"},
		Rows:    [][]string{},
	}
	for _, s := range m.Semesters {
		for _, d := range s.Disciplines {
			table.Rows = append(table.Rows, []string{strconv.Itoa(s.Number), d.Name, strconv.Itoa(d.Workload)})
		}
	}
	table.Rows = append(table.Rows, []string{"", "Total", strconv.Itoa(m.TotalWorkload)})
	return table
}
