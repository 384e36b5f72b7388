package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/internal/service"
	"github.com/noah-isme/academy-api/pkg/response"
)

type curriculumService interface {
	List(ctx context.Context, filter models.CurriculumFilter) ([]dto.CurriculumResponse, error)
	Get(ctx context.Context, id int64) (*dto.CurriculumResponse, error)
	ListForStudent(ctx context.Context, studentID int64) ([]dto.CurriculumResponse, error)
	Create(ctx context.Context, req dto.CurriculumRequest) (*dto.CurriculumResponse, error)
	Update(ctx context.Context, id int64, req dto.CurriculumRequest) (*dto.CurriculumResponse, error)
	Delete(ctx context.Context, id int64) error
	Matrix(ctx context.Context, courseID int64) (*dto.CurriculumMatrix, error)
	ExportMatrix(ctx context.Context, courseID int64, format string) (*service.ExportFile, error)
}

// CurriculumHandler exposes curriculum entries and the per-course matrix.
type CurriculumHandler struct {
	service curriculumService
}

func NewCurriculumHandler(svc curriculumService) *CurriculumHandler {
	return &CurriculumHandler{service: svc}
}

// Register mounts the curriculum routes on rg.
func (h *CurriculumHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/student/:studentId", h.ByStudent)
	rg.GET("/discipline/:disciplineId", h.ByDiscipline)
	rg.GET("/course/:courseId", h.ByCourse)
	rg.GET("/semester/:semesterId", h.BySemester)
	rg.GET("/matrix/:courseId", h.Matrix)
	rg.GET("/matrix/:courseId/export", h.ExportMatrix)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List godoc
// @Summary List curriculum entries
// @Tags Curricula
// @Produce json
// @Success 200 {array} dto.CurriculumResponse
// @Router /curricula [get]
func (h *CurriculumHandler) List(c *gin.Context) {
	h.list(c, models.CurriculumFilter{})
}

// ByStudent godoc
// @Summary List the curriculum visible to a student
// @Description Returns every active entry when the id belongs to a student, otherwise an empty list.
// @Tags Curricula
// @Produce json
// @Param studentId path int true "Student user ID"
// @Success 200 {array} dto.CurriculumResponse
// @Router /curricula/student/{studentId} [get]
func (h *CurriculumHandler) ByStudent(c *gin.Context) {
	studentID, ok := pathID(c, "studentId")
	if !ok {
		return
	}
	entries, err := h.service.ListForStudent(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entries)
}

// ByDiscipline godoc
// @Summary List the curriculum entries of a discipline
// @Tags Curricula
// @Produce json
// @Param disciplineId path int true "Discipline ID"
// @Success 200 {array} dto.CurriculumResponse
// @Router /curricula/discipline/{disciplineId} [get]
func (h *CurriculumHandler) ByDiscipline(c *gin.Context) {
	id, ok := pathID(c, "disciplineId")
	if !ok {
		return
	}
	h.list(c, models.CurriculumFilter{DisciplineID: &id})
}

// ByCourse godoc
// @Summary List the curriculum entries of a course
// @Tags Curricula
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {array} dto.CurriculumResponse
// @Router /curricula/course/{courseId} [get]
func (h *CurriculumHandler) ByCourse(c *gin.Context) {
	id, ok := pathID(c, "courseId")
	if !ok {
		return
	}
	h.list(c, models.CurriculumFilter{CourseID: &id})
}

// BySemester godoc
// @Summary List curriculum entries whose discipline belongs to a semester
// @Tags Curricula
// @Produce json
// @Param semesterId path int true "Semester ID"
// @Success 200 {array} dto.CurriculumResponse
// @Router /curricula/semester/{semesterId} [get]
func (h *CurriculumHandler) BySemester(c *gin.Context) {
	id, ok := pathID(c, "semesterId")
	if !ok {
		return
	}
	h.list(c, models.CurriculumFilter{SemesterID: &id})
}

func (h *CurriculumHandler) list(c *gin.Context, filter models.CurriculumFilter) {
	entries, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entries)
}

// Matrix godoc
// @Summary Curriculum matrix of a course
// @Tags Curricula
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.CurriculumMatrix
// @Failure 404 {object} errors.Error
// @Router /curricula/matrix/{courseId} [get]
func (h *CurriculumHandler) Matrix(c *gin.Context) {
	courseID, ok := pathID(c, "courseId")
	if !ok {
		return
	}
	matrix, err := h.service.Matrix(c.Request.Context(), courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, matrix)
}

// ExportMatrix godoc
// @Summary Export the curriculum matrix of a course
// @Tags Curricula
// @Produce text/csv
// @Produce application/pdf
// @Param courseId path int true "Course ID"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} errors.Error
// @Router /curricula/matrix/{courseId}/export [get]
func (h *CurriculumHandler) ExportMatrix(c *gin.Context) {
	courseID, ok := pathID(c, "courseId")
	if !ok {
		return
	}
	file, err := h.service.ExportMatrix(c.Request.Context(), courseID, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Content)
}

// Get godoc
// @Summary Get curriculum entry by id
// @Tags Curricula
// @Produce json
// @Param id path int true "Curriculum ID"
// @Success 200 {object} dto.CurriculumResponse
// @Failure 404 {object} errors.Error
// @Router /curricula/{id} [get]
func (h *CurriculumHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	entry, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entry)
}

// Create godoc
// @Summary Add a discipline to a course curriculum
// @Tags Curricula
// @Accept json
// @Produce json
// @Param payload body dto.CurriculumRequest true "Curriculum payload"
// @Success 201 {object} dto.CurriculumResponse
// @Failure 400 {object} errors.Error
// @Router /curricula [post]
func (h *CurriculumHandler) Create(c *gin.Context) {
	var req dto.CurriculumRequest
	if !bindJSON(c, &req, "curriculum") {
		return
	}
	entry, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// Update godoc
// @Summary Update the active flag of a curriculum entry
// @Tags Curricula
// @Accept json
// @Produce json
// @Param id path int true "Curriculum ID"
// @Param payload body dto.CurriculumRequest true "Curriculum payload"
// @Success 200 {object} dto.CurriculumResponse
// @Router /curricula/{id} [put]
func (h *CurriculumHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CurriculumRequest
	if !bindJSON(c, &req, "curriculum") {
		return
	}
	entry, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entry)
}

// Delete godoc
// @Summary Remove a curriculum entry
// @Tags Curricula
// @Param id path int true "Curriculum ID"
// @Success 204
// @Router /curricula/{id} [delete]
func (h *CurriculumHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
