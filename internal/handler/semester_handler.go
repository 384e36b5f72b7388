package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/pkg/response"
)

type semesterService interface {
	List(ctx context.Context, filter models.SemesterFilter) ([]dto.SemesterResponse, error)
	Get(ctx context.Context, id int64) (*dto.SemesterResponse, error)
	Create(ctx context.Context, req dto.SemesterRequest) (*dto.SemesterResponse, error)
	Update(ctx context.Context, id int64, req dto.SemesterRequest) (*dto.SemesterResponse, error)
	Delete(ctx context.Context, id int64) error
}

// SemesterHandler exposes semester endpoints.
type SemesterHandler struct {
	service semesterService
}

func NewSemesterHandler(svc semesterService) *SemesterHandler {
	return &SemesterHandler{service: svc}
}

// Register mounts the semester routes on rg.
func (h *SemesterHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/active", h.ListActive)
	rg.GET("/course/:courseId", h.ByCourse)
	rg.GET("/course/:courseId/active", h.ActiveByCourse)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List godoc
// @Summary List semesters
// @Tags Semesters
// @Produce json
// @Success 200 {array} dto.SemesterResponse
// @Router /semesters [get]
func (h *SemesterHandler) List(c *gin.Context) {
	h.list(c, models.SemesterFilter{})
}

// ListActive godoc
// @Summary List active semesters
// @Tags Semesters
// @Produce json
// @Success 200 {array} dto.SemesterResponse
// @Router /semesters/active [get]
func (h *SemesterHandler) ListActive(c *gin.Context) {
	h.list(c, models.SemesterFilter{Active: boolPtr(true)})
}

// ByCourse godoc
// @Summary List the semesters of a course
// @Tags Semesters
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {array} dto.SemesterResponse
// @Router /semesters/course/{courseId} [get]
func (h *SemesterHandler) ByCourse(c *gin.Context) {
	h.byCourse(c, nil)
}

// ActiveByCourse godoc
// @Summary List the active semesters of a course
// @Tags Semesters
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {array} dto.SemesterResponse
// @Router /semesters/course/{courseId}/active [get]
func (h *SemesterHandler) ActiveByCourse(c *gin.Context) {
	h.byCourse(c, boolPtr(true))
}

func (h *SemesterHandler) byCourse(c *gin.Context, active *bool) {
	courseID, ok := pathID(c, "courseId")
	if !ok {
		return
	}
	h.list(c, models.SemesterFilter{CourseID: &courseID, Active: active})
}

func (h *SemesterHandler) list(c *gin.Context, filter models.SemesterFilter) {
	semesters, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, semesters)
}

// Get godoc
// @Summary Get semester by id
// @Tags Semesters
// @Produce json
// @Param id path int true "Semester ID"
// @Success 200 {object} dto.SemesterResponse
// @Failure 404 {object} errors.Error
// @Router /semesters/{id} [get]
func (h *SemesterHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	semester, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, semester)
}

// Create godoc
// @Summary Create semester
// @Tags Semesters
// @Accept json
// @Produce json
// @Param payload body dto.SemesterRequest true "Semester payload"
// @Success 201 {object} dto.SemesterResponse
// @Failure 400 {object} errors.Error
// @Router /semesters [post]
func (h *SemesterHandler) Create(c *gin.Context) {
	var req dto.SemesterRequest
	if !bindJSON(c, &req, "semester") {
		return
	}
	semester, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, semester)
}

// Update godoc
// @Summary Update semester number and active flag
// @Tags Semesters
// @Accept json
// @Produce json
// @Param id path int true "Semester ID"
// @Param payload body dto.SemesterRequest true "Semester payload"
// @Success 200 {object} dto.SemesterResponse
// @Router /semesters/{id} [put]
func (h *SemesterHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.SemesterRequest
	if !bindJSON(c, &req, "semester") {
		return
	}
	semester, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, semester)
}

// Delete godoc
// @Summary Delete semester and its disciplines
// @Tags Semesters
// @Param id path int true "Semester ID"
// @Success 204
// @Router /semesters/{id} [delete]
func (h *SemesterHandler) Delete(c *gin.Context) {
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
