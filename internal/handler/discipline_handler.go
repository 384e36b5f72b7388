package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/pkg/response"
)

type disciplineService interface {
	List(ctx context.Context, filter models.DisciplineFilter) ([]dto.DisciplineResponse, error)
	Get(ctx context.Context, id int64) (*dto.DisciplineResponse, error)
	Create(ctx context.Context, req dto.DisciplineRequest) (*dto.DisciplineResponse, error)
	Update(ctx context.Context, id int64, req dto.DisciplineRequest) (*dto.DisciplineResponse, error)
	Delete(ctx context.Context, id int64) error
}

// DisciplineHandler exposes discipline endpoints.
type DisciplineHandler struct {
	service disciplineService
}

func NewDisciplineHandler(svc disciplineService) *DisciplineHandler {
	return &DisciplineHandler{service: svc}
}

// Register mounts the discipline routes on rg.
func (h *DisciplineHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/active", h.ListActive)
	rg.GET("/search", h.Search)
	rg.GET("/semester/:semesterId", h.BySemester)
	rg.GET("/course/:courseId", h.ByCourse)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List godoc
// @Summary List disciplines
// @Tags Disciplines
// @Produce json
// @Success 200 {array} dto.DisciplineResponse
// @Router /disciplines [get]
func (h *DisciplineHandler) List(c *gin.Context) {
	h.list(c, models.DisciplineFilter{})
}

// ListActive godoc
// @Summary List active disciplines
// @Tags Disciplines
// @Produce json
// @Success 200 {array} dto.DisciplineResponse
// @Router /disciplines/active [get]
func (h *DisciplineHandler) ListActive(c *gin.Context) {
	h.list(c, models.DisciplineFilter{Active: boolPtr(true)})
}

// Search godoc
// @Summary Search disciplines by partial name
// @Tags Disciplines
// @Produce json
// @Param name query string true "Name fragment"
// @Success 200 {array} dto.DisciplineResponse
// @Router /disciplines/search [get]
func (h *DisciplineHandler) Search(c *gin.Context) {
	h.list(c, models.DisciplineFilter{NameSearch: nameQuery(c)})
}

// BySemester godoc
// @Summary List the disciplines of a semester
// @Tags Disciplines
// @Produce json
// @Param semesterId path int true "Semester ID"
// @Success 200 {array} dto.DisciplineResponse
// @Router /disciplines/semester/{semesterId} [get]
func (h *DisciplineHandler) BySemester(c *gin.Context) {
	semesterID, ok := pathID(c, "semesterId")
	if !ok {
		return
	}
	h.list(c, models.DisciplineFilter{SemesterID: &semesterID})
}

// ByCourse godoc
// @Summary List disciplines offered in the semesters of a course
// @Tags Disciplines
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {array} dto.DisciplineResponse
// @Router /disciplines/course/{courseId} [get]
func (h *DisciplineHandler) ByCourse(c *gin.Context) {
	courseID, ok := pathID(c, "courseId")
	if !ok {
		return
	}
	h.list(c, models.DisciplineFilter{CourseID: &courseID})
}

func (h *DisciplineHandler) list(c *gin.Context, filter models.DisciplineFilter) {
	disciplines, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, disciplines)
}

// Get godoc
// @Summary Get discipline by id
// @Tags Disciplines
// @Produce json
// @Param id path int true "Discipline ID"
// @Success 200 {object} dto.DisciplineResponse
// @Failure 404 {object} errors.Error
// @Router /disciplines/{id} [get]
func (h *DisciplineHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	discipline, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, discipline)
}

// Create godoc
// @Summary Create discipline
// @Tags Disciplines
// @Accept json
// @Produce json
// @Param payload body dto.DisciplineRequest true "Discipline payload"
// @Success 201 {object} dto.DisciplineResponse
// @Failure 400 {object} errors.Error
// @Router /disciplines [post]
func (h *DisciplineHandler) Create(c *gin.Context) {
	var req dto.DisciplineRequest
	if !bindJSON(c, &req, "discipline") {
		return
	}
	discipline, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, discipline)
}

// Update godoc
// @Summary Update discipline name, description and workload
// @Tags Disciplines
// @Accept json
// @Produce json
// @Param id path int true "Discipline ID"
// @Param payload body dto.DisciplineRequest true "Discipline payload"
// @Success 200 {object} dto.DisciplineResponse
// @Router /disciplines/{id} [put]
func (h *DisciplineHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.DisciplineRequest
	if !bindJSON(c, &req, "discipline") {
		return
	}
	discipline, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, discipline)
}

// Delete godoc
// @Summary Delete discipline
// @Tags Disciplines
// @Param id path int true "Discipline ID"
// @Success 204
// @Router /disciplines/{id} [delete]
func (h *DisciplineHandler) Delete(c *gin.Context) {
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
