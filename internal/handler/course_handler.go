package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/pkg/response"
)

type courseService interface {
	List(ctx context.Context, filter models.CourseFilter) ([]dto.CourseResponse, error)
	Get(ctx context.Context, id int64) (*dto.CourseResponse, error)
	GetByName(ctx context.Context, name string) (*dto.CourseResponse, error)
	Count(ctx context.Context, activeOnly bool) (int64, error)
	Create(ctx context.Context, req dto.CourseRequest) (*dto.CourseResponse, error)
	Update(ctx context.Context, id int64, req dto.CourseRequest) (*dto.CourseResponse, error)
	Delete(ctx context.Context, id int64) error
	Activate(ctx context.Context, id int64) (*dto.CourseResponse, error)
	Deactivate(ctx context.Context, id int64) (*dto.CourseResponse, error)
}

// CourseHandler exposes course endpoints.
type CourseHandler struct {
	service courseService
}

// NewCourseHandler constructs a course handler.
func NewCourseHandler(svc courseService) *CourseHandler {
	return &CourseHandler{service: svc}
}

// Register mounts the course routes on rg.
func (h *CourseHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/active", h.ListActive)
	rg.GET("/search", h.Search)
	rg.GET("/active/search", h.SearchActive)
	rg.GET("/duration/:semesters", h.ByDuration)
	rg.GET("/active/duration/:semesters", h.ActiveByDuration)
	rg.GET("/count", h.Count)
	rg.GET("/count/active", h.CountActive)
	rg.GET("/name/:name", h.GetByName)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.PUT("/:id/activate", h.Activate)
	rg.PUT("/:id/deactivate", h.Deactivate)
}

// List godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Success 200 {array} dto.CourseResponse
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	h.list(c, models.CourseFilter{})
}

// ListActive godoc
// @Summary List active courses
// @Tags Courses
// @Produce json
// @Success 200 {array} dto.CourseResponse
// @Router /courses/active [get]
func (h *CourseHandler) ListActive(c *gin.Context) {
	h.list(c, models.CourseFilter{Active: boolPtr(true)})
}

// Search godoc
// @Summary Search courses by partial name
// @Tags Courses
// @Produce json
// @Param name query string true "Name fragment"
// @Success 200 {array} dto.CourseResponse
// @Router /courses/search [get]
func (h *CourseHandler) Search(c *gin.Context) {
	h.list(c, models.CourseFilter{NameSearch: nameQuery(c)})
}

// SearchActive godoc
// @Summary Search active courses by partial name
// @Tags Courses
// @Produce json
// @Param name query string true "Name fragment"
// @Success 200 {array} dto.CourseResponse
// @Router /courses/active/search [get]
func (h *CourseHandler) SearchActive(c *gin.Context) {
	h.list(c, models.CourseFilter{NameSearch: nameQuery(c), Active: boolPtr(true)})
}

// ByDuration godoc
// @Summary List courses lasting the given number of semesters
// @Tags Courses
// @Produce json
// @Param semesters path int true "Duration in semesters"
// @Success 200 {array} dto.CourseResponse
// @Router /courses/duration/{semesters} [get]
func (h *CourseHandler) ByDuration(c *gin.Context) {
	n, ok := pathInt(c, "semesters")
	if !ok {
		return
	}
	h.list(c, models.CourseFilter{DurationSemesters: &n})
}

// ActiveByDuration godoc
// @Summary List active courses lasting the given number of semesters
// @Tags Courses
// @Produce json
// @Param semesters path int true "Duration in semesters"
// @Success 200 {array} dto.CourseResponse
// @Router /courses/active/duration/{semesters} [get]
func (h *CourseHandler) ActiveByDuration(c *gin.Context) {
	n, ok := pathInt(c, "semesters")
	if !ok {
		return
	}
	h.list(c, models.CourseFilter{DurationSemesters: &n, Active: boolPtr(true)})
}

func (h *CourseHandler) list(c *gin.Context, filter models.CourseFilter) {
	courses, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, courses)
}

// Count godoc
// @Summary Count courses
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Count
// @Router /courses/count [get]
func (h *CourseHandler) Count(c *gin.Context) {
	h.count(c, false)
}

// CountActive godoc
// @Summary Count active courses
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Count
// @Router /courses/count/active [get]
func (h *CourseHandler) CountActive(c *gin.Context) {
	h.count(c, true)
}

func (h *CourseHandler) count(c *gin.Context, activeOnly bool) {
	total, err := h.service.Count(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, response.Count{Count: total})
}

// Get godoc
// @Summary Get course by id
// @Description Inactive courses are still returned.
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} errors.Error
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	course, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}

// GetByName godoc
// @Summary Get course by exact name
// @Tags Courses
// @Produce json
// @Param name path string true "Course name"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} errors.Error
// @Router /courses/name/{name} [get]
func (h *CourseHandler) GetByName(c *gin.Context) {
	course, err := h.service.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}

// Create godoc
// @Summary Create course
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body dto.CourseRequest true "Course payload"
// @Success 201 {object} dto.CourseResponse
// @Failure 400 {object} errors.Error
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CourseRequest
	if !bindJSON(c, &req, "course") {
		return
	}
	course, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// Update godoc
// @Summary Update course
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param payload body dto.CourseRequest true "Course payload"
// @Success 200 {object} dto.CourseResponse
// @Failure 400 {object} errors.Error
// @Router /courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CourseRequest
	if !bindJSON(c, &req, "course") {
		return
	}
	course, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}

// Delete godoc
// @Summary Deactivate course
// @Tags Courses
// @Param id path int true "Course ID"
// @Success 204
// @Failure 404 {object} errors.Error
// @Router /courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
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

// Activate godoc
// @Summary Activate course
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseResponse
// @Router /courses/{id}/activate [put]
func (h *CourseHandler) Activate(c *gin.Context) {
	h.toggle(c, h.service.Activate)
}

// Deactivate godoc
// @Summary Deactivate course
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseResponse
// @Router /courses/{id}/deactivate [put]
func (h *CourseHandler) Deactivate(c *gin.Context) {
	h.toggle(c, h.service.Deactivate)
}

func (h *CourseHandler) toggle(c *gin.Context, fn func(context.Context, int64) (*dto.CourseResponse, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	course, err := fn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}
