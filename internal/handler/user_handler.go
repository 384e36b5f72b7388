package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/internal/service"
	"github.com/noah-isme/academy-api/pkg/response"
)

type userService interface {
	List(ctx context.Context, filter models.UserFilter) ([]dto.UserResponse, error)
	Get(ctx context.Context, id int64) (*dto.UserResponse, error)
	GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error)
	Count(ctx context.Context, activeOnly bool) (int64, error)
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id int64) error
	Activate(ctx context.Context, id int64) (*dto.UserResponse, error)
	Deactivate(ctx context.Context, id int64) (*dto.UserResponse, error)
}

// UserHandler exposes user endpoints. Password hashes never leave the service layer.
type UserHandler struct {
	service userService
}

func NewUserHandler(svc userService) *UserHandler {
	return &UserHandler{service: svc}
}

// Register mounts the user routes on rg.
func (h *UserHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/active", h.ListActive)
	rg.GET("/search", h.Search)
	rg.GET("/role/:role", h.ByRole)
	rg.GET("/active/role/:role", h.ActiveByRole)
	rg.GET("/count", h.Count)
	rg.GET("/count/active", h.CountActive)
	rg.GET("/email/:email", h.GetByEmail)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.PUT("/:id/activate", h.Activate)
	rg.PUT("/:id/deactivate", h.Deactivate)
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	h.list(c, models.UserFilter{})
}

// ListActive godoc
// @Summary List active users
// @Tags Users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Router /users/active [get]
func (h *UserHandler) ListActive(c *gin.Context) {
	h.list(c, models.UserFilter{Active: boolPtr(true)})
}

// Search godoc
// @Summary Search users by partial name
// @Tags Users
// @Produce json
// @Param name query string true "Name fragment"
// @Success 200 {array} dto.UserResponse
// @Router /users/search [get]
func (h *UserHandler) Search(c *gin.Context) {
	h.list(c, models.UserFilter{NameSearch: nameQuery(c)})
}

// ByRole godoc
// @Summary List users with a role
// @Tags Users
// @Produce json
// @Param role path string true "ADMIN, COORDINATOR, PROFESSOR or STUDENT"
// @Success 200 {array} dto.UserResponse
// @Failure 400 {object} errors.Error
// @Router /users/role/{role} [get]
func (h *UserHandler) ByRole(c *gin.Context) {
	h.byRole(c, nil)
}

// ActiveByRole godoc
// @Summary List active users with a role
// @Tags Users
// @Produce json
// @Param role path string true "ADMIN, COORDINATOR, PROFESSOR or STUDENT"
// @Success 200 {array} dto.UserResponse
// @Router /users/active/role/{role} [get]
func (h *UserHandler) ActiveByRole(c *gin.Context) {
	h.byRole(c, boolPtr(true))
}

func (h *UserHandler) byRole(c *gin.Context, active *bool) {
	role, err := service.ParseRole(c.Param("role"))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.list(c, models.UserFilter{Role: &role, Active: active})
}

func (h *UserHandler) list(c *gin.Context, filter models.UserFilter) {
	users, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, users)
}

// Count godoc
// @Summary Count users
// @Tags Users
// @Produce json
// @Success 200 {object} response.Count
// @Router /users/count [get]
func (h *UserHandler) Count(c *gin.Context) {
	h.count(c, false)
}

// CountActive godoc
// @Summary Count active users
// @Tags Users
// @Produce json
// @Success 200 {object} response.Count
// @Router /users/count/active [get]
func (h *UserHandler) CountActive(c *gin.Context) {
	h.count(c, true)
}

func (h *UserHandler) count(c *gin.Context, activeOnly bool) {
	total, err := h.service.Count(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, response.Count{Count: total})
}

// Get godoc
// @Summary Get user by id
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} errors.Error
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// GetByEmail godoc
// @Summary Get user by email
// @Tags Users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} errors.Error
// @Router /users/email/{email} [get]
func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.service.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// Create godoc
// @Summary Create user
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body dto.CreateUserRequest true "User payload"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} errors.Error
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req, "user") {
		return
	}
	user, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}

// Update godoc
// @Summary Update user
// @Description An omitted password keeps the current one.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param payload body dto.UpdateUserRequest true "User payload"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} errors.Error
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req, "user") {
		return
	}
	user, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// Delete godoc
// @Summary Deactivate user
// @Tags Users
// @Param id path int true "User ID"
// @Success 204
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
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
// @Summary Activate user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Router /users/{id}/activate [put]
func (h *UserHandler) Activate(c *gin.Context) {
	h.toggle(c, h.service.Activate)
}

// Deactivate godoc
// @Summary Deactivate user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Router /users/{id}/deactivate [put]
func (h *UserHandler) Deactivate(c *gin.Context) {
	h.toggle(c, h.service.Deactivate)
}

func (h *UserHandler) toggle(c *gin.Context, fn func(context.Context, int64) (*dto.UserResponse, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := fn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}
