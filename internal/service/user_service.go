package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	appErrors "github.com/noah-isme/academy-api/pkg/errors"
)

type userRepository interface {
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	Count(ctx context.Context, active *bool) (int64, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

// UserService provides user management use cases. Responses never carry the password hash.
type UserService struct {
	repo       userRepository
	tx         transactor
	cache      *CacheService
	validator  *validator.Validate
	logger     *zap.Logger
	bcryptCost int
}

// NewUserService constructs a user service.
func NewUserService(repo userRepository, tx transactor, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, tx: tx, cache: cache, validator: validate, logger: logger, bcryptCost: bcrypt.DefaultCost}
}

// ParseRole accepts a role name in any letter case.
func ParseRole(raw string) (models.UserRole, error) {
	role := models.UserRole(strings.ToUpper(strings.TrimSpace(raw)))
	if !role.Valid() {
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid role: %s", raw))
	}
	return role, nil
}

func (s *UserService) List(ctx context.Context, filter models.UserFilter) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list users")
	}
	return dto.NewUserResponses(users), nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "user not found", "failed to load user")
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	user, err := s.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, lookupError(err, "user not found", "failed to load user")
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserService) Count(ctx context.Context, activeOnly bool) (int64, error) {
	key := "users:count:all"
	var active *bool
	if activeOnly {
		key = "users:count:active"
		active = ptr(true)
	}

	var total int64
	if s.cache.Get(ctx, key, &total) {
		return total, nil
	}
	total, err := s.repo.Count(ctx, active)
	if err != nil {
		return 0, appErrors.Internal(err, "failed to count users")
	}
	s.cache.Set(ctx, key, total)
	return total, nil
}

// Create registers a user ensuring email uniqueness.
func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to hash password")
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Active:       true,
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureEmailAvailable(ctx, req.Email, 0); err != nil {
			return err
		}
		return s.repo.Create(ctx, user)
	})
	if err != nil {
		return nil, writeError(err, "email already in use", "failed to create user")
	}

	s.cache.Invalidate(ctx, cacheUsers)
	s.logger.Info("user created", zap.Int64("user_id", user.ID), zap.String("role", string(user.Role)))
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Update applies name, email, role, and optionally active and password.
func (s *UserService) Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "user")
	}

	var newHash string
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
		if err != nil {
			return nil, appErrors.Internal(err, "failed to hash password")
		}
		newHash = string(hash)
	}

	var user *models.User
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.repo.FindByID(ctx, id)
		if err != nil {
			return lookupError(err, "user not found", "failed to load user")
		}
		if err := s.ensureEmailAvailable(ctx, req.Email, id); err != nil {
			return err
		}

		user.Name = req.Name
		user.Email = req.Email
		user.Role = req.Role
		if req.Active != nil {
			user.Active = *req.Active
		}
		if newHash != "" {
			user.PasswordHash = newHash
		}
		return s.repo.Update(ctx, user)
	})
	if err != nil {
		return nil, writeError(err, "email already in use", "failed to update user")
	}

	s.cache.Invalidate(ctx, cacheUsers)
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Delete performs a soft delete by marking the user inactive.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	_, err := s.setActive(ctx, id, false)
	return err
}

func (s *UserService) Activate(ctx context.Context, id int64) (*dto.UserResponse, error) {
	return s.setActive(ctx, id, true)
}

func (s *UserService) Deactivate(ctx context.Context, id int64) (*dto.UserResponse, error) {
	return s.setActive(ctx, id, false)
}

func (s *UserService) setActive(ctx context.Context, id int64, active bool) (*dto.UserResponse, error) {
	var user *models.User
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.repo.FindByID(ctx, id)
		if err != nil {
			return lookupError(err, "user not found", "failed to load user")
		}
		user.Active = active
		return s.repo.Update(ctx, user)
	})
	if err != nil {
		return nil, writeError(err, "email already in use", "failed to update user")
	}

	s.cache.Invalidate(ctx, cacheUsers)
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserService) ensureEmailAvailable(ctx context.Context, email string, excludeID int64) error {
	taken, err := s.repo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return appErrors.Internal(err, "failed to check user email")
	}
	if taken {
		return appErrors.Clone(appErrors.ErrConflict, "email already in use")
	}
	return nil
}
