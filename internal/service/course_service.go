package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	appErrors "github.com/noah-isme/academy-api/pkg/errors"
)

type courseRepository interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error)
	FindByID(ctx context.Context, id int64) (*models.Course, error)
	FindByName(ctx context.Context, name string) (*models.Course, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Count(ctx context.Context, active *bool) (int64, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
}

// CourseService handles course workflows. Deleting a course only deactivates it.
type CourseService struct {
	repo      courseRepository
	tx        transactor
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService creates a new course service.
func NewCourseService(repo courseRepository, tx transactor, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, tx: tx, cache: cache, validator: validate, logger: logger}
}

// List returns courses matching the filter. Inactive courses are included unless the filter says otherwise.
func (s *CourseService) List(ctx context.Context, filter models.CourseFilter) ([]dto.CourseResponse, error) {
	courses, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list courses")
	}
	return dto.NewCourseResponses(courses), nil
}

// Get returns a course by id regardless of its active flag.
func (s *CourseService) Get(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "course not found", "failed to load course")
	}
	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// GetByName returns the course with exactly this name.
func (s *CourseService) GetByName(ctx context.Context, name string) (*dto.CourseResponse, error) {
	course, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, lookupError(err, "course not found", "failed to load course")
	}
	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// Count returns the number of courses, or of active courses only.
func (s *CourseService) Count(ctx context.Context, activeOnly bool) (int64, error) {
	key := "courses:count:all"
	var active *bool
	if activeOnly {
		key = "courses:count:active"
		active = ptr(true)
	}

	var total int64
	if s.cache.Get(ctx, key, &total) {
		return total, nil
	}
	total, err := s.repo.Count(ctx, active)
	if err != nil {
		return 0, appErrors.Internal(err, "failed to count courses")
	}
	s.cache.Set(ctx, key, total)
	return total, nil
}

// Create adds a new active course ensuring name uniqueness.
func (s *CourseService) Create(ctx context.Context, req dto.CourseRequest) (*dto.CourseResponse, error) {
	normalizeCourseRequest(&req)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "course")
	}

	course := &models.Course{
		Name:              req.Name,
		Description:       req.Description,
		TotalHours:        req.TotalHours,
		DurationSemesters: req.DurationSemesters,
		Active:            true,
	}
	if req.Active != nil {
		course.Active = *req.Active
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureNameAvailable(ctx, req.Name, 0); err != nil {
			return err
		}
		return s.repo.Create(ctx, course)
	})
	if err != nil {
		return nil, writeError(err, "course name already exists", "failed to create course")
	}

	s.cache.Invalidate(ctx, cacheCourses)
	s.logger.Info("course created", zap.Int64("course_id", course.ID), zap.String("name", course.Name))
	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// Update replaces the recognized course fields. The name may stay the same as the record's own.
func (s *CourseService) Update(ctx context.Context, id int64, req dto.CourseRequest) (*dto.CourseResponse, error) {
	normalizeCourseRequest(&req)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "course")
	}

	var course *models.Course
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		course, err = s.repo.FindByID(ctx, id)
		if err != nil {
			return lookupError(err, "course not found", "failed to load course")
		}
		if err := s.ensureNameAvailable(ctx, req.Name, id); err != nil {
			return err
		}

		course.Name = req.Name
		course.Description = req.Description
		course.TotalHours = req.TotalHours
		course.DurationSemesters = req.DurationSemesters
		if req.Active != nil {
			course.Active = *req.Active
		}
		return s.repo.Update(ctx, course)
	})
	if err != nil {
		return nil, writeError(err, "course name already exists", "failed to update course")
	}

	s.cache.Invalidate(ctx, cacheCourses, cacheMatrix)
	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// Delete soft-deletes the course. It stays readable by id.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	_, err := s.setActive(ctx, id, false)
	return err
}

// Activate marks the course active. Repeated calls are harmless.
func (s *CourseService) Activate(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	return s.setActive(ctx, id, true)
}

// Deactivate marks the course inactive.
func (s *CourseService) Deactivate(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	return s.setActive(ctx, id, false)
}

func (s *CourseService) setActive(ctx context.Context, id int64, active bool) (*dto.CourseResponse, error) {
	var course *models.Course
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		course, err = s.repo.FindByID(ctx, id)
		if err != nil {
			return lookupError(err, "course not found", "failed to load course")
		}
		course.Active = active
		return s.repo.Update(ctx, course)
	})
	if err != nil {
		return nil, writeError(err, "course name already exists", "failed to update course")
	}

	s.cache.Invalidate(ctx, cacheCourses)
	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

func (s *CourseService) ensureNameAvailable(ctx context.Context, name string, excludeID int64) error {
	taken, err := s.repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return appErrors.Internal(err, "failed to check course name")
	}
	if taken {
		return appErrors.Clone(appErrors.ErrConflict, "course name already exists")
	}
	return nil
}

func normalizeCourseRequest(req *dto.CourseRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
}
