package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	appErrors "github.com/noah-isme/academy-api/pkg/errors"
)

type semesterRepository interface {
	List(ctx context.Context, filter models.SemesterFilter) ([]models.Semester, error)
	FindByID(ctx context.Context, id int64) (*models.Semester, error)
	ExistsByCourseAndNumber(ctx context.Context, courseID int64, number int, excludeID int64) (bool, error)
	Create(ctx context.Context, semester *models.Semester) error
	Update(ctx context.Context, semester *models.Semester) error
	Delete(ctx context.Context, id int64) error
}

type courseLookup interface {
	FindByID(ctx context.Context, id int64) (*models.Course, error)
}

// SemesterService manages the semesters of a course. Deletes are permanent and cascade to disciplines.
type SemesterService struct {
	repo      semesterRepository
	courses   courseLookup
	tx        transactor
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

func NewSemesterService(repo semesterRepository, courses courseLookup, tx transactor, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *SemesterService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SemesterService{repo: repo, courses: courses, tx: tx, cache: cache, validator: validate, logger: logger}
}

func (s *SemesterService) List(ctx context.Context, filter models.SemesterFilter) ([]dto.SemesterResponse, error) {
	semesters, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list semesters")
	}
	return dto.NewSemesterResponses(semesters), nil
}

func (s *SemesterService) Get(ctx context.Context, id int64) (*dto.SemesterResponse, error) {
	semester, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "semester not found", "failed to load semester")
	}
	resp := dto.NewSemesterResponse(semester)
	return &resp, nil
}

// Create adds a semester to an existing course. The number must be unused within that course.
func (s *SemesterService) Create(ctx context.Context, req dto.SemesterRequest) (*dto.SemesterResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "semester")
	}

	var created *models.Semester
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.courses.FindByID(ctx, req.CourseID); err != nil {
			return referenceError(err, fmt.Sprintf("course %d not found", req.CourseID), "failed to load course")
		}
		if err := s.ensureNumberAvailable(ctx, req.CourseID, req.Number, 0); err != nil {
			return err
		}

		semester := &models.Semester{Number: req.Number, CourseID: req.CourseID, Active: true}
		if req.Active != nil {
			semester.Active = *req.Active
		}
		if err := s.repo.Create(ctx, semester); err != nil {
			return err
		}

		var err error
		created, err = s.repo.FindByID(ctx, semester.ID)
		return err
	})
	if err != nil {
		return nil, writeError(err, "semester number already exists for course", "failed to create semester")
	}

	s.cache.Invalidate(ctx, cacheMatrix)
	resp := dto.NewSemesterResponse(created)
	return &resp, nil
}

// Update applies number and active. The owning course in the payload is ignored.
func (s *SemesterService) Update(ctx context.Context, id int64, req dto.SemesterRequest) (*dto.SemesterResponse, error) {
	if err := validateIgnoring(s.validator, req, "semester", "courseId"); err != nil {
		return nil, err
	}

	var semester *models.Semester
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		semester, err = s.repo.FindByID(ctx, id)
		if err != nil {
			return lookupError(err, "semester not found", "failed to load semester")
		}
		if err := s.ensureNumberAvailable(ctx, semester.CourseID, req.Number, id); err != nil {
			return err
		}

		semester.Number = req.Number
		if req.Active != nil {
			semester.Active = *req.Active
		}
		return s.repo.Update(ctx, semester)
	})
	if err != nil {
		return nil, writeError(err, "semester number already exists for course", "failed to update semester")
	}

	s.cache.Invalidate(ctx, cacheMatrix)
	resp := dto.NewSemesterResponse(semester)
	return &resp, nil
}

// Delete removes the semester permanently.
func (s *SemesterService) Delete(ctx context.Context, id int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			return lookupError(err, "semester not found", "failed to load semester")
		}
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return writeError(err, "", "failed to delete semester")
	}

	s.cache.Invalidate(ctx, cacheMatrix)
	return nil
}

func (s *SemesterService) ensureNumberAvailable(ctx context.Context, courseID int64, number int, excludeID int64) error {
	taken, err := s.repo.ExistsByCourseAndNumber(ctx, courseID, number, excludeID)
	if err != nil {
		return appErrors.Internal(err, "failed to check semester number")
	}
	if taken {
		return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("semester %d already exists for course %d", number, courseID))
	}
	return nil
}
