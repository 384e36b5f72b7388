package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	appErrors "github.com/noah-isme/academy-api/pkg/errors"
)

type disciplineRepository interface {
	List(ctx context.Context, filter models.DisciplineFilter) ([]models.Discipline, error)
	FindByID(ctx context.Context, id int64) (*models.Discipline, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, discipline *models.Discipline) error
	Update(ctx context.Context, discipline *models.Discipline) error
	Delete(ctx context.Context, id int64) error
}

type semesterLookup interface {
	FindByID(ctx context.Context, id int64) (*models.Semester, error)
}

// DisciplineService manages disciplines. Names are unique across all courses.
type DisciplineService struct {
	repo      disciplineRepository
	semesters semesterLookup
	tx        transactor
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

func NewDisciplineService(repo disciplineRepository, semesters semesterLookup, tx transactor, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *DisciplineService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DisciplineService{repo: repo, semesters: semesters, tx: tx, cache: cache, validator: validate, logger: logger}
}

func (s *DisciplineService) List(ctx context.Context, filter models.DisciplineFilter) ([]dto.DisciplineResponse, error) {
	disciplines, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list disciplines")
	}
	return dto.NewDisciplineResponses(disciplines), nil
}

func (s *DisciplineService) Get(ctx context.Context, id int64) (*dto.DisciplineResponse, error) {
	discipline, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "discipline not found", "failed to load discipline")
	}
	resp := dto.NewDisciplineResponse(discipline)
	return &resp, nil
}

// Create adds a discipline to an existing semester.
func (s *DisciplineService) Create(ctx context.Context, req dto.DisciplineRequest) (*dto.DisciplineResponse, error) {
	normalizeDisciplineRequest(&req)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "discipline")
	}

	var created *models.Discipline
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.semesters.FindByID(ctx, req.SemesterID); err != nil {
			return referenceError(err, fmt.Sprintf("semester %d not found", req.SemesterID), "failed to load semester")
		}
		if err := s.ensureNameAvailable(ctx, req.Name, 0); err != nil {
			return err
		}

		discipline := &models.Discipline{
			Name:        req.Name,
			Description: req.Description,
			Workload:    req.Workload,
			SemesterID:  req.SemesterID,
			Active:      true,
		}
		if req.Active != nil {
			discipline.Active = *req.Active
		}
		if err := s.repo.Create(ctx, discipline); err != nil {
			return err
		}

		var err error
		created, err = s.repo.FindByID(ctx, discipline.ID)
		return err
	})
	if err != nil {
		return nil, writeError(err, "discipline name already exists", "failed to create discipline")
	}

	s.cache.Invalidate(ctx, cacheMatrix)
	resp := dto.NewDisciplineResponse(created)
	return &resp, nil
}

// Update applies name, description and workload. Semester and active flag are left untouched.
func (s *DisciplineService) Update(ctx context.Context, id int64, req dto.DisciplineRequest) (*dto.DisciplineResponse, error) {
	normalizeDisciplineRequest(&req)
	if err := validateIgnoring(s.validator, req, "discipline", "semesterId"); err != nil {
		return nil, err
	}

	var discipline *models.Discipline
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		discipline, err = s.repo.FindByID(ctx, id)
		if err != nil {
			return lookupError(err, "discipline not found", "failed to load discipline")
		}
		if err := s.ensureNameAvailable(ctx, req.Name, id); err != nil {
			return err
		}

		discipline.Name = req.Name
		discipline.Description = req.Description
		discipline.Workload = req.Workload
		return s.repo.Update(ctx, discipline)
	})
	if err != nil {
		return nil, writeError(err, "discipline name already exists", "failed to update discipline")
	}

	s.cache.Invalidate(ctx, cacheMatrix)
	resp := dto.NewDisciplineResponse(discipline)
	return &resp, nil
}

// Delete removes the discipline and, by cascade, its curriculum entries.
func (s *DisciplineService) Delete(ctx context.Context, id int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			return lookupError(err, "discipline not found", "failed to load discipline")
		}
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return writeError(err, "", "failed to delete discipline")
	}

	s.cache.Invalidate(ctx, cacheMatrix)
	return nil
}

func (s *DisciplineService) ensureNameAvailable(ctx context.Context, name string, excludeID int64) error {
	taken, err := s.repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return appErrors.Internal(err, "failed to check discipline name")
	}
	if taken {
		return appErrors.Clone(appErrors.ErrConflict, "discipline name already exists")
	}
	return nil
}

func normalizeDisciplineRequest(req *dto.DisciplineRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
}
