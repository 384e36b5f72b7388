package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	appErrors "github.com/noah-isme/academy-api/pkg/errors"
	"github.com/noah-isme/academy-api/pkg/export"
)

type curriculumRepository interface {
	List(ctx context.Context, filter models.CurriculumFilter) ([]models.Curriculum, error)
	FindByID(ctx context.Context, id int64) (*models.Curriculum, error)
	ExistsByCourseAndDiscipline(ctx context.Context, courseID, disciplineID, excludeID int64) (bool, error)
	Create(ctx context.Context, entry *models.Curriculum) error
	Update(ctx context.Context, entry *models.Curriculum) error
	Delete(ctx context.Context, id int64) error
}

type disciplineLookup interface {
	FindByID(ctx context.Context, id int64) (*models.Discipline, error)
}

type semesterLister interface {
	List(ctx context.Context, filter models.SemesterFilter) ([]models.Semester, error)
}

type userLookup interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// CurriculumDeps groups the lookups the curriculum service needs besides its own repository.
type CurriculumDeps struct {
	Courses     courseLookup
	Disciplines disciplineLookup
	Semesters   semesterLister
	Users       userLookup
}

// ExportFile is a rendered curriculum matrix ready to be served as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// CurriculumService links disciplines to courses and builds the derived curriculum views.
type CurriculumService struct {
	repo      curriculumRepository
	deps      CurriculumDeps
	tx        transactor
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

func NewCurriculumService(repo curriculumRepository, deps CurriculumDeps, tx transactor, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *CurriculumService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CurriculumService{repo: repo, deps: deps, tx: tx, cache: cache, validator: validate, logger: logger}
}

func (s *CurriculumService) List(ctx context.Context, filter models.CurriculumFilter) ([]dto.CurriculumResponse, error) {
	entries, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list curriculum")
	}
	return dto.NewCurriculumResponses(entries), nil
}

func (s *CurriculumService) Get(ctx context.Context, id int64) (*dto.CurriculumResponse, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "curriculum not found", "failed to load curriculum")
	}
	resp := dto.NewCurriculumResponse(entry)
	return &resp, nil
}

// ListForStudent returns the active curriculum when studentID is a student, and an empty list otherwise.
// Enrollment is not modelled, so every student sees every active entry.
func (s *CurriculumService) ListForStudent(ctx context.Context, studentID int64) ([]dto.CurriculumResponse, error) {
	user, err := s.deps.Users.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []dto.CurriculumResponse{}, nil
		}
		return nil, appErrors.Internal(err, "failed to load student")
	}
	if user.Role != models.RoleStudent {
		return []dto.CurriculumResponse{}, nil
	}
	return s.List(ctx, models.CurriculumFilter{Active: ptr(true)})
}

// Create links a discipline to a course. Both must exist and the pair must be new.
func (s *CurriculumService) Create(ctx context.Context, req dto.CurriculumRequest) (*dto.CurriculumResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "curriculum")
	}

	var created *models.Curriculum
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.deps.Courses.FindByID(ctx, req.CourseID); err != nil {
			return referenceError(err, fmt.Sprintf("course %d not found", req.CourseID), "failed to load course")
		}
		if _, err := s.deps.Disciplines.FindByID(ctx, req.DisciplineID); err != nil {
			return referenceError(err, fmt.Sprintf("discipline %d not found", req.DisciplineID), "failed to load discipline")
		}
		taken, err := s.repo.ExistsByCourseAndDiscipline(ctx, req.CourseID, req.DisciplineID, 0)
		if err != nil {
			return appErrors.Internal(err, "failed to check curriculum entry")
		}
		if taken {
			return appErrors.Clone(appErrors.ErrConflict, "discipline already in course curriculum")
		}

		entry := &models.Curriculum{CourseID: req.CourseID, DisciplineID: req.DisciplineID, Active: true}
		if req.Active != nil {
			entry.Active = *req.Active
		}
		if err := s.repo.Create(ctx, entry); err != nil {
			return err
		}
		created, err = s.repo.FindByID(ctx, entry.ID)
		return err
	})
	if err != nil {
		return nil, writeError(err, "discipline already in course curriculum", "failed to create curriculum")
	}

	s.cache.Invalidate(ctx, cacheMatrix)
	resp := dto.NewCurriculumResponse(created)
	return &resp, nil
}

// Update applies the active flag only; the linked course and discipline are fixed.
func (s *CurriculumService) Update(ctx context.Context, id int64, req dto.CurriculumRequest) (*dto.CurriculumResponse, error) {
	var entry *models.Curriculum
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		entry, err = s.repo.FindByID(ctx, id)
		if err != nil {
			return lookupError(err, "curriculum not found", "failed to load curriculum")
		}
		if req.Active != nil {
			entry.Active = *req.Active
		}
		return s.repo.Update(ctx, entry)
	})
	if err != nil {
		return nil, writeError(err, "", "failed to update curriculum")
	}

	s.cache.Invalidate(ctx, cacheMatrix)
	resp := dto.NewCurriculumResponse(entry)
	return &resp, nil
}

func (s *CurriculumService) Delete(ctx context.Context, id int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			return lookupError(err, "curriculum not found", "failed to load curriculum")
		}
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return writeError(err, "", "failed to delete curriculum")
	}

	s.cache.Invalidate(ctx, cacheMatrix)
	return nil
}

// Matrix returns the course's semesters with the disciplines of its active curriculum entries.
func (s *CurriculumService) Matrix(ctx context.Context, courseID int64) (*dto.CurriculumMatrix, error) {
	key := "matrix:" + strconv.FormatInt(courseID, 10)
	var matrix dto.CurriculumMatrix
	if s.cache.Get(ctx, key, &matrix) {
		return &matrix, nil
	}

	course, err := s.deps.Courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, lookupError(err, "course not found", "failed to load course")
	}
	semesters, err := s.deps.Semesters.List(ctx, models.SemesterFilter{CourseID: &courseID})
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list semesters")
	}
	entries, err := s.repo.List(ctx, models.CurriculumFilter{CourseID: &courseID, Active: ptr(true)})
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list curriculum")
	}

	matrix = dto.BuildCurriculumMatrix(course, semesters, entries)
	s.cache.Set(ctx, key, matrix)
	return &matrix, nil
}

// ExportMatrix renders the matrix as csv or pdf.
func (s *CurriculumService) ExportMatrix(ctx context.Context, courseID int64, format string) (*ExportFile, error) {
	renderer, err := export.ForFormat(format)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fmt.Sprintf("unsupported export format: %s", format))
	}

	matrix, err := s.Matrix(ctx, courseID)
	if err != nil {
		return nil, err
	}

	content, err := renderer.Render(matrix.Table())
	if err != nil {
		return nil, appErrors.Internal(err, "failed to render curriculum")
	}

	s.logger.Info("curriculum exported", zap.Int64("course_id", courseID), zap.String("format", renderer.Extension()), zap.Int("bytes", len(content)))
	return &ExportFile{
		Filename:    fmt.Sprintf("curriculum-%s.%s", slug(matrix.CourseName, courseID), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Content:     content,
	}, nil
}

func slug(name string, fallback int64) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return strconv.FormatInt(fallback, 10)
	}
	return out
}
