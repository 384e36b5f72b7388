package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/pkg/database"
)

// CurriculumRepository handles persistence for curriculum entries.
type CurriculumRepository struct {
	db *sqlx.DB
}

func NewCurriculumRepository(db *sqlx.DB) *CurriculumRepository {
	return &CurriculumRepository{db: db}
}

// curriculumSelect joins the course, the discipline and the discipline's semester at read time.
func curriculumSelect() squirrel.SelectBuilder {
	return psql.Select(
		"cu.id", "cu.course_id", "cu.discipline_id", "cu.active", "cu.created_at", "cu.updated_at",
		"c.name AS course_name", "d.name AS discipline_name", "d.workload AS discipline_workload",
		"d.semester_id", "s.number AS semester_number",
	).From("curriculum cu").
		Join("courses c ON c.id = cu.course_id").
		Join("disciplines d ON d.id = cu.discipline_id").
		Join("semesters s ON s.id = d.semester_id")
}

func (r *CurriculumRepository) List(ctx context.Context, filter models.CurriculumFilter) ([]models.Curriculum, error) {
	b := curriculumSelect().OrderBy("cu.id")
	if filter.CourseID != nil {
		b = b.Where(squirrel.Eq{"cu.course_id": *filter.CourseID})
	}
	if filter.DisciplineID != nil {
		b = b.Where(squirrel.Eq{"cu.discipline_id": *filter.DisciplineID})
	}
	if filter.SemesterID != nil {
		b = b.Where(squirrel.Eq{"d.semester_id": *filter.SemesterID})
	}
	if filter.Active != nil {
		b = b.Where(squirrel.Eq{"cu.active": *filter.Active})
	}

	entries := []models.Curriculum{}
	if err := selectList(ctx, database.Conn(ctx, r.db), &entries, b); err != nil {
		return nil, wrap("list curriculum", err)
	}
	return entries, nil
}

func (r *CurriculumRepository) FindByID(ctx context.Context, id int64) (*models.Curriculum, error) {
	var entry models.Curriculum
	if err := selectOne(ctx, database.Conn(ctx, r.db), &entry, curriculumSelect().Where(squirrel.Eq{"cu.id": id})); err != nil {
		return nil, wrap("find curriculum by id", err)
	}
	return &entry, nil
}

func (r *CurriculumRepository) ExistsByCourseAndDiscipline(ctx context.Context, courseID, disciplineID, excludeID int64) (bool, error) {
	found, err := exists(ctx, database.Conn(ctx, r.db), "curriculum", squirrel.Eq{"course_id": courseID, "discipline_id": disciplineID}, excludeID)
	if err != nil {
		return false, wrap("check curriculum entry", err)
	}
	return found, nil
}

func (r *CurriculumRepository) Create(ctx context.Context, entry *models.Curriculum) error {
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	b := psql.Insert("curriculum").
		Columns("course_id", "discipline_id", "active", "created_at", "updated_at").
		Values(entry.CourseID, entry.DisciplineID, entry.Active, entry.CreatedAt, entry.UpdatedAt)
	id, err := insertReturningID(ctx, database.Conn(ctx, r.db), b)
	if err != nil {
		return wrap("create curriculum", err)
	}
	entry.ID = id
	return nil
}

// Update writes the active flag only.
func (r *CurriculumRepository) Update(ctx context.Context, entry *models.Curriculum) error {
	entry.UpdatedAt = time.Now().UTC()
	b := psql.Update("curriculum").
		Set("active", entry.Active).
		Set("updated_at", entry.UpdatedAt).
		Where(squirrel.Eq{"id": entry.ID})
	return wrap("update curriculum", execAffectingRow(ctx, database.Conn(ctx, r.db), b))
}

func (r *CurriculumRepository) Delete(ctx context.Context, id int64) error {
	return wrap("delete curriculum", execAffectingRow(ctx, database.Conn(ctx, r.db), psql.Delete("curriculum").Where(squirrel.Eq{"id": id})))
}
