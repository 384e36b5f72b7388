package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/pkg/database"
)

// DisciplineRepository handles persistence for disciplines.
type DisciplineRepository struct {
	db *sqlx.DB
}

func NewDisciplineRepository(db *sqlx.DB) *DisciplineRepository {
	return &DisciplineRepository{db: db}
}

func disciplineSelect() squirrel.SelectBuilder {
	return psql.Select(
		"d.id", "d.name", "d.description", "d.workload", "d.semester_id", "d.active", "d.created_at", "d.updated_at",
		"s.number AS semester_number", "s.course_id", "c.name AS course_name",
	).From("disciplines d").
		Join("semesters s ON s.id = d.semester_id").
		Join("courses c ON c.id = s.course_id")
}

func (r *DisciplineRepository) List(ctx context.Context, filter models.DisciplineFilter) ([]models.Discipline, error) {
	b := disciplineSelect().OrderBy("d.id")
	if filter.SemesterID != nil {
		b = b.Where(squirrel.Eq{"d.semester_id": *filter.SemesterID})
	}
	if filter.CourseID != nil {
		b = b.Where(squirrel.Eq{"s.course_id": *filter.CourseID})
	}
	if filter.Active != nil {
		b = b.Where(squirrel.Eq{"d.active": *filter.Active})
	}
	if filter.NameSearch != "" {
		b = b.Where(squirrel.Like{"d.name": containsPattern(filter.NameSearch)})
	}

	disciplines := []models.Discipline{}
	if err := selectList(ctx, database.Conn(ctx, r.db), &disciplines, b); err != nil {
		return nil, wrap("list disciplines", err)
	}
	return disciplines, nil
}

func (r *DisciplineRepository) FindByID(ctx context.Context, id int64) (*models.Discipline, error) {
	var discipline models.Discipline
	if err := selectOne(ctx, database.Conn(ctx, r.db), &discipline, disciplineSelect().Where(squirrel.Eq{"d.id": id})); err != nil {
		return nil, wrap("find discipline by id", err)
	}
	return &discipline, nil
}

func (r *DisciplineRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	found, err := exists(ctx, database.Conn(ctx, r.db), "disciplines", squirrel.Eq{"name": name}, excludeID)
	if err != nil {
		return false, wrap("check discipline name", err)
	}
	return found, nil
}

func (r *DisciplineRepository) Create(ctx context.Context, discipline *models.Discipline) error {
	now := time.Now().UTC()
	discipline.CreatedAt = now
	discipline.UpdatedAt = now

	b := psql.Insert("disciplines").
		Columns("name", "description", "workload", "semester_id", "active", "created_at", "updated_at").
		Values(discipline.Name, discipline.Description, discipline.Workload, discipline.SemesterID, discipline.Active, discipline.CreatedAt, discipline.UpdatedAt)
	id, err := insertReturningID(ctx, database.Conn(ctx, r.db), b)
	if err != nil {
		return wrap("create discipline", err)
	}
	discipline.ID = id
	return nil
}

// Update writes name, description, workload and active.
func (r *DisciplineRepository) Update(ctx context.Context, discipline *models.Discipline) error {
	discipline.UpdatedAt = time.Now().UTC()
	b := psql.Update("disciplines").
		Set("name", discipline.Name).
		Set("description", discipline.Description).
		Set("workload", discipline.Workload).
		Set("active", discipline.Active).
		Set("updated_at", discipline.UpdatedAt).
		Where(squirrel.Eq{"id": discipline.ID})
	return wrap("update discipline", execAffectingRow(ctx, database.Conn(ctx, r.db), b))
}

func (r *DisciplineRepository) Delete(ctx context.Context, id int64) error {
	return wrap("delete discipline", execAffectingRow(ctx, database.Conn(ctx, r.db), psql.Delete("disciplines").Where(squirrel.Eq{"id": id})))
}
