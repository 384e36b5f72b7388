package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/pkg/database"
)

// SemesterRepository handles persistence for semesters.
type SemesterRepository struct {
	db *sqlx.DB
}

func NewSemesterRepository(db *sqlx.DB) *SemesterRepository {
	return &SemesterRepository{db: db}
}

func semesterSelect() squirrel.SelectBuilder {
	return psql.Select(
		"s.id", "s.number", "s.course_id", "s.active", "s.created_at", "s.updated_at",
		"c.name AS course_name",
	).From("semesters s").Join("courses c ON c.id = s.course_id")
}

// List returns semesters ordered by course and number.
func (r *SemesterRepository) List(ctx context.Context, filter models.SemesterFilter) ([]models.Semester, error) {
	b := semesterSelect().OrderBy("s.course_id", "s.number")
	if filter.CourseID != nil {
		b = b.Where(squirrel.Eq{"s.course_id": *filter.CourseID})
	}
	if filter.Active != nil {
		b = b.Where(squirrel.Eq{"s.active": *filter.Active})
	}

	semesters := []models.Semester{}
	if err := selectList(ctx, database.Conn(ctx, r.db), &semesters, b); err != nil {
		return nil, wrap("list semesters", err)
	}
	return semesters, nil
}

func (r *SemesterRepository) FindByID(ctx context.Context, id int64) (*models.Semester, error) {
	var semester models.Semester
	if err := selectOne(ctx, database.Conn(ctx, r.db), &semester, semesterSelect().Where(squirrel.Eq{"s.id": id})); err != nil {
		return nil, wrap("find semester by id", err)
	}
	return &semester, nil
}

// ExistsByCourseAndNumber checks the (course, number) pair, ignoring excludeID when non-zero.
func (r *SemesterRepository) ExistsByCourseAndNumber(ctx context.Context, courseID int64, number int, excludeID int64) (bool, error) {
	found, err := exists(ctx, database.Conn(ctx, r.db), "semesters", squirrel.Eq{"course_id": courseID, "number": number}, excludeID)
	if err != nil {
		return false, wrap("check semester number", err)
	}
	return found, nil
}

func (r *SemesterRepository) Create(ctx context.Context, semester *models.Semester) error {
	now := time.Now().UTC()
	semester.CreatedAt = now
	semester.UpdatedAt = now

	b := psql.Insert("semesters").
		Columns("number", "course_id", "active", "created_at", "updated_at").
		Values(semester.Number, semester.CourseID, semester.Active, semester.CreatedAt, semester.UpdatedAt)
	id, err := insertReturningID(ctx, database.Conn(ctx, r.db), b)
	if err != nil {
		return wrap("create semester", err)
	}
	semester.ID = id
	return nil
}

// Update writes number and active. The owning course never changes.
func (r *SemesterRepository) Update(ctx context.Context, semester *models.Semester) error {
	semester.UpdatedAt = time.Now().UTC()
	b := psql.Update("semesters").
		Set("number", semester.Number).
		Set("active", semester.Active).
		Set("updated_at", semester.UpdatedAt).
		Where(squirrel.Eq{"id": semester.ID})
	return wrap("update semester", execAffectingRow(ctx, database.Conn(ctx, r.db), b))
}

// Delete removes the semester; its disciplines and their curriculum entries cascade.
func (r *SemesterRepository) Delete(ctx context.Context, id int64) error {
	return wrap("delete semester", execAffectingRow(ctx, database.Conn(ctx, r.db), psql.Delete("semesters").Where(squirrel.Eq{"id": id})))
}
