package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/pkg/database"
)

var courseColumns = []string{"id", "name", "description", "total_hours", "duration_semesters", "active", "created_at", "updated_at"}

// CourseRepository handles persistence for courses.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository creates a new repository instance.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns courses matching the filter ordered by id.
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	b := psql.Select(courseColumns...).From("courses").OrderBy("id")
	if filter.Active != nil {
		b = b.Where(squirrel.Eq{"active": *filter.Active})
	}
	if filter.NameSearch != "" {
		b = b.Where(squirrel.Like{"name": containsPattern(filter.NameSearch)})
	}
	if filter.DurationSemesters != nil {
		b = b.Where(squirrel.Eq{"duration_semesters": *filter.DurationSemesters})
	}

	courses := []models.Course{}
	if err := selectList(ctx, database.Conn(ctx, r.db), &courses, b); err != nil {
		return nil, wrap("list courses", err)
	}
	return courses, nil
}

// FindByID returns a course by id, active or not.
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	b := psql.Select(courseColumns...).From("courses").Where(squirrel.Eq{"id": id})
	if err := selectOne(ctx, database.Conn(ctx, r.db), &course, b); err != nil {
		return nil, wrap("find course by id", err)
	}
	return &course, nil
}

// FindByName returns the course with exactly the given name.
func (r *CourseRepository) FindByName(ctx context.Context, name string) (*models.Course, error) {
	var course models.Course
	b := psql.Select(courseColumns...).From("courses").Where(squirrel.Eq{"name": name})
	if err := selectOne(ctx, database.Conn(ctx, r.db), &course, b); err != nil {
		return nil, wrap("find course by name", err)
	}
	return &course, nil
}

// ExistsByName checks name uniqueness, ignoring excludeID when non-zero.
func (r *CourseRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	found, err := exists(ctx, database.Conn(ctx, r.db), "courses", squirrel.Eq{"name": name}, excludeID)
	if err != nil {
		return false, wrap("check course name", err)
	}
	return found, nil
}

// Count returns the number of courses, optionally restricted by the active flag.
func (r *CourseRepository) Count(ctx context.Context, active *bool) (int64, error) {
	total, err := count(ctx, database.Conn(ctx, r.db), "courses", active)
	if err != nil {
		return 0, wrap("count courses", err)
	}
	return total, nil
}

// Create persists a new course and assigns its id.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now

	b := psql.Insert("courses").
		Columns("name", "description", "total_hours", "duration_semesters", "active", "created_at", "updated_at").
		Values(course.Name, course.Description, course.TotalHours, course.DurationSemesters, course.Active, course.CreatedAt, course.UpdatedAt)
	id, err := insertReturningID(ctx, database.Conn(ctx, r.db), b)
	if err != nil {
		return wrap("create course", err)
	}
	course.ID = id
	return nil
}

// Update writes every mutable column and refreshes updated_at.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	course.UpdatedAt = time.Now().UTC()
	b := psql.Update("courses").
		Set("name", course.Name).
		Set("description", course.Description).
		Set("total_hours", course.TotalHours).
		Set("duration_semesters", course.DurationSemesters).
		Set("active", course.Active).
		Set("updated_at", course.UpdatedAt).
		Where(squirrel.Eq{"id": course.ID})
	return wrap("update course", execAffectingRow(ctx, database.Conn(ctx, r.db), b))
}
