package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/pkg/database"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func courseRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(courseColumns).
		AddRow(1, "CS", "Computer Science", 3200, 8, true, now, now)
}

func TestCourseListFilters(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	active := true
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, total_hours, duration_semesters, active, created_at, updated_at FROM courses WHERE active = $1 AND name LIKE $2 ORDER BY id")).
		WithArgs(true, `%50\%%`).
		WillReturnRows(courseRows(time.Now()))

	courses, err := repo.List(context.Background(), models.CourseFilter{Active: &active, NameSearch: "50%"})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, 3200, courses[0].TotalHours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseListEmptyIsNotNil(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM courses WHERE duration_semesters = $1 ORDER BY id")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(courseColumns))

	d := 10
	courses, err := repo.List(context.Background(), models.CourseFilter{DurationSemesters: &d})
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)
}

func TestCourseFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM courses WHERE id = $1 LIMIT 1")).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 42)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestCourseExistsByNameExcludesSelf(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM courses WHERE name = $1 AND id <> $2 LIMIT 1")).
		WithArgs("CS", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM courses WHERE name = $1 LIMIT 1")).
		WithArgs("CS").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	found, err := repo.ExistsByName(context.Background(), "CS", 1)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = repo.ExistsByName(context.Background(), "CS", 0)
	require.NoError(t, err)
	assert.True(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseCount(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM courses")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM courses WHERE active = $1")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	total, err := repo.Count(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	active := true
	total, err = repo.Count(context.Background(), &active)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestCourseCreateInsideTransaction(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)
	tx := database.NewTransactor(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO courses \\(name,description,total_hours,duration_semesters,active,created_at,updated_at\\) VALUES .* RETURNING id").
		WithArgs("CS", "", 3200, 8, true, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectCommit()

	course := &models.Course{Name: "CS", TotalHours: 3200, DurationSemesters: 8, Active: true}
	err := tx.WithinTx(context.Background(), func(ctx context.Context) error {
		return repo.Create(ctx, course)
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), course.ID)
	assert.False(t, course.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseUpdateMissingRow(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE courses SET name = $1, description = $2, total_hours = $3, duration_semesters = $4, active = $5, updated_at = $6 WHERE id = $7")).
		WithArgs("CS", "", 3200, 8, false, sqlmock.AnyArg(), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Course{ID: 5, Name: "CS", TotalHours: 3200, DurationSemesters: 8})
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseQueryErrorIsWrapped(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery("FROM courses WHERE name = \\$1").WillReturnError(errors.New("connection reset"))

	_, err := repo.FindByName(context.Background(), "CS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "find course by name: connection reset")
}
