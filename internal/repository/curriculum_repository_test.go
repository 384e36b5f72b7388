package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/pkg/database"
)

var pqUniqueViolation = pq.Error{Code: "23505", Constraint: "curriculum_course_discipline_key"}

func TestCurriculumFindByIDProjectsParents(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCurriculumRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "course_id", "discipline_id", "active", "created_at", "updated_at", "course_name", "discipline_name", "discipline_workload", "semester_id", "semester_number"}).
		AddRow(100, 1, 5, true, now, now, "CS", "Calculus", 80, 10, 1)
	mock.ExpectQuery(regexp.QuoteMeta("FROM curriculum cu JOIN courses c ON c.id = cu.course_id JOIN disciplines d ON d.id = cu.discipline_id JOIN semesters s ON s.id = d.semester_id WHERE cu.id = $1 LIMIT 1")).
		WithArgs(int64(100)).
		WillReturnRows(rows)

	entry, err := repo.FindByID(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, "Calculus", entry.DisciplineName)
	assert.Equal(t, 1, entry.SemesterNumber)
	assert.Equal(t, int64(10), entry.SemesterID)
}

func TestCurriculumListBySemesterActive(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCurriculumRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE d.semester_id = $1 AND cu.active = $2 ORDER BY cu.id")).
		WithArgs(int64(10), true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	semesterID := int64(10)
	active := true
	entries, err := repo.List(context.Background(), models.CurriculumFilter{SemesterID: &semesterID, Active: &active})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCurriculumCreateRollsBackOnUniqueViolation(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCurriculumRepository(db)
	tx := database.NewTransactor(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO curriculum .* RETURNING id").
		WithArgs(int64(1), int64(5), true, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(&pqUniqueViolation)
	mock.ExpectRollback()

	err := tx.WithinTx(context.Background(), func(ctx context.Context) error {
		return repo.Create(ctx, &models.Curriculum{CourseID: 1, DisciplineID: 5, Active: true})
	})
	require.Error(t, err)
	assert.True(t, database.IsUniqueViolation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
