package service

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	appErrors "github.com/noah-isme/academy-api/pkg/errors"
)

// curriculumWorld is CS with two semesters and three linked disciplines.
type curriculumWorld struct {
	course     *dto.CourseResponse
	first      *dto.SemesterResponse
	second     *dto.SemesterResponse
	algorithms *dto.DisciplineResponse
	calculus   *dto.DisciplineResponse
	databases  *dto.DisciplineResponse
}

func seedCurriculum(t *testing.T, f *fixture) curriculumWorld {
	t.Helper()
	w := curriculumWorld{course: seedCourse(t, f, "Computer Science")}
	w.first = seedSemester(t, f, w.course.ID, 1)
	w.second = seedSemester(t, f, w.course.ID, 2)
	w.algorithms = seedDiscipline(t, f, w.first.ID, "Algorithms", 80)
	w.calculus = seedDiscipline(t, f, w.first.ID, "Calculus", 60)
	w.databases = seedDiscipline(t, f, w.second.ID, "Databases", 70)
	for _, d := range []*dto.DisciplineResponse{w.algorithms, w.calculus, w.databases} {
		_, err := f.curriculum.Create(context.Background(), dto.CurriculumRequest{CourseID: w.course.ID, DisciplineID: d.ID})
		require.NoError(t, err)
	}
	return w
}

func TestCurriculumServiceCreate(t *testing.T) {
	f := newFixture()
	course := seedCourse(t, f, "CS")
	semester := seedSemester(t, f, course.ID, 3)
	discipline := seedDiscipline(t, f, semester.ID, "Compilers", 80)

	entry, err := f.curriculum.Create(context.Background(), dto.CurriculumRequest{CourseID: course.ID, DisciplineID: discipline.ID})
	require.NoError(t, err)
	assert.True(t, entry.Active)
	assert.Equal(t, "CS", entry.CourseName)
	assert.Equal(t, "Compilers", entry.DisciplineName)
	assert.Equal(t, 80, entry.DisciplineWorkload)
	assert.Equal(t, semester.ID, entry.SemesterID)
	assert.Equal(t, 3, entry.SemesterNumber)
}

func TestCurriculumServiceCreateFailures(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	w := seedCurriculum(t, f)

	_, err := f.curriculum.Create(ctx, dto.CurriculumRequest{CourseID: 404, DisciplineID: w.algorithms.ID})
	requireCode(t, err, appErrors.ErrReference)
	assert.Contains(t, err.Error(), "course 404 not found")

	_, err = f.curriculum.Create(ctx, dto.CurriculumRequest{CourseID: w.course.ID, DisciplineID: 404})
	requireCode(t, err, appErrors.ErrReference)

	_, err = f.curriculum.Create(ctx, dto.CurriculumRequest{CourseID: w.course.ID, DisciplineID: w.algorithms.ID})
	requireCode(t, err, appErrors.ErrConflict)
	assert.Len(t, f.store.curriculum, 3)

	_, err = f.curriculum.Create(ctx, dto.CurriculumRequest{})
	requireCode(t, err, appErrors.ErrValidation)
}

func TestCurriculumServiceUpdateAndDelete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	w := seedCurriculum(t, f)

	entries, err := f.curriculum.List(ctx, models.CurriculumFilter{DisciplineID: &w.calculus.ID})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	id := entries[0].ID

	updated, err := f.curriculum.Update(ctx, id, dto.CurriculumRequest{CourseID: 999, DisciplineID: 999, Active: ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, w.course.ID, updated.CourseID)
	assert.Equal(t, w.calculus.ID, updated.DisciplineID)

	require.NoError(t, f.curriculum.Delete(ctx, id))
	_, err = f.curriculum.Get(ctx, id)
	requireCode(t, err, appErrors.ErrNotFound)
	requireCode(t, f.curriculum.Delete(ctx, id), appErrors.ErrNotFound)
}

func TestCurriculumServiceListBySemester(t *testing.T) {
	f := newFixture()
	w := seedCurriculum(t, f)

	got, err := f.curriculum.List(context.Background(), models.CurriculumFilter{SemesterID: &w.second.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Databases", got[0].DisciplineName)
}

func TestCurriculumServiceListForStudent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	seedCurriculum(t, f)

	student, err := f.users.Create(ctx, aliceRequest())
	require.NoError(t, err)
	professor, err := f.users.Create(ctx, dto.CreateUserRequest{Name: "Prof", Email: "p@x.io", Password: "secret1", Role: models.RoleProfessor})
	require.NoError(t, err)

	got, err := f.curriculum.ListForStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = f.curriculum.ListForStudent(ctx, professor.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	got, err = f.curriculum.ListForStudent(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCurriculumServiceMatrix(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	w := seedCurriculum(t, f)
	seedSemester(t, f, w.course.ID, 3)

	matrix, err := f.curriculum.Matrix(ctx, w.course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", matrix.CourseName)
	assert.Equal(t, 210, matrix.TotalWorkload)
	require.Len(t, matrix.Semesters, 3)
	assert.Equal(t, 140, matrix.Semesters[0].Workload)
	assert.Equal(t, "Algorithms", matrix.Semesters[0].Disciplines[0].Name)
	assert.Empty(t, matrix.Semesters[2].Disciplines)

	key := "matrix:" + itoa(w.course.ID)
	assert.Contains(t, f.cacheRepo.data, key)

	cached, err := f.curriculum.Matrix(ctx, w.course.ID)
	require.NoError(t, err)
	assert.Equal(t, matrix, cached)

	_, err = f.curriculum.Create(ctx, dto.CurriculumRequest{CourseID: w.course.ID, DisciplineID: seedDiscipline(t, f, w.second.ID, "Networks", 40).ID})
	require.NoError(t, err)
	assert.NotContains(t, f.cacheRepo.data, key)

	_, err = f.curriculum.Matrix(ctx, 404)
	requireCode(t, err, appErrors.ErrNotFound)
}

func TestCurriculumServiceExportMatrix(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	w := seedCurriculum(t, f)

	file, err := f.curriculum.ExportMatrix(ctx, w.course.ID, "csv")
	require.NoError(t, err)
	assert.Equal(t, "curriculum-computer-science.csv", file.Filename)
	assert.True(t, strings.HasPrefix(file.ContentType, "text/csv"))
	content := string(file.Content)
	assert.Contains(t, content, "Semester,Discipline,Workload")
	assert.Contains(t, content, "1,Algorithms,80")
	assert.Contains(t, content, ",Total,210")

	file, err = f.curriculum.ExportMatrix(ctx, w.course.ID, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "curriculum-computer-science.pdf", file.Filename)
	assert.True(t, strings.HasPrefix(string(file.Content), "%PDF-"))

	_, err = f.curriculum.ExportMatrix(ctx, w.course.ID, "xlsx")
	requireCode(t, err, appErrors.ErrValidation)
	assert.Contains(t, err.Error(), "unsupported export format: xlsx")
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "computer-science", slug("Computer Science", 1))
	assert.Equal(t, "c-c", slug("C++ / C#", 1))
	assert.Equal(t, "7", slug("!!!", 7))
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
