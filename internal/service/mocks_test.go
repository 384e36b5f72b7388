package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/academy-api/internal/models"
	appErrors "github.com/noah-isme/academy-api/pkg/errors"
)

// passThroughTx runs fn directly and counts invocations.
type passThroughTx struct {
	calls int
}

func (t *passThroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

// memStore is a tiny relational fake shared by the per-table mocks so joins can be derived like the SQL does.
type memStore struct {
	nextID      int64
	courses     map[int64]models.Course
	users       map[int64]models.User
	semesters   map[int64]models.Semester
	disciplines map[int64]models.Discipline
	curriculum  map[int64]models.Curriculum

	createErr error
}

func newMemStore() *memStore {
	return &memStore{
		courses:     map[int64]models.Course{},
		users:       map[int64]models.User{},
		semesters:   map[int64]models.Semester{},
		disciplines: map[int64]models.Discipline{},
		curriculum:  map[int64]models.Curriculum{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func sortedIDs[T any](rows map[int64]T) []int64 {
	ids := make([]int64, 0, len(rows))
	for id := range rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type mockCourseRepo struct{ *memStore }

func (m mockCourseRepo) List(_ context.Context, f models.CourseFilter) ([]models.Course, error) {
	out := []models.Course{}
	for _, id := range sortedIDs(m.courses) {
		c := m.courses[id]
		if f.Active != nil && c.Active != *f.Active {
			continue
		}
		if f.NameSearch != "" && !strings.Contains(c.Name, f.NameSearch) {
			continue
		}
		if f.DurationSemesters != nil && c.DurationSemesters != *f.DurationSemesters {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m mockCourseRepo) FindByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := m.courses[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &c, nil
}

func (m mockCourseRepo) FindByName(_ context.Context, name string) (*models.Course, error) {
	for _, c := range m.courses {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m mockCourseRepo) ExistsByName(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, c := range m.courses {
		if c.Name == name && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m mockCourseRepo) Count(_ context.Context, active *bool) (int64, error) {
	var n int64
	for _, c := range m.courses {
		if active == nil || c.Active == *active {
			n++
		}
	}
	return n, nil
}

func (m mockCourseRepo) Create(_ context.Context, c *models.Course) error {
	if m.createErr != nil {
		return m.createErr
	}
	c.ID = m.id()
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	m.courses[c.ID] = *c
	return nil
}

func (m mockCourseRepo) Update(_ context.Context, c *models.Course) error {
	if _, ok := m.courses[c.ID]; !ok {
		return sql.ErrNoRows
	}
	c.UpdatedAt = time.Now().UTC()
	m.courses[c.ID] = *c
	return nil
}

type mockUserRepo struct{ *memStore }

func (m mockUserRepo) List(_ context.Context, f models.UserFilter) ([]models.User, error) {
	out := []models.User{}
	for _, id := range sortedIDs(m.users) {
		u := m.users[id]
		if f.Role != nil && u.Role != *f.Role {
			continue
		}
		if f.Active != nil && u.Active != *f.Active {
			continue
		}
		if f.NameSearch != "" && !strings.Contains(u.Name, f.NameSearch) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (m mockUserRepo) FindByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

func (m mockUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m mockUserRepo) ExistsByEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, u := range m.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m mockUserRepo) Count(_ context.Context, active *bool) (int64, error) {
	var n int64
	for _, u := range m.users {
		if active == nil || u.Active == *active {
			n++
		}
	}
	return n, nil
}

func (m mockUserRepo) Create(_ context.Context, u *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	u.ID = m.id()
	m.users[u.ID] = *u
	return nil
}

func (m mockUserRepo) Update(_ context.Context, u *models.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return sql.ErrNoRows
	}
	m.users[u.ID] = *u
	return nil
}

type mockSemesterRepo struct{ *memStore }

func (m mockSemesterRepo) withCourse(s models.Semester) models.Semester {
	s.CourseName = m.courses[s.CourseID].Name
	return s
}

func (m mockSemesterRepo) List(_ context.Context, f models.SemesterFilter) ([]models.Semester, error) {
	out := []models.Semester{}
	for _, id := range sortedIDs(m.semesters) {
		s := m.semesters[id]
		if f.CourseID != nil && s.CourseID != *f.CourseID {
			continue
		}
		if f.Active != nil && s.Active != *f.Active {
			continue
		}
		out = append(out, m.withCourse(s))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (m mockSemesterRepo) FindByID(_ context.Context, id int64) (*models.Semester, error) {
	s, ok := m.semesters[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	s = m.withCourse(s)
	return &s, nil
}

func (m mockSemesterRepo) ExistsByCourseAndNumber(_ context.Context, courseID int64, number int, excludeID int64) (bool, error) {
	for _, s := range m.semesters {
		if s.CourseID == courseID && s.Number == number && s.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m mockSemesterRepo) Create(_ context.Context, s *models.Semester) error {
	s.ID = m.id()
	m.semesters[s.ID] = *s
	return nil
}

func (m mockSemesterRepo) Update(_ context.Context, s *models.Semester) error {
	if _, ok := m.semesters[s.ID]; !ok {
		return sql.ErrNoRows
	}
	m.semesters[s.ID] = *s
	return nil
}

func (m mockSemesterRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.semesters[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.semesters, id)
	for did, d := range m.disciplines {
		if d.SemesterID == id {
			_ = mockDisciplineRepo{m.memStore}.Delete(context.Background(), did)
		}
	}
	return nil
}

type mockDisciplineRepo struct{ *memStore }

func (m mockDisciplineRepo) withParents(d models.Discipline) models.Discipline {
	s := m.semesters[d.SemesterID]
	d.SemesterNumber = s.Number
	d.CourseID = s.CourseID
	d.CourseName = m.courses[s.CourseID].Name
	return d
}

func (m mockDisciplineRepo) List(_ context.Context, f models.DisciplineFilter) ([]models.Discipline, error) {
	out := []models.Discipline{}
	for _, id := range sortedIDs(m.disciplines) {
		d := m.withParents(m.disciplines[id])
		if f.SemesterID != nil && d.SemesterID != *f.SemesterID {
			continue
		}
		if f.CourseID != nil && d.CourseID != *f.CourseID {
			continue
		}
		if f.Active != nil && d.Active != *f.Active {
			continue
		}
		if f.NameSearch != "" && !strings.Contains(d.Name, f.NameSearch) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (m mockDisciplineRepo) FindByID(_ context.Context, id int64) (*models.Discipline, error) {
	d, ok := m.disciplines[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	d = m.withParents(d)
	return &d, nil
}

func (m mockDisciplineRepo) ExistsByName(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, d := range m.disciplines {
		if d.Name == name && d.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m mockDisciplineRepo) Create(_ context.Context, d *models.Discipline) error {
	d.ID = m.id()
	m.disciplines[d.ID] = *d
	return nil
}

func (m mockDisciplineRepo) Update(_ context.Context, d *models.Discipline) error {
	if _, ok := m.disciplines[d.ID]; !ok {
		return sql.ErrNoRows
	}
	m.disciplines[d.ID] = *d
	return nil
}

func (m mockDisciplineRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.disciplines[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.disciplines, id)
	for cid, c := range m.curriculum {
		if c.DisciplineID == id {
			delete(m.curriculum, cid)
		}
	}
	return nil
}

type mockCurriculumRepo struct{ *memStore }

func (m mockCurriculumRepo) project(c models.Curriculum) models.Curriculum {
	d := m.disciplines[c.DisciplineID]
	c.CourseName = m.courses[c.CourseID].Name
	c.DisciplineName = d.Name
	c.DisciplineWorkload = d.Workload
	c.SemesterID = d.SemesterID
	c.SemesterNumber = m.semesters[d.SemesterID].Number
	return c
}

func (m mockCurriculumRepo) List(_ context.Context, f models.CurriculumFilter) ([]models.Curriculum, error) {
	out := []models.Curriculum{}
	for _, id := range sortedIDs(m.curriculum) {
		c := m.project(m.curriculum[id])
		if f.CourseID != nil && c.CourseID != *f.CourseID {
			continue
		}
		if f.DisciplineID != nil && c.DisciplineID != *f.DisciplineID {
			continue
		}
		if f.SemesterID != nil && c.SemesterID != *f.SemesterID {
			continue
		}
		if f.Active != nil && c.Active != *f.Active {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m mockCurriculumRepo) FindByID(_ context.Context, id int64) (*models.Curriculum, error) {
	c, ok := m.curriculum[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	c = m.project(c)
	return &c, nil
}

func (m mockCurriculumRepo) ExistsByCourseAndDiscipline(_ context.Context, courseID, disciplineID, excludeID int64) (bool, error) {
	for _, c := range m.curriculum {
		if c.CourseID == courseID && c.DisciplineID == disciplineID && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m mockCurriculumRepo) Create(_ context.Context, c *models.Curriculum) error {
	c.ID = m.id()
	m.curriculum[c.ID] = *c
	return nil
}

func (m mockCurriculumRepo) Update(_ context.Context, c *models.Curriculum) error {
	if _, ok := m.curriculum[c.ID]; !ok {
		return sql.ErrNoRows
	}
	m.curriculum[c.ID] = *c
	return nil
}

func (m mockCurriculumRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.curriculum[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.curriculum, id)
	return nil
}

// mockCacheRepo stores JSON like the redis repository and records deleted patterns.
type mockCacheRepo struct {
	data     map[string][]byte
	patterns []string
	getErr   error
}

func newMockCacheRepo() *mockCacheRepo {
	return &mockCacheRepo{data: map[string][]byte{}}
}

func (m *mockCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(v, dest)
}

func (m *mockCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *mockCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	m.patterns = append(m.patterns, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
		}
	}
	return nil
}

// fixture wires every service onto one store, the way main does onto one database.
type fixture struct {
	store       *memStore
	tx          *passThroughTx
	cacheRepo   *mockCacheRepo
	metrics     *MetricsService
	courses     *CourseService
	users       *UserService
	semesters   *SemesterService
	disciplines *DisciplineService
	curriculum  *CurriculumService
}

func newFixture() *fixture {
	store := newMemStore()
	tx := &passThroughTx{}
	cacheRepo := newMockCacheRepo()
	metrics := NewMetricsService()
	cache := NewCacheService(cacheRepo, metrics, time.Minute, nil, true)
	validate := NewValidator()

	users := NewUserService(mockUserRepo{store}, tx, cache, validate, nil)
	users.bcryptCost = 4

	return &fixture{
		store:       store,
		tx:          tx,
		cacheRepo:   cacheRepo,
		metrics:     metrics,
		courses:     NewCourseService(mockCourseRepo{store}, tx, cache, validate, nil),
		users:       users,
		semesters:   NewSemesterService(mockSemesterRepo{store}, mockCourseRepo{store}, tx, cache, validate, nil),
		disciplines: NewDisciplineService(mockDisciplineRepo{store}, mockSemesterRepo{store}, tx, cache, validate, nil),
		curriculum: NewCurriculumService(mockCurriculumRepo{store}, CurriculumDeps{
			Courses:     mockCourseRepo{store},
			Disciplines: mockDisciplineRepo{store},
			Semesters:   mockSemesterRepo{store},
			Users:       mockUserRepo{store},
		}, tx, cache, validate, nil),
	}
}

func requireCode(t require.TestingT, err error, want *appErrors.Error) {
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr), "expected *errors.Error, got %T", err)
	require.Equal(t, want.Code, appErr.Code, appErr.Message)
}

func pqUniqueViolation(constraint string) error {
	return &pq.Error{Code: "23505", Constraint: constraint}
}
