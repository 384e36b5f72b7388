package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/internal/service"
	appErrors "github.com/noah-isme/academy-api/pkg/errors"
)

func serve(register func(*gin.RouterGroup), method, target, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r.Group("/api/x"))
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, "/api/x"+target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) appErrors.Error {
	t.Helper()
	var body appErrors.Error
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

type courseServiceMock struct {
	lastFilter models.CourseFilter
	lastID     int64
	lastCount  *bool
	createErr  error
	getErr     error
	deleted    []int64
}

func (m *courseServiceMock) List(_ context.Context, filter models.CourseFilter) ([]dto.CourseResponse, error) {
	m.lastFilter = filter
	return []dto.CourseResponse{{ID: 1, Name: "CS", Active: true}}, nil
}

func (m *courseServiceMock) Get(_ context.Context, id int64) (*dto.CourseResponse, error) {
	m.lastID = id
	if m.getErr != nil {
		return nil, m.getErr
	}
	return &dto.CourseResponse{ID: id, Name: "CS"}, nil
}

func (m *courseServiceMock) GetByName(_ context.Context, name string) (*dto.CourseResponse, error) {
	return &dto.CourseResponse{ID: 1, Name: name}, nil
}

func (m *courseServiceMock) Count(_ context.Context, activeOnly bool) (int64, error) {
	m.lastCount = &activeOnly
	return 3, nil
}

func (m *courseServiceMock) Create(_ context.Context, req dto.CourseRequest) (*dto.CourseResponse, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &dto.CourseResponse{ID: 7, Name: req.Name, Active: true}, nil
}

func (m *courseServiceMock) Update(_ context.Context, id int64, req dto.CourseRequest) (*dto.CourseResponse, error) {
	return &dto.CourseResponse{ID: id, Name: req.Name}, nil
}

func (m *courseServiceMock) Delete(_ context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *courseServiceMock) Activate(_ context.Context, id int64) (*dto.CourseResponse, error) {
	return &dto.CourseResponse{ID: id, Active: true}, nil
}

func (m *courseServiceMock) Deactivate(_ context.Context, id int64) (*dto.CourseResponse, error) {
	return &dto.CourseResponse{ID: id}, nil
}

func TestCourseHandlerRoutes(t *testing.T) {
	svc := &courseServiceMock{}
	h := NewCourseHandler(svc)

	w := serve(h.Register, http.MethodGet, "/active/search?name=Sci", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Sci", svc.lastFilter.NameSearch)
	require.NotNil(t, svc.lastFilter.Active)
	assert.True(t, *svc.lastFilter.Active)

	w = serve(h.Register, http.MethodGet, "/duration/8", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastFilter.DurationSemesters)
	assert.Equal(t, 8, *svc.lastFilter.DurationSemesters)
	assert.Nil(t, svc.lastFilter.Active)

	w = serve(h.Register, http.MethodGet, "/count/active", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":3}`, w.Body.String())
	assert.True(t, *svc.lastCount)

	w = serve(h.Register, http.MethodGet, "/42", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 42, svc.lastID)

	w = serve(h.Register, http.MethodPut, "/42/deactivate", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active":false`)

	w = serve(h.Register, http.MethodDelete, "/42", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []int64{42}, svc.deleted)
}

func TestCourseHandlerRejectsBadInput(t *testing.T) {
	h := NewCourseHandler(&courseServiceMock{})

	w := serve(h.Register, http.MethodGet, "/abc", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid id: abc", decodeError(t, w).Message)

	w = serve(h.Register, http.MethodGet, "/duration/zero", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(h.Register, http.MethodPost, "", `{"name":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeError(t, w).Code)
}

func TestCourseHandlerMapsServiceErrors(t *testing.T) {
	svc := &courseServiceMock{
		createErr: appErrors.Clone(appErrors.ErrConflict, "course name already exists"),
		getErr:    appErrors.Clone(appErrors.ErrNotFound, "course not found"),
	}
	h := NewCourseHandler(svc)

	w := serve(h.Register, http.MethodPost, "", `{"name":"CS","totalHours":3200,"durationSemesters":8}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "course name already exists", decodeError(t, w).Message)

	w = serve(h.Register, http.MethodGet, "/9", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, w).Code)

	svc.getErr = errors.New("pq: connection reset")
	w = serve(h.Register, http.MethodGet, "/9", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

type userServiceMock struct {
	filters []models.UserFilter
}

func (m *userServiceMock) List(_ context.Context, filter models.UserFilter) ([]dto.UserResponse, error) {
	m.filters = append(m.filters, filter)
	return []dto.UserResponse{}, nil
}

func (m *userServiceMock) Get(_ context.Context, id int64) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: id}, nil
}

func (m *userServiceMock) GetByEmail(_ context.Context, email string) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: 1, Email: email}, nil
}

func (m *userServiceMock) Count(context.Context, bool) (int64, error) { return 0, nil }

func (m *userServiceMock) Create(_ context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: 1, Name: req.Name, Email: req.Email, Role: req.Role, Active: true}, nil
}

func (m *userServiceMock) Update(_ context.Context, id int64, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: id, Name: req.Name}, nil
}

func (m *userServiceMock) Delete(context.Context, int64) error { return nil }

func (m *userServiceMock) Activate(_ context.Context, id int64) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: id, Active: true}, nil
}

func (m *userServiceMock) Deactivate(_ context.Context, id int64) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: id}, nil
}

func TestUserHandlerRoles(t *testing.T) {
	svc := &userServiceMock{}
	h := NewUserHandler(svc)

	w := serve(h.Register, http.MethodGet, "/active/role/student", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
	require.Len(t, svc.filters, 1)
	assert.Equal(t, models.RoleStudent, *svc.filters[0].Role)
	assert.True(t, *svc.filters[0].Active)

	w = serve(h.Register, http.MethodGet, "/role/janitor", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid role: janitor", decodeError(t, w).Message)
}

func TestUserHandlerCreateOmitsPassword(t *testing.T) {
	h := NewUserHandler(&userServiceMock{})

	w := serve(h.Register, http.MethodPost, "", `{"name":"Alice","email":"a@x.io","password":"secret1","role":"STUDENT"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "secret1")

	w = serve(h.Register, http.MethodGet, "/email/a@x.io", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@x.io")
}

type curriculumServiceMock struct {
	format    string
	student   int64
	filter    models.CurriculumFilter
	exportErr error
}

func (m *curriculumServiceMock) List(_ context.Context, filter models.CurriculumFilter) ([]dto.CurriculumResponse, error) {
	m.filter = filter
	return []dto.CurriculumResponse{}, nil
}

func (m *curriculumServiceMock) Get(_ context.Context, id int64) (*dto.CurriculumResponse, error) {
	return &dto.CurriculumResponse{ID: id}, nil
}

func (m *curriculumServiceMock) ListForStudent(_ context.Context, id int64) ([]dto.CurriculumResponse, error) {
	m.student = id
	return []dto.CurriculumResponse{}, nil
}

func (m *curriculumServiceMock) Create(_ context.Context, req dto.CurriculumRequest) (*dto.CurriculumResponse, error) {
	return &dto.CurriculumResponse{ID: 1, CourseID: req.CourseID, DisciplineID: req.DisciplineID}, nil
}

func (m *curriculumServiceMock) Update(_ context.Context, id int64, _ dto.CurriculumRequest) (*dto.CurriculumResponse, error) {
	return &dto.CurriculumResponse{ID: id}, nil
}

func (m *curriculumServiceMock) Delete(context.Context, int64) error { return nil }

func (m *curriculumServiceMock) Matrix(_ context.Context, courseID int64) (*dto.CurriculumMatrix, error) {
	return &dto.CurriculumMatrix{CourseID: courseID, CourseName: "CS", Semesters: []dto.MatrixSemester{}}, nil
}

func (m *curriculumServiceMock) ExportMatrix(_ context.Context, _ int64, format string) (*service.ExportFile, error) {
	m.format = format
	if m.exportErr != nil {
		return nil, m.exportErr
	}
	return &service.ExportFile{Filename: "curriculum-cs.csv", ContentType: "text/csv; charset=utf-8", Content: []byte("Semester,Discipline,Workload\n")}, nil
}

func TestCurriculumHandlerRoutes(t *testing.T) {
	svc := &curriculumServiceMock{}
	h := NewCurriculumHandler(svc)

	w := serve(h.Register, http.MethodGet, "/student/5", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 5, svc.student)

	w = serve(h.Register, http.MethodGet, "/semester/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, *svc.filter.SemesterID)

	w = serve(h.Register, http.MethodGet, "/matrix/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"courseId":2,"courseName":"CS","totalWorkload":0,"semesters":[]}`, w.Body.String())
}

func TestCurriculumHandlerExport(t *testing.T) {
	svc := &curriculumServiceMock{}
	h := NewCurriculumHandler(svc)

	w := serve(h.Register, http.MethodGet, "/matrix/2/export?format=csv", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "csv", svc.format)
	assert.Equal(t, `attachment; filename="curriculum-cs.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "Semester,Discipline,Workload\n", w.Body.String())

	svc.exportErr = appErrors.Clone(appErrors.ErrValidation, "unsupported export format: xlsx")
	w = serve(h.Register, http.MethodGet, "/matrix/2/export?format=xlsx", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type authServiceMock struct {
	err error
}

func (m authServiceMock) Login(_ context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &dto.LoginResponse{AccessToken: "token", TokenType: "Bearer", ExpiresIn: 3600, User: dto.UserResponse{Email: req.Email}}, nil
}

func TestAuthHandlerLogin(t *testing.T) {
	register := func(h *AuthHandler) func(*gin.RouterGroup) {
		return func(rg *gin.RouterGroup) { rg.POST("/login", h.Login) }
	}

	w := serve(register(NewAuthHandler(authServiceMock{})), http.MethodPost, "/login", `{"email":"a@x.io","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"accessToken":"token"`)

	w = serve(register(NewAuthHandler(authServiceMock{err: appErrors.ErrInvalidCredentials})), http.MethodPost, "/login", `{"email":"a@x.io","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	healthy := NewHealthHandler(pingerFunc(func(context.Context) error { return nil }), nil)
	down := NewHealthHandler(pingerFunc(func(context.Context) error { return errors.New("dial tcp: refused") }), nil)
	register := func(h *HealthHandler) func(*gin.RouterGroup) {
		return func(rg *gin.RouterGroup) {
			rg.GET("/health", h.Health)
			rg.GET("/ready", h.Ready)
			rg.GET("/metrics", h.Prometheus)
		}
	}

	assert.Equal(t, http.StatusOK, serve(register(healthy), http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, serve(register(healthy), http.MethodGet, "/ready", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(register(down), http.MethodGet, "/ready", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(register(healthy), http.MethodGet, "/metrics", "").Code)
}
