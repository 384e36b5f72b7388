package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/academy-api/internal/handler"
	"github.com/noah-isme/academy-api/internal/middleware"
	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/pkg/config"
	"github.com/noah-isme/academy-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/academy-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/academy-api/pkg/middleware/requestid"
)

// Handlers groups the HTTP handlers mounted by Setup. Auth is only used when authentication is enabled.
type Handlers struct {
	Courses     *handler.CourseHandler
	Users       *handler.UserHandler
	Semesters   *handler.SemesterHandler
	Disciplines *handler.DisciplineHandler
	Curricula   *handler.CurriculumHandler
	Auth        *handler.AuthHandler
	Health      *handler.HealthHandler
}

// Deps carries the cross-cutting collaborators of the router.
type Deps struct {
	Logger  *zap.Logger
	Metrics middleware.RequestObserver
	Tokens  middleware.TokenValidator
}

// Setup builds the gin engine with the global middleware chain and every route.
func Setup(cfg *config.Config, h Handlers, deps Deps) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(log))
	r.Use(corsmiddleware.New(cfg.CORS))
	if cfg.Metrics.Enabled && deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	r.GET("/health", h.Health.Health)
	r.GET("/ready", h.Health.Ready)
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, h.Health.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	authEnabled := cfg.Auth.Enabled && deps.Tokens != nil
	if authEnabled && h.Auth != nil {
		api.POST("/auth/login", h.Auth.Login)
	}

	secured := api.Group("")
	if authEnabled {
		secured.Use(middleware.JWT(deps.Tokens))
	}

	users := secured.Group("/users")
	courses := secured.Group("/courses")
	semesters := secured.Group("/semesters")
	disciplines := secured.Group("/disciplines")
	curricula := secured.Group("/curricula")
	if authEnabled {
		users.Use(middleware.WritesRequire(models.RoleAdmin))
		for _, g := range []*gin.RouterGroup{courses, semesters, disciplines, curricula} {
			g.Use(middleware.WritesRequire(models.RoleAdmin, models.RoleCoordinator))
		}
	}

	h.Users.Register(users)
	h.Courses.Register(courses)
	h.Semesters.Register(semesters)
	h.Disciplines.Register(disciplines)
	h.Curricula.Register(curricula)

	return r
}
