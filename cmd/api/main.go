package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/academy-api/api/swagger"
	"github.com/noah-isme/academy-api/internal/handler"
	"github.com/noah-isme/academy-api/internal/repository"
	"github.com/noah-isme/academy-api/internal/router"
	"github.com/noah-isme/academy-api/internal/service"
	"github.com/noah-isme/academy-api/pkg/cache"
	"github.com/noah-isme/academy-api/pkg/config"
	"github.com/noah-isme/academy-api/pkg/database"
	"github.com/noah-isme/academy-api/pkg/logger"
)

// @title Academy API
// @version 1.0.0
// @description Academic records: users, courses, semesters, disciplines and curricula
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(cfg, logr); err != nil {
		logr.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logr *zap.Logger) error {
	ctx := context.Background()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(db.DB, logr); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	metrics := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		rdb, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, caching disabled", zap.String("addr", cache.Addr(cfg.Redis)), zap.Error(err))
		} else {
			defer rdb.Close()
			cacheRepo = repository.NewCacheRepository(rdb, "academy:")
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, cacheRepo != nil)

	tx := database.NewTransactor(db)
	validate := service.NewValidator()

	courseRepo := repository.NewCourseRepository(db)
	userRepo := repository.NewUserRepository(db)
	semesterRepo := repository.NewSemesterRepository(db)
	disciplineRepo := repository.NewDisciplineRepository(db)
	curriculumRepo := repository.NewCurriculumRepository(db)

	svcLog := logr.Named("service")
	courseSvc := service.NewCourseService(courseRepo, tx, cacheSvc, validate, svcLog)
	userSvc := service.NewUserService(userRepo, tx, cacheSvc, validate, svcLog)
	semesterSvc := service.NewSemesterService(semesterRepo, courseRepo, tx, cacheSvc, validate, svcLog)
	disciplineSvc := service.NewDisciplineService(disciplineRepo, semesterRepo, tx, cacheSvc, validate, svcLog)
	curriculumSvc := service.NewCurriculumService(curriculumRepo, service.CurriculumDeps{
		Courses:     courseRepo,
		Disciplines: disciplineRepo,
		Semesters:   semesterRepo,
		Users:       userRepo,
	}, tx, cacheSvc, validate, svcLog)
	authSvc := newAuthService(cfg, userRepo, validate, svcLog)

	handlers := router.Handlers{
		Courses:     handler.NewCourseHandler(courseSvc),
		Users:       handler.NewUserHandler(userSvc),
		Semesters:   handler.NewSemesterHandler(semesterSvc),
		Disciplines: handler.NewDisciplineHandler(disciplineSvc),
		Curricula:   handler.NewCurriculumHandler(curriculumSvc),
		Auth:        handler.NewAuthHandler(authSvc),
		Health:      handler.NewHealthHandler(db, metrics.Handler()),
	}
	deps := router.Deps{Logger: logr, Metrics: metrics}
	if cfg.Auth.Enabled {
		deps.Tokens = authSvc
	}
	engine := router.Setup(cfg, handlers, deps)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env),
			zap.Bool("auth", cfg.Auth.Enabled), zap.Bool("cache", cacheSvc.Enabled()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case sig := <-quit:
		logr.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logr.Info("server stopped")
	return nil
}

func newAuthService(cfg *config.Config, users *repository.UserRepository, validate *validator.Validate, logr *zap.Logger) *service.AuthService {
	return service.NewAuthService(users, validate, logr, service.AuthConfig{
		Secret: cfg.Auth.Secret,
		Expiry: cfg.Auth.Expiration,
		Issuer: cfg.Auth.Issuer,
	})
}
