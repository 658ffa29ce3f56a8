package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/academy/internal/app/controllers"
	appMigrations "github.com/yigit/academy/internal/app/migrations"
	appRepos "github.com/yigit/academy/internal/app/repositories"
	"github.com/yigit/academy/internal/app/repositories/memory"
	appRoutes "github.com/yigit/academy/internal/app/routes"
	appServices "github.com/yigit/academy/internal/app/services"
	"github.com/yigit/academy/internal/config"
	"github.com/yigit/academy/internal/db"
	appMiddleware "github.com/yigit/academy/internal/middleware"
	"github.com/yigit/academy/internal/pkg/logger"
	"github.com/yigit/academy/internal/seed"
	"github.com/yigit/academy/web"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                *appRepos.Repositories
	Services             *appServices.Services
	CourseController     *appControllers.CourseController
	StudentController    *appControllers.StudentController
	TeacherController    *appControllers.TeacherController
	LessonController     *appControllers.LessonController
	FeedbackController   *appControllers.FeedbackController
	EnrollmentController *appControllers.EnrollmentController
	HealthCheck          appRoutes.HealthCheck
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the configured store and prepares it for use. The
// returned MongoDB is nil for the memory driver.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, *db.MongoDB, error) {
	if cfg.Database.Driver == config.DriverMemory {
		lgr.Warn().Msg("Using in-memory store; data is lost on restart")
		repos := memory.NewRepositories()
		seedIfEnabled(cfg, repos, lgr)
		return repos, nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Ensuring database indexes...")
	migrator := appMigrations.NewMigrator(database.Database, logger.WithComponent("migrations"))
	if err := migrator.EnsureIndexes(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database index setup error")
		_ = database.Close(ctx)
		return nil, nil, fmt.Errorf("database index setup failed: %w", err)
	}

	repos := appRepos.NewRepositories(database.Database)
	seedIfEnabled(cfg, repos, lgr)
	return repos, database, nil
}

func seedIfEnabled(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) {
	if !cfg.Seed.Enabled {
		return
	}
	if err := seed.CreateDemoData(context.Background(), repos, logger.WithComponent("seed")); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
	}
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(repos *appRepos.Repositories, database *db.MongoDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Repos: repos, Logger: lgr}

	deps.Services = appServices.NewServices(repos, lgr)

	deps.CourseController = appControllers.NewCourseController(deps.Services.CourseService)
	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService)
	deps.TeacherController = appControllers.NewTeacherController(deps.Services.TeacherService)
	deps.LessonController = appControllers.NewLessonController(deps.Services.LessonService)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.Services.FeedbackService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.Services.EnrollmentService)

	if database != nil {
		deps.HealthCheck = func(ctx context.Context) error {
			return database.Client.Ping(ctx, nil)
		}
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.StudentController,
		deps.TeacherController,
		deps.LessonController,
		deps.FeedbackController,
		deps.EnrollmentController,
		deps.HealthCheck,
	)

	if err := web.Register(router); err != nil {
		return nil, fmt.Errorf("failed to mount web client: %w", err)
	}

	return router, nil
}
