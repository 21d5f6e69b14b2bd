package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/academia/course-portal/internal/app/controllers"
	"github.com/academia/course-portal/internal/app/migrations"
	"github.com/academia/course-portal/internal/app/repositories"
	"github.com/academia/course-portal/internal/app/routes"
	"github.com/academia/course-portal/internal/app/services"
	"github.com/academia/course-portal/internal/config"
	"github.com/academia/course-portal/internal/db"
	"github.com/academia/course-portal/internal/middleware"
	"github.com/academia/course-portal/internal/pkg/auth"
	"github.com/academia/course-portal/internal/pkg/logger"
	"github.com/academia/course-portal/internal/seed"
)

// Dependencies holds everything the router needs.
type Dependencies struct {
	AuthController       *controllers.AuthController
	StudentController    *controllers.StudentController
	CourseController     *controllers.CourseController
	EnrollmentController *controllers.EnrollmentController
	AuthMiddleware       *middleware.AuthMiddleware
}

// LoadConfigAndSetupLogger loads application config and configures logging
// from it.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	logger.Info().
		Str("port", cfg.Server.Port).
		Str("mode", cfg.Server.Mode).
		Msg("Configuration loaded")

	return cfg, nil
}

// SetupDatabase connects to PostgreSQL, applies pending migrations and seeds
// the course catalog.
func SetupDatabase(cfg *config.Config, migrationsDir string) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := seed.SeedCourses(ctx, database.Pool); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	return database, nil
}

// BuildDependencies wires repositories, services, controllers and middleware.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) *Dependencies {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	repos := repositories.NewRepositories(database)

	authService := services.NewAuthService(repos.StudentRepository, jwtService, log.Logger)
	studentService := services.NewStudentService(repos.StudentRepository)
	courseService := services.NewCourseService(repos.CourseRepository)
	enrollmentService := services.NewEnrollmentService(
		repos.EnrollmentRepository,
		repos.StudentRepository,
		repos.CourseRepository,
	)

	return &Dependencies{
		AuthController:       controllers.NewAuthController(authService, log.Logger),
		StudentController:    controllers.NewStudentController(studentService, enrollmentService, courseService),
		CourseController:     controllers.NewCourseController(courseService, enrollmentService),
		EnrollmentController: controllers.NewEnrollmentController(enrollmentService, courseService),
		AuthMiddleware:       middleware.NewAuthMiddleware(jwtService),
	}
}

// SetupRouter builds the gin engine with all routes registered.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	routes.SetupRouter(
		router,
		deps.AuthController,
		deps.StudentController,
		deps.CourseController,
		deps.EnrollmentController,
		deps.AuthMiddleware,
	)

	return router
}
