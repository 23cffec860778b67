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

	appControllers "github.com/arnab/campusgate/internal/app/controllers"
	appRepos "github.com/arnab/campusgate/internal/app/repositories"
	appRoutes "github.com/arnab/campusgate/internal/app/routes"
	appServices "github.com/arnab/campusgate/internal/app/services"
	"github.com/arnab/campusgate/internal/config"
	"github.com/arnab/campusgate/internal/db"
	appMiddleware "github.com/arnab/campusgate/internal/middleware"
	pkgAuth "github.com/arnab/campusgate/internal/pkg/auth"
	"github.com/arnab/campusgate/internal/pkg/filestorage"
	"github.com/arnab/campusgate/internal/pkg/logger"
	"github.com/arnab/campusgate/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           *appServices.AuthService
	ApplicationService    *appServices.ApplicationService
	CollegeService        *appServices.CollegeService
	NoticeService         *appServices.NoticeService
	ContactService        *appServices.ContactService
	AuthController        *appControllers.AuthController
	ApplicationController *appControllers.ApplicationController
	CollegeController     *appControllers.CollegeController
	NoticeController      *appControllers.NoticeController
	ContactController     *appControllers.ContactController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	FileStorage           *filestorage.LocalStorage
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to MongoDB, ensures indexes and seeds default
// data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.MongoDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := database.EnsureIndexes(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ensure database indexes")
		_ = database.Close(context.Background())
		return nil, err
	}

	if err := seed.CreateDefaultData(ctx, database.Database, cfg, lgr); err != nil {
		// Seed failure is not fatal: the API is still usable
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.MongoDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Database)

	// File storage base URL must match the static file serving path
	baseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	tokenExp, err := time.ParseDuration(cfg.JWT.TokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT token expiration: %w", err)
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    tokenExp,
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.ApplicationService = appServices.NewApplicationService(
		deps.Repos.ApplicationRepository,
		deps.Repos.CollegeRepository,
		deps.Repos.UserRepository,
		deps.FileStorage,
	)
	deps.CollegeService = appServices.NewCollegeService(deps.Repos.CollegeRepository)
	deps.NoticeService = appServices.NewNoticeService(deps.Repos.NoticeRepository, deps.Repos.UserRepository)
	deps.ContactService = appServices.NewContactService(deps.Repos.ContactRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService)
	deps.CollegeController = appControllers.NewCollegeController(deps.CollegeService)
	deps.NoticeController = appControllers.NewNoticeController(deps.NoticeService)
	deps.ContactController = appControllers.NewContactController(deps.ContactService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ApplicationController,
		deps.CollegeController,
		deps.NoticeController,
		deps.ContactController,
		deps.AuthMiddleware,
	)

	return router
}
