package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/arnab/campusgate/internal/app/models"
	"github.com/arnab/campusgate/internal/app/repositories"
	"github.com/arnab/campusgate/internal/config"
	"github.com/arnab/campusgate/internal/pkg/auth"
)

// CreateDefaultData seeds the default admin account and a starter
// college catalog. Safe to run on every boot: existing data is left
// alone.
func CreateDefaultData(ctx context.Context, database *mongo.Database, cfg *config.Config, lgr zerolog.Logger) error {
	repos := repositories.NewRepositories(database)

	var finalErr error

	if err := seedAdmin(ctx, repos.UserRepository, cfg, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedColleges(ctx, repos.CollegeRepository, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedAdmin(ctx context.Context, userRepo *repositories.UserRepository, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		lgr.Info().Msg("Admin seed credentials not configured, skipping admin seed")
		return nil
	}

	exists, err := userRepo.ExistsByEmail(ctx, cfg.Seed.AdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for seeded admin")
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin seed password")
		return err
	}

	admin := &models.User{
		Name:     "Administrator",
		Email:    cfg.Seed.AdminEmail,
		Password: hash,
		Role:     models.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		// A concurrent boot may have created it first
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating seeded admin")
		return err
	}

	lgr.Info().Str("email", cfg.Seed.AdminEmail).Msg("Seeded default admin account")
	return nil
}

func seedColleges(ctx context.Context, collegeRepo *repositories.CollegeRepository, lgr zerolog.Logger) error {
	existing, err := collegeRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking existing colleges")
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	starter := []*models.College{
		{
			Name: "Institute of Engineering and Technology",
			Branches: []models.Branch{
				{Name: "Computer Science and Engineering"},
				{Name: "Electronics and Communication"},
				{Name: "Mechanical Engineering"},
			},
		},
		{
			Name: "City College of Science",
			Branches: []models.Branch{
				{Name: "Physics"},
				{Name: "Chemistry"},
				{Name: "Mathematics"},
			},
		},
	}

	var finalErr error
	for _, college := range starter {
		if err := collegeRepo.Create(ctx, college); err != nil {
			lgr.Error().Err(err).Str("college", college.Name).Msg("Error seeding college")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Int("count", len(starter)).Msg("Seeded starter college catalog")
	}
	return finalErr
}
