package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/barbell-api/internal/config"
	"github.com/phrazzld/barbell-api/internal/domain/analytics"
	"github.com/phrazzld/barbell-api/internal/platform/postgres"
	"github.com/phrazzld/barbell-api/internal/service"
	"github.com/phrazzld/barbell-api/internal/service/auth"
	"github.com/phrazzld/barbell-api/internal/store"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier

	userService        service.UserService
	programService     service.ProgramService
	statsService       service.StatsService
	competitionService service.CompetitionService
}

// newApplication connects to the database and wires stores, auth, and
// services into a ready-to-serve application.
func newApplication(cfg *config.Config, log *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, bcrypt.DefaultCost)
	programStore := postgres.NewPostgresProgramStore(db)
	hierarchyStore := postgres.NewPostgresHierarchyStore(db)
	settingsStore := postgres.NewPostgresSettingsStore(db)
	competitionStore := postgres.NewPostgresCompetitionStore(db)

	programService, err := service.NewProgramService(programStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create program service: %w", err)
	}

	statsService, err := service.NewStatsService(
		programStore,
		hierarchyStore,
		settingsStore,
		analytics.NewDefaultService(),
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create stats service: %w", err)
	}

	competitionService, err := service.NewCompetitionService(competitionStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create competition service: %w", err)
	}

	return &application{
		config:             cfg,
		logger:             log,
		db:                 db,
		userStore:          userStore,
		jwtService:         jwtService,
		passwordVerifier:   auth.NewBcryptVerifier(),
		userService:        service.NewUserService(userStore, db, log),
		programService:     programService,
		statsService:       statsService,
		competitionService: competitionService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
