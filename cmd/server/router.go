package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/barbell-api/internal/api"
	apiMiddleware "github.com/phrazzld/barbell-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordVerifier, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.logger)
	programHandler := api.NewProgramHandler(app.programService, app.logger)
	statsHandler := api.NewStatsHandler(app.statsService, app.logger)
	competitionHandler := api.NewCompetitionHandler(app.competitionService, app.logger)
	rpeHandler := api.NewRPEHandler(app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Profile
			r.Get("/me", userHandler.GetProfile)
			r.Put("/me", userHandler.UpdateProfile)
			r.Delete("/me", userHandler.DeleteAccount)

			// Programs and their nested hierarchy
			r.Post("/programs", programHandler.CreateProgram)
			r.Get("/programs", programHandler.ListPrograms)
			r.Get("/programs/{programID}", programHandler.GetProgram)
			r.Put("/programs/{programID}", programHandler.RenameProgram)
			r.Delete("/programs/{programID}", programHandler.DeleteProgram)

			r.Post("/programs/{programID}/blocks", programHandler.CreateBlock)
			r.Put("/blocks/{blockID}", programHandler.UpdateBlock)
			r.Delete("/blocks/{blockID}", programHandler.DeleteBlock)

			r.Post("/blocks/{blockID}/weeks", programHandler.CreateWeek)
			r.Delete("/weeks/{weekID}", programHandler.DeleteWeek)

			r.Post("/weeks/{weekID}/days", programHandler.CreateDay)
			r.Put("/days/{dayID}", programHandler.UpdateDay)
			r.Delete("/days/{dayID}", programHandler.DeleteDay)

			r.Post("/days/{dayID}/columns", programHandler.CreateColumn)
			r.Put("/columns/{columnID}", programHandler.UpdateColumn)
			r.Delete("/columns/{columnID}", programHandler.DeleteColumn)

			r.Post("/days/{dayID}/rows", programHandler.CreateRow)
			r.Put("/rows/{rowID}", programHandler.UpdateRow)
			r.Delete("/rows/{rowID}", programHandler.DeleteRow)

			// Stats settings and analytics
			r.Get("/programs/{programID}/settings", statsHandler.GetSettings)
			r.Put("/programs/{programID}/settings", statsHandler.UpdateSettings)
			r.Get("/programs/{programID}/stats", statsHandler.GetStats)

			// Competition log
			r.Post("/competitions", competitionHandler.CreateCompetition)
			r.Get("/competitions", competitionHandler.ListCompetitions)
			r.Get("/competitions/progress", competitionHandler.GetProgress)
			r.Get("/competitions/{competitionID}", competitionHandler.GetCompetition)
			r.Put("/competitions/{competitionID}", competitionHandler.UpdateCompetition)
			r.Delete("/competitions/{competitionID}", competitionHandler.DeleteCompetition)

			// RPE chart calculator
			r.Post("/tools/rpe-chart", rpeHandler.Chart)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
