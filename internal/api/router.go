package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ajmcleod/hangduel/internal/api/handler"
	"github.com/ajmcleod/hangduel/internal/api/middleware"
	"github.com/ajmcleod/hangduel/internal/services/engine"
	"github.com/ajmcleod/hangduel/internal/services/player"
	"github.com/ajmcleod/hangduel/internal/services/registry"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	PlayerService      *player.Service
	EngineController   *engine.Controller
	RegistryController *registry.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)
	soloHandler := handler.NewSoloHandler(cfg.EngineController)
	duelHandler := handler.NewDuelHandler(cfg.EngineController, cfg.PlayerService)
	roomHandler := handler.NewRoomHandler(cfg.RegistryController)
	summaryHandler := handler.NewSummaryHandler(cfg.RegistryController)

	// Create middleware
	identifyMiddleware := middleware.Identify(cfg.PlayerService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes (creating a guest needs no identity yet)
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)

	playerIdentified := api.PathPrefix("/players").Subrouter()
	playerIdentified.Use(identifyMiddleware)
	playerIdentified.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)

	// Solo game routes
	solo := api.PathPrefix("/solo").Subrouter()
	solo.Use(identifyMiddleware)
	solo.HandleFunc("", soloHandler.Start).Methods(http.MethodPost)
	solo.HandleFunc("/guess", soloHandler.Guess).Methods(http.MethodPost)

	// Human-vs-computer duel routes
	duels := api.PathPrefix("/duels").Subrouter()
	duels.Use(identifyMiddleware)
	duels.HandleFunc("", duelHandler.Start).Methods(http.MethodPost)
	duels.HandleFunc("/guess", duelHandler.Guess).Methods(http.MethodPost)
	duels.HandleFunc("/solve", duelHandler.Solve).Methods(http.MethodPost)

	// Human-vs-human room routes
	rooms := api.PathPrefix("/rooms").Subrouter()
	rooms.Use(identifyMiddleware)
	rooms.HandleFunc("/{id}/join", roomHandler.Join).Methods(http.MethodPost)
	rooms.HandleFunc("/{id}", roomHandler.Get).Methods(http.MethodGet)
	rooms.HandleFunc("/{id}/word", roomHandler.SubmitWord).Methods(http.MethodPost)
	rooms.HandleFunc("/{id}/guess", roomHandler.Guess).Methods(http.MethodPost)
	rooms.HandleFunc("/{id}/solve", roomHandler.Solve).Methods(http.MethodPost)

	// Completed match history (no identity required)
	api.HandleFunc("/matches/recent", summaryHandler.Recent).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
