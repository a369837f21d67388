package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/wingfantasy/wingfantasy/internal/config"
	"github.com/wingfantasy/wingfantasy/internal/domain/squad"
	"github.com/wingfantasy/wingfantasy/internal/infrastructure/repository/memory"
	"github.com/wingfantasy/wingfantasy/internal/infrastructure/store"
	"github.com/wingfantasy/wingfantasy/internal/interfaces/httpapi"
	idgen "github.com/wingfantasy/wingfantasy/internal/platform/id"
	"github.com/wingfantasy/wingfantasy/internal/platform/logging"
	"github.com/wingfantasy/wingfantasy/internal/usecase"
)

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	catalog, err := memory.SeedCatalog()
	if err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	events := memory.NewEventRepository(memory.SeedEvents(time.Now()))

	fileStore, err := store.NewFileStore(cfg.StateDir)
	if err != nil {
		return nil, fmt.Errorf("open state dir: %w", err)
	}
	snapshots := store.NewSnapshots(fileStore)

	var ids idgen.Generator = idgen.NewRandomGenerator()
	if cfg.SeedOverrideSet {
		ids = fixedSeedGenerator{inner: ids, seed: cfg.SeedOverride}
	}

	sessions := usecase.NewSessionService(events, snapshots, ids, logger)
	state, user, boards, err := sessions.Bootstrap(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap session: %w", err)
	}
	logger.InfoContext(ctx, "session ready",
		"user_id", user.UserID,
		"seed", state.Seed,
		"week_id", state.Slate.WeekID,
	)

	handler := httpapi.NewHandler(httpapi.HandlerDeps{
		State:      state,
		User:       user,
		Boards:     boards,
		Events:     events,
		Sessions:   sessions,
		Picks:      usecase.NewPicksService(events, catalog, sessions, logger),
		Squads:     usecase.NewSquadService(catalog, squad.DefaultRules(), sessions, logger),
		Sims:       usecase.NewSimulationService(catalog, sessions, logger),
		Scores:     usecase.NewScoringService(catalog, sessions, logger),
		Demos:      usecase.NewDemoService(ids, sessions, logger).WithUserCount(cfg.DemoUserCount),
		BoardQuery: usecase.NewLeaderboardQuery(),
	})

	httpLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slogLevel(cfg.LogLevel),
	}))
	router := httpapi.NewRouter(handler, httpLogger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func slogLevel(level logging.Level) slog.Level {
	switch level {
	case logging.LevelDebug:
		return slog.LevelDebug
	case logging.LevelWarn:
		return slog.LevelWarn
	case logging.LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fixedSeedGenerator pins the simulation seed while leaving user id
// generation random. Used when APP_RNG_SEED is set.
type fixedSeedGenerator struct {
	inner idgen.Generator
	seed  int64
}

func (g fixedSeedGenerator) NewUserID() (string, error) {
	return g.inner.NewUserID()
}

func (g fixedSeedGenerator) NewSeed() (int64, error) {
	return g.seed, nil
}
