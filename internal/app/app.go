package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/pitchside/matchday/internal/config"
	"github.com/pitchside/matchday/internal/domain/assignment"
	"github.com/pitchside/matchday/internal/domain/game"
	"github.com/pitchside/matchday/internal/domain/player"
	"github.com/pitchside/matchday/internal/infrastructure/account/warden"
	"github.com/pitchside/matchday/internal/infrastructure/notify"
	"github.com/pitchside/matchday/internal/infrastructure/repository/memory"
	"github.com/pitchside/matchday/internal/infrastructure/repository/postgres"
	"github.com/pitchside/matchday/internal/interfaces/httpapi"
	"github.com/pitchside/matchday/internal/platform/cache"
	idgen "github.com/pitchside/matchday/internal/platform/id"
	"github.com/pitchside/matchday/internal/platform/logging"
	"github.com/pitchside/matchday/internal/platform/resilience"
	"github.com/pitchside/matchday/internal/usecase"
)

type repositories struct {
	players     player.Repository
	assignments assignment.Repository
	games       game.Repository
	closeDB     func() error
}

// NewHTTPServer wires repositories, services and the HTTP router into a
// ready-to-run server. The returned cleanup releases the notify worker pool
// and the database handle; call it after the server has shut down.
func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, func(context.Context) error, error) {
	if logger == nil {
		logger = slog.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var leaderboardCache *cache.Store
	if cfg.CacheEnabled {
		leaderboardCache = cache.NewStore(cfg.CacheTTL)
	}

	var publisher usecase.ChangePublisher = usecase.NopPublisher{}
	var webhook *notify.WebhookPublisher
	if cfg.NotifyEnabled {
		webhook, err = notify.NewWebhookPublisher(notify.WebhookPublisherConfig{
			SubscriberURLs: cfg.NotifySubscriberURLs,
			Timeout:        cfg.NotifyTimeout,
			Retries:        cfg.NotifyRetries,
			SigningKey:     cfg.NotifySigningKey,
			MaxWorkers:     cfg.NotifyMaxWorkers,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.NotifyCircuitEnabled,
				FailureThreshold: cfg.NotifyCircuitFailureCount,
				OpenTimeout:      cfg.NotifyCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.NotifyCircuitHalfOpenMax,
			},
		}, logging.Default())
		if err != nil {
			closeQuietly(repos.closeDB, logger)
			return nil, nil, fmt.Errorf("build notify publisher: %w", err)
		}
		publisher = webhook
	}

	idGen := idgen.NewRandomGenerator()

	playerSvc := usecase.NewPlayerService(repos.players, idGen, publisher, logger)
	assignmentSvc := usecase.NewAssignmentService(repos.players, repos.assignments, assignment.NewShuffler(), publisher, logger)
	gameSvc := usecase.NewGameService(repos.games, idGen, publisher, logger)
	leaderboardSvc := usecase.NewLeaderboardService(repos.games, leaderboardCache)
	dashboardSvc := usecase.NewDashboardService(playerSvc, assignmentSvc, gameSvc, leaderboardSvc)

	verifier := warden.NewClient(warden.ClientConfig{
		HTTPClient:     &http.Client{Timeout: cfg.WardenTimeout},
		BaseURL:        cfg.WardenBaseURL,
		IntrospectPath: cfg.WardenIntrospectPath,
		AdminKey:       cfg.WardenAdminKey,
		Timeout:        cfg.WardenTimeout,
		CacheTTL:       cfg.WardenCacheTTL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.WardenCircuitEnabled,
			FailureThreshold: cfg.WardenCircuitFailureCount,
			OpenTimeout:      cfg.WardenCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.WardenCircuitHalfOpenMax,
		},
		Logger: logger,
	})

	handler := httpapi.NewHandler(playerSvc, assignmentSvc, gameSvc, leaderboardSvc, dashboardSvc, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		closeQuietly(repos.closeDB, logger)
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	cleanup := func(context.Context) error {
		if webhook != nil {
			webhook.Close()
		}
		if repos.closeDB != nil {
			return repos.closeDB()
		}
		return nil
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config, logger *slog.Logger) (repositories, error) {
	switch cfg.RepoDriver {
	case config.RepoDriverPostgres:
		db, err := openPostgres(cfg, logger)
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			players:     postgres.NewPlayerRepository(db),
			assignments: postgres.NewAssignmentRepository(db),
			games:       postgres.NewGameRepository(db),
			closeDB:     db.Close,
		}, nil
	case config.RepoDriverMemory:
		return repositories{
			players:     memory.NewPlayerRepository(memory.SeedRoster()),
			assignments: memory.NewAssignmentRepository(),
			games:       memory.NewGameRepository(memory.SeedGames()),
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported repo driver %q", cfg.RepoDriver)
	}
}

func openPostgres(cfg config.Config, logger *slog.Logger) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	logger.Info("postgres connected", "database", dbNameFromURL(cfg.DBURL))

	return db, nil
}

func closeQuietly(closeDB func() error, logger *slog.Logger) {
	if closeDB == nil {
		return
	}
	if err := closeDB(); err != nil {
		logger.Warn("close database", "error", err)
	}
}
