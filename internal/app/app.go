// Package app wires the loader components together and runs one incremental load.
package app

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/apperrors"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/config"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/facades"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/logger"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/metrics"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/models"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/repositories"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/services"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/transaction"
)

// MetricsJob is the Pushgateway job name of the loader.
const MetricsJob = "fx_rates_etl"

const pushTimeout = 10 * time.Second

// App is a fully wired loader.
type App struct {
	cfg         *config.Config
	metrics     *metrics.RunMetrics
	coordinator *services.Coordinator
}

// New wires repositories and services over db. cache and writer may be nil to
// disable snapshot caching and load events.
func New(
	cfg *config.Config,
	db *sqlx.DB,
	api *facades.CurrencyBeaconClient,
	cache services.SnapshotCache,
	writer services.KafkaWriter,
	now func() time.Time,
) *App {
	// Initialize repositories
	schemaRepo := repositories.NewSchemaRepository(db, transaction.GetTxFromContext)
	currencyRepo := repositories.NewCurrencyRepository(db, transaction.GetTxFromContext)
	dateRepo := repositories.NewDateRepository(db, transaction.GetTxFromContext)
	factRepo := repositories.NewFactRepository(db, transaction.GetTxFromContext)
	txRunner := transaction.NewRunner(db)

	// Initialize services
	currencyService := services.NewCurrencyService(api, schemaRepo, currencyRepo, txRunner)
	fetcher := services.NewHistoricalFetcher(api, cache, cfg.BaseCurrency)
	transformer := services.NewTransformer(cfg.BaseCurrency, now)
	loader := services.NewFactLoader(dateRepo, currencyRepo, factRepo, txRunner)
	publisher := services.NewEventPublisher(writer)
	runMetrics := metrics.New()

	coordinator := services.NewCoordinator(
		services.CoordinatorConfig{
			BaseCurrency:       cfg.BaseCurrency,
			InitialStartDate:   cfg.InitialStartDate,
			AlwaysRefreshCodes: cfg.CurrencyRefreshPolicy == config.RefreshAlways,
		},
		schemaRepo,
		currencyRepo,
		currencyService,
		dateRepo,
		fetcher,
		transformer,
		loader,
		publisher,
		runMetrics,
		now,
	)

	return &App{
		cfg:         cfg,
		metrics:     runMetrics,
		coordinator: coordinator,
	}
}

// Run executes one incremental load and pushes the run metrics.
func (a *App) Run(ctx context.Context) (models.RunSummary, error) {
	summary, err := a.coordinator.Run(ctx)

	pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), pushTimeout)
	defer cancel()
	if pushErr := a.metrics.Push(pushCtx, a.cfg.PushgatewayURL, MetricsJob); pushErr != nil {
		logger.Log.Warnw("failed to push metrics", "error", pushErr)
	}

	return summary, err
}

// Run validates the API key, connects to the warehouse and the optional Redis and
// Kafka backends, and executes one incremental load. A returned error means the
// run could not proceed: the key was rejected, or the warehouse was unreachable
// or its schema could not be ensured. Failures of single days are only logged.
func Run(ctx context.Context, cfg *config.Config) error {
	api := facades.NewCurrencyBeaconClient(cfg.APIBaseURL, cfg.APIKey, cfg.APITimeout)
	if err := api.ValidateAPIKey(ctx); err != nil {
		return fmt.Errorf("validate api key: %w", err)
	}

	// Connect to PostgreSQL
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf("%w: connect to warehouse: %w", apperrors.ErrPersistence, err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	// Connect to Redis
	var cache services.SnapshotCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("redis unavailable, snapshot cache disabled", "addr", cfg.RedisAddr, "error", err)
		} else {
			cache = repositories.NewSnapshotCacheRepository(rdb, cfg.SnapshotCacheTTL)
		}
	}

	// Kafka writer
	var writer services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		defer func() {
			if err := kw.Close(); err != nil {
				logger.Log.Warnw("failed to close kafka writer", "error", err)
			}
		}()
		writer = kw
	}

	summary, err := New(cfg, db, api, cache, writer, time.Now).Run(ctx)
	if err != nil {
		return err
	}

	logger.Log.Infow("run complete",
		"run_id", summary.RunID,
		"days_attempted", summary.DaysAttempted,
		"days_failed", summary.DaysFailed,
		"facts_inserted", summary.FactsInserted,
	)
	return nil
}
