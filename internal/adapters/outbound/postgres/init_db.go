package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"embed"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/DataDog/go-sqllexer"
	"github.com/XSAM/otelsql"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	pgxvector "github.com/pgvector/pgvector-go/pgx"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// BackendName is the CACHE_BACKEND value that selects this package.
const BackendName = "postgres"

const pingTimeout = 10 * time.Second

//go:embed migrations/*.sql
var migrationsFS embed.FS

// InitDB opens the Postgres connection, runs migrations and registers the
// *sql.DB plus the cache stores built on it. It does nothing unless
// CACHE_BACKEND is "postgres".
type InitDB struct {
	db                 *sql.DB
	metricRegistration metric.Registration
	offline            bool // skips the ping and migrations, for tests without a server
	Logger             *zerolog.Logger `resolve:""`
	Backend            string          `config:"CACHE_BACKEND" default:"badger"`
	DBUser             string          `config:"DB_USER" default:"postgres"`
	DBPass             string          `config:"DB_PASS" default:"-"`
	DBHost             string          `config:"DB_HOST" default:"localhost"`
	DBPort             string          `config:"DB_PORT" default:"5432"`
	DBName             string          `config:"DB_NAME" default:"filmrecommender"`
	MaxConns           int32           `config:"DB_MAX_CONNS" default:"10"`
}

// Initialize sets up the database connection, runs migrations and registers
// the *sql.DB, domain.AugmentationCacheStore and domain.EmbeddingCacheStore.
func (di *InitDB) Initialize(ctx context.Context) (context.Context, error) {
	if di.Backend != BackendName {
		return ctx, nil
	}

	cfg, err := pgxpool.ParseConfig(di.dsn())
	if err != nil {
		return ctx, fmt.Errorf("invalid postgres configuration: %w", err)
	}
	if di.MaxConns > 0 {
		cfg.MaxConns = di.MaxConns
	}
	// The vector type must be known on every pooled connection before embeddings are scanned.
	cfg.AfterConnect = func(ctx context.Context, pgconn *pgx.Conn) error {
		return pgxvector.RegisterTypes(ctx, pgconn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return ctx, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	if !di.offline {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			pool.Close()
			return ctx, fmt.Errorf("postgres is unreachable at %s:%s: %w", di.DBHost, di.DBPort, err)
		}
	}

	dbSystemAttributes := otelsql.WithAttributes(
		semconv.DBSystemNamePostgreSQL,
		semconv.DBNamespace(di.DBName),
	)

	di.db = otelsql.OpenDB(
		stdlib.GetPoolConnector(pool),
		dbSystemAttributes,
		otelsql.WithInstrumentAttributesGetter(withQueryAttributes(di.Logger)),
	)

	di.metricRegistration, err = otelsql.RegisterDBStatsMetrics(
		di.db,
		dbSystemAttributes,
	)
	if err != nil {
		return ctx, fmt.Errorf("failed to register db stats metrics: %w", err)
	}

	if !di.offline {
		if err := di.runMigrations(); err != nil {
			return ctx, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	depend.Register(di.db)
	depend.Register[domain.AugmentationCacheStore](NewAugmentationCacheRepository(di.db))
	depend.Register[domain.EmbeddingCacheStore](NewEmbeddingCacheRepository(di.db))

	di.Logger.Info().Str("host", di.DBHost).Str("database", di.DBName).Msg("InitDB: postgres cache backend ready")
	return ctx, nil
}

// dsn builds the connection URL. DB_PASS "-" means no password.
func (di *InitDB) dsn() string {
	user := url.User(di.DBUser)
	if di.DBPass != "-" && di.DBPass != "" {
		user = url.UserPassword(di.DBUser, di.DBPass)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     user,
		Host:     net.JoinHostPort(di.DBHost, di.DBPort),
		Path:     "/" + di.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func (di *InitDB) runMigrations() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(di.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	di.Logger.Info().Msg("InitDB: migrations applied successfully")
	return nil
}

// Close releases the connection pool and the db stats metrics.
func (di *InitDB) Close() {
	if di.db != nil {
		if err := di.db.Close(); err != nil {
			di.Logger.Error().Err(err).Msg("InitDB: failed to close database connection")
		}
		if di.metricRegistration != nil {
			if err := di.metricRegistration.Unregister(); err != nil {
				di.Logger.Error().Err(err).Msg("InitDB: failed to unregister metric registration")
			}
		}
	}
}

func withQueryAttributes(logger *zerolog.Logger) func(ctx context.Context, method otelsql.Method, query string, args []driver.NamedValue) []attribute.KeyValue {
	return func(ctx context.Context, method otelsql.Method, query string, args []driver.NamedValue) []attribute.KeyValue {
		if method != otelsql.MethodConnQuery && method != otelsql.MethodConnExec {
			return nil
		}
		attib := []attribute.KeyValue{}

		operations, tables := extractSQLOperation(logger, query)
		if len(operations) > 0 {
			attib = append(attib, semconv.DBQuerySummary(fmt.Sprintf("%s %s", strings.Join(operations, ","), strings.Join(tables, ","))))
		}
		if len(tables) > 0 {
			attib = append(attib, semconv.DBCollectionName(strings.Join(tables, ",")))
		}

		return attib
	}
}

// extractSQLOperation extracts the primary SQL operation and target tables from a query.
func extractSQLOperation(logger *zerolog.Logger, query string) ([]string, []string) {
	normalizer := sqllexer.NewNormalizer(
		sqllexer.WithCollectTables(true),
		sqllexer.WithCollectCommands(true),
		sqllexer.WithCollectComments(false),
	)

	_, meta, err := normalizer.Normalize(query)
	if err != nil {
		logger.Debug().Err(err).Msg("failed to extract SQL operation from query")
		return nil, nil
	}

	return meta.Commands, meta.Tables
}
