package badgerstore

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

// BackendName is the CACHE_BACKEND value that selects this package.
const BackendName = "badger"

// postgresBackend is the only other backend accepted; its initializer lives in the postgres adapter.
const postgresBackend = "postgres"

// InitBadgerCache opens the embedded cache directory and registers the
// domain.AugmentationCacheStore and domain.EmbeddingCacheStore backed by it.
type InitBadgerCache struct {
	db       *badger.DB
	inMemory bool
	Logger   *zerolog.Logger `resolve:""`
	Backend  string          `config:"CACHE_BACKEND" default:"badger"`
	Dir      string          `config:"CACHE_DIR" default:".cache"`
}

// Initialize opens the database unless another backend is selected.
func (i *InitBadgerCache) Initialize(ctx context.Context) (context.Context, error) {
	switch i.Backend {
	case BackendName:
	case postgresBackend:
		return ctx, nil
	default:
		return ctx, fmt.Errorf("unknown cache backend %q", i.Backend)
	}

	opts := badger.DefaultOptions(i.Dir).WithLogger(badgerLogger{logger: i.Logger})
	if i.inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}
	opts.ValueLogFileSize = 16 << 20
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		return ctx, fmt.Errorf("open badger cache at %s: %w", i.Dir, err)
	}
	i.db = db

	depend.Register[domain.AugmentationCacheStore](NewAugmentationCacheStore(db))
	depend.Register[domain.EmbeddingCacheStore](NewEmbeddingCacheStore(db))

	i.Logger.Info().Str("dir", i.Dir).Msg("InitBadgerCache: badger cache backend ready")
	return ctx, nil
}

// Close flushes and closes the database.
func (i *InitBadgerCache) Close() {
	if i.db == nil {
		return
	}
	if err := i.db.Close(); err != nil {
		i.Logger.Error().Err(err).Msg("InitBadgerCache: failed to close badger cache")
	}
	i.db = nil
}

// badgerLogger routes Badger's internal logs to zerolog. Info and debug
// messages are demoted to debug since Badger is chatty on open.
type badgerLogger struct {
	logger *zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error().Str("component", "badger").Msgf(format, args...)
}

func (l badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn().Str("component", "badger").Msgf(format, args...)
}

func (l badgerLogger) Infof(format string, args ...any) {
	l.logger.Debug().Str("component", "badger").Msgf(format, args...)
}

func (l badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug().Str("component", "badger").Msgf(format, args...)
}
