package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_Initialize(t *testing.T) {
	init := InitLogger{Level: "debug", Format: "json"}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	logger, err := depend.Resolve[*zerolog.Logger]()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestNewLogger(t *testing.T) {
	tests := map[string]struct {
		level     string
		format    string
		expectErr bool
		contains  string
	}{
		"json": {
			level:    "info",
			format:   "json",
			contains: `"service":"filmrecommender"`,
		},
		"console": {
			level:    "INFO",
			format:   "console",
			contains: "service=filmrecommender",
		},
		"empty-level-defaults-to-info": {
			level:    "",
			format:   "json",
			contains: `"level":"info"`,
		},
		"invalid-level": {
			level:     "verbose",
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := NewLogger(tt.level, tt.format, &buf)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			logger.Info().Msg("catalog indexed")
			assert.Contains(t, buf.String(), tt.contains)
			assert.Contains(t, buf.String(), "catalog indexed")
		})
	}
}
