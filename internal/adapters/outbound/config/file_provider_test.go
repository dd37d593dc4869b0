package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
scoring:
  semantic_weight: 0.6
  genre_weight: 0.25
  mood_weight: 0.15
recommend_top_k: 5
cache:
  backend: postgres
  ttl: 24h
llm_model: ai/gemma3
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileProvider_Get(t *testing.T) {
	fp, err := NewFileProvider(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	tests := map[string]struct {
		key       string
		expected  string
		expectErr bool
	}{
		"nested-float":   {key: "SCORING_SEMANTIC_WEIGHT", expected: "0.6"},
		"top-level-int":  {key: "RECOMMEND_TOP_K", expected: "5"},
		"nested-string":  {key: "CACHE_BACKEND", expected: "postgres"},
		"duration":       {key: "CACHE_TTL", expected: "24h"},
		"lowercase-key":  {key: "llm_model", expected: "ai/gemma3"},
		"missing-key":    {key: "HTTP_PORT", expectErr: true},
		"partial-prefix": {key: "SCORING", expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			value, err := fp.Get(context.Background(), tt.key)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestNewFileProvider_MissingFile(t *testing.T) {
	_, err := NewFileProvider(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestInitConfigProviders_Initialize(t *testing.T) {
	tests := map[string]struct {
		init      InitConfigProviders
		expectErr bool
	}{
		"env-only": {
			init: InitConfigProviders{ConfigFile: "-", VaultServer: "-"},
		},
		"with-file": {
			init: InitConfigProviders{ConfigFile: writeConfig(t, sampleConfig), VaultServer: "-"},
		},
		"missing-file": {
			init:      InitConfigProviders{ConfigFile: "/does/not/exist.yml", VaultServer: "-"},
			expectErr: true,
		},
		"vault-without-token": {
			init:      InitConfigProviders{ConfigFile: "-", VaultServer: "http://localhost:8200", VaultToken: ""},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tt.init.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
