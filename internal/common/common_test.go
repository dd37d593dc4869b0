package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	type sample struct {
		A int
		B string
	}

	assert.Equal(t, 42, *Ptr(42))
	assert.Equal(t, "hello", *Ptr("hello"))
	assert.Equal(t, sample{A: 1, B: "test"}, *Ptr(sample{A: 1, B: "test"}))
	assert.Equal(t, 0.7, *Ptr(0.7))
}

func TestContentHash(t *testing.T) {
	tests := map[string]struct {
		a, b      []string
		sameValue bool
	}{
		"same-parts": {
			a:         []string{"ai/embeddinggemma", "Inception (2010)"},
			b:         []string{"ai/embeddinggemma", "Inception (2010)"},
			sameValue: true,
		},
		"different-model": {
			a: []string{"ai/embeddinggemma", "Inception (2010)"},
			b: []string{"ai/mxbai-embed-large", "Inception (2010)"},
		},
		"different-text": {
			a: []string{"ai/embeddinggemma", "Inception (2010)"},
			b: []string{"ai/embeddinggemma", "Memento (2000)"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := ContentHash(tt.a...)
			assert.Len(t, a, 64)
			if tt.sameValue {
				assert.Equal(t, a, ContentHash(tt.b...))
			} else {
				assert.NotEqual(t, a, ContentHash(tt.b...))
			}
		})
	}
}
