package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMermaidGraphIntrospector_Introspect(t *testing.T) {
	introspector := MermaidGraphIntrospector{}

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{
				Key:         "SESSION_CALL_BUDGET",
				UsedDefault: true,
			},
		},
	}
	ctx := context.Background()

	err := introspector.Introspect(ctx, report)
	require.NoError(t, err)
	mermaidGraph, err := depend.ResolveNamed[string]("introspection-graph-mermaid")
	require.NoError(t, err)
	require.NotEmpty(t, mermaidGraph, "Mermaid graph should be registered as a named dependency")
}

func TestReportLoggerIntrospector_Introspect(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	depend.Register(&logger)

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{Key: "SESSION_CALL_BUDGET", UsedDefault: true},
			{Key: "LLM_MODEL", UsedDefault: false},
		},
	}

	err := ReportLoggerIntrospector{}.Introspect(context.Background(), report)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"key":"SESSION_CALL_BUDGET"`)
	assert.Contains(t, out, `"key":"LLM_MODEL"`)
	assert.Contains(t, out, `"configs":2`)
	assert.Contains(t, out, `"defaults":1`)
}
