package app

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
	"github.com/rs/zerolog"
)

// MermaidGraphIntrospector is an implementation of the Introspector interface that generates a Mermaid graph
// representation of the application's configuration and dependencies, and registers it in the dependency container.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, "introspection-graph-mermaid")
	return nil
}

// ReportLoggerIntrospector logs every configuration key the application read at startup.
type ReportLoggerIntrospector struct {
}

// Introspect writes one debug line per config access, plus a summary.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger, err := depend.Resolve[*zerolog.Logger]()
	if err != nil {
		return err
	}

	defaults := 0
	for _, c := range r.Configs {
		if c.UsedDefault {
			defaults++
		}
		logger.Debug().Str("key", c.Key).Bool("used_default", c.UsedDefault).Msg("config resolved")
	}
	logger.Info().Int("configs", len(r.Configs)).Int("defaults", defaults).Msg("application introspected")
	return nil
}
