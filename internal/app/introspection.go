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

// ReportLoggerIntrospector logs every configuration key read at startup
// and whether its default value was used.
type ReportLoggerIntrospector struct {
	Logger *zerolog.Logger
}

// Introspect writes one debug line per configuration access.
// The logger falls back to the one registered in the container.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger := i.Logger
	if logger == nil {
		resolved, err := depend.Resolve[*zerolog.Logger]()
		if err != nil {
			return nil
		}
		logger = resolved
	}

	defaults := 0
	for _, cfg := range r.Configs {
		if cfg.UsedDefault {
			defaults++
		}
		logger.Debug().Str("key", cfg.Key).Bool("used_default", cfg.UsedDefault).Msg("config")
	}
	logger.Info().Int("configs", len(r.Configs)).Int("defaults", defaults).Msg("FoodApp: configuration loaded")
	return nil
}
