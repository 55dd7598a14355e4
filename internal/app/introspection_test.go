package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMermaidGraphIntrospector_Introspect(t *testing.T) {
	introspector := MermaidGraphIntrospector{}

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{
				Key:         "KEY1",
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

	introspector := ReportLoggerIntrospector{Logger: &logger}
	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{Key: "HTTP_PORT", UsedDefault: true},
			{Key: "SESSION_SECRET"},
		},
	}

	err := introspector.Introspect(context.Background(), report)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, `"key":"HTTP_PORT","used_default":true`)
	require.Contains(t, out, `"key":"SESSION_SECRET","used_default":false`)
	require.Contains(t, out, `"configs":2,"defaults":1`)
}
