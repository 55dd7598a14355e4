package telemetry

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestSpanNameFormatter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/9/menu", nil)
	req.Pattern = "GET /api/restaurants/{restaurantId}/menu"
	assert.Equal(t, "GET /api/restaurants/{restaurantId}/menu", SpanNameFormatter("", req))

	req.Pattern = ""
	assert.Equal(t, "GET /api/restaurants/9/menu", SpanNameFormatter("", req))
}

func TestRecordErrorAndStatus(t *testing.T) {
	tests := map[string]struct {
		err          error
		expectedRes  bool
		expectedCode codes.Code
		expectedMsg  string
	}{
		"error": {
			err:          errors.New("vendor unavailable"),
			expectedRes:  true,
			expectedCode: codes.Error,
			expectedMsg:  "vendor unavailable",
		},
		"no-error": {
			expectedCode: codes.Ok,
			expectedMsg:  "OK",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			span := &mockSpan{}
			assert.Equal(t, tt.expectedRes, RecordErrorAndStatus(span, tt.err))
			assert.Equal(t, tt.expectedCode, span.statusCode)
			assert.Equal(t, tt.expectedMsg, span.statusMsg)
			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), span.lastError)
			}
		})
	}
}

func setupInMemoryTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
	)
	previous := tracer
	tracer = tp.Tracer("test-tracer")
	t.Cleanup(func() { tracer = previous })
	return exporter
}

func TestStart(t *testing.T) {
	tests := map[string]struct {
		userID        string
		expectedAttrs int
	}{
		"signed-in-customer": {
			userID:        "user-1",
			expectedAttrs: 1,
		},
		"anonymous": {
			userID:        "",
			expectedAttrs: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			exporter := setupInMemoryTracer(t)

			_, span := Start(t.Context(), WithUserID(tt.userID))
			span.End()

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, "telemetry::TestStart::func1", spans[0].Name)
			assert.Len(t, spans[0].Attributes, tt.expectedAttrs)
			if tt.expectedAttrs > 0 {
				assert.Equal(t, UserIDKey.String(tt.userID), spans[0].Attributes[0])
			}
		})
	}
}

func TestMiddleware_SkipsHealthProbes(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
	)
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	handler := Middleware("foodapp")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, path := range []string{"/healthz", "/api/restaurants"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/restaurants", spans[0].Name)
}

type mockSpan struct {
	trace.Span
	lastError  string
	statusCode codes.Code
	statusMsg  string
}

func (m *mockSpan) RecordError(err error, _ ...trace.EventOption) {
	m.lastError = err.Error()
}

func (m *mockSpan) SetStatus(code codes.Code, msg string) {
	m.statusCode = code
	m.statusMsg = msg
}
