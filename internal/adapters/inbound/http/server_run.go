package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/inbound/mcpserver"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/usecases"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

var _ gen.ServerInterface = (*FoodAppServer)(nil)

// FoodAppServer is the REST API HTTP server for the FoodApp application.
type FoodAppServer struct {
	Port                     int                           `config:"HTTP_PORT" default:"8080"`
	AppVersion               string                        `config:"APP_VERSION" default:"dev"`
	SessionCookieName        string                        `config:"SESSION_COOKIE_NAME" default:"session"`
	CORSAllowedOrigins       string                        `config:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	Logger                   *zerolog.Logger               `resolve:""`
	SessionVerifier          domain.SessionVerifier        `resolve:""`
	ToolServer               *mcpserver.ToolServer         `resolve:""`
	GetCartUseCase           usecases.GetCart              `resolve:""`
	ClearCartUseCase         usecases.ClearCart            `resolve:""`
	InitializePaymentUseCase usecases.InitializePayment    `resolve:""`
	PaymentWebhookUseCase    usecases.HandlePaymentWebhook `resolve:""`
	StreamChatUseCase        usecases.StreamChat           `resolve:""`
	ListRestaurantsUseCase   usecases.ListRestaurants      `resolve:""`
	GetRestaurantMenuUseCase usecases.GetRestaurantMenu    `resolve:""`
}

// Handler builds the routes of the FoodAppServer.
func (api FoodAppServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/introspect", api.handleIntrospect)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	if api.ToolServer != nil {
		mux.Handle("/mcp", telemetry.HttpHandler(api.ToolServer, "foodapp-mcp"))
	}

	// Create the OpenAPI handler with telemetry and session middlewares
	h := gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseRouter: mux,
		Middlewares: []gen.MiddlewareFunc{
			telemetry.Middleware("foodapp-api"),
			sessionMiddleware(api.SessionVerifier, api.SessionCookieName, api.Logger),
		},
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			respondError(w, gen.ErrorResp{
				Error: gen.Error{
					Code:    gen.BADREQUEST,
					Message: err.Error(),
				},
			})
		},
	})

	// Apply CORS at the top-level so preflight requests hit it, too.
	// Credentials are only shared with the configured origins.
	origins := allowedOrigins(api.CORSAllowedOrigins)
	return cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			_, ok := origins[origin]
			return ok
		},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(h)
}

// allowedOrigins parses a comma-separated origin list. The wildcard is
// ignored since it cannot be combined with credentials.
func allowedOrigins(list string) map[string]struct{} {
	origins := make(map[string]struct{})
	for _, origin := range strings.Split(list, ",") {
		origin = strings.TrimSpace(origin)
		if origin == "" || origin == "*" {
			continue
		}
		origins[origin] = struct{}{}
	}
	return origins
}

// Run starts the HTTP server for the FoodAppServer.
func (api FoodAppServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Info().Int("port", api.Port).Msg("FoodAppServer: listening")
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Error().Err(err).Msg("FoodAppServer: error during shutdown")
		} else {
			api.Logger.Info().Msg("FoodAppServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the FoodAppServer is ready by performing a health check.
func (api FoodAppServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
