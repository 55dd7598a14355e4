package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/rs/zerolog"
)

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying the caller identity.
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the caller identity resolved by the session middleware,
// or domain.Anonymous.
func IdentityFromContext(ctx context.Context) domain.Identity {
	identity, ok := ctx.Value(identityKey{}).(domain.Identity)
	if !ok {
		return domain.Anonymous
	}
	return identity
}

// sessionMiddleware resolves the caller identity from the session cookie, or from
// an Authorization bearer token when no cookie is sent.
// Operations declaring a security requirement reject anonymous callers with 401.
// On public operations an invalid token degrades to the anonymous identity.
func sessionMiddleware(verifier domain.SessionVerifier, cookieName string, logger *zerolog.Logger) gen.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, secured := r.Context().Value(gen.CookieAuthScopes).([]string)

			identity := domain.Anonymous
			if token := sessionToken(r, cookieName); token != "" {
				resolved, err := verifier.Verify(r.Context(), token)
				switch {
				case err == nil:
					identity = resolved
				case secured:
					respondError(w, toError(err))
					return
				default:
					logger.Debug().Err(err).Str("path", r.URL.Path).Msg("sessionMiddleware: ignoring invalid session")
				}
			}

			if secured && !identity.IsAuthenticated() {
				respondError(w, toError(domain.NewUnauthorizedErr("authentication required")))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func sessionToken(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if found && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return ""
}
