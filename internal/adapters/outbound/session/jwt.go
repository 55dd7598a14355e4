package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the session token claims. The subject is the user id.
type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier implements domain.SessionVerifier for HS256 signed session tokens.
type JWTVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier creates a new JWTVerifier.
func NewJWTVerifier(secret, issuer string) JWTVerifier {
	return JWTVerifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Verify parses the token and returns the identity of its subject.
func (v JWTVerifier) Verify(_ context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Anonymous, domain.NewUnauthorizedErr("missing session token")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Anonymous, domain.NewUnauthorizedErr("session expired")
		}
		return domain.Anonymous, domain.NewUnauthorizedErr(fmt.Sprintf("invalid session token: %v", err))
	}
	if !parsed.Valid || claims.Subject == "" {
		return domain.Anonymous, domain.NewUnauthorizedErr("invalid session token")
	}

	return domain.Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}

// Issue signs a session token for the identity.
func (v JWTVerifier) Issue(identity domain.Identity, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		Email: identity.Email,
		Name:  identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// InitSessionVerifier registers the JWTVerifier as the domain.SessionVerifier.
type InitSessionVerifier struct {
	Secret string `config:"SESSION_SECRET"`
	Issuer string `config:"SESSION_ISSUER" default:"foodapp"`
}

// Initialize registers the session verifier in the dependency container.
func (i InitSessionVerifier) Initialize(ctx context.Context) (context.Context, error) {
	if len(i.Secret) < 32 {
		return ctx, fmt.Errorf("SESSION_SECRET must be at least 32 bytes")
	}
	depend.Register[domain.SessionVerifier](NewJWTVerifier(i.Secret, i.Issuer))
	return ctx, nil
}
