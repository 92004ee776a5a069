package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gentle-app/gentle-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verifier maps a bearer token to a stable user identity by checking
// its RS256 signature against the provider's JWKS and its audience
// claim against the configured audience.
type Verifier struct {
	jwksURL  string
	audience string
	client   *http.Client
	cache    jwksCache

	// fetch is swapped in tests.
	fetch func(ctx context.Context) (*JWKS, error)
}

func NewVerifier(cfg config.AuthCfg) *Verifier {
	v := &Verifier{
		jwksURL:  cfg.JWKSURL,
		audience: cfg.Audience,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
	v.fetch = func(ctx context.Context) (*JWKS, error) {
		return fetchJWKS(ctx, v.client, v.jwksURL)
	}
	return v
}

// keySet returns the cached key set, fetching on miss or expiry.
func (v *Verifier) keySet(ctx context.Context) (*JWKS, error) {
	if set := v.cache.get(); set != nil {
		return set, nil
	}
	set, err := v.fetch(ctx)
	if err != nil {
		return nil, err
	}
	v.cache.put(set)
	return set, nil
}

// Verify validates the token and returns the subject claim as the user
// identity. Any failure (unreachable key set, unknown kid, bad
// signature or audience, missing subject) is an authentication error.
func (v *Verifier) Verify(ctx context.Context, tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, fmt.Errorf("token is empty")
	}

	set, err := v.keySet(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load key set: %w", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		kid, _ := token.Header["kid"].(string)
		key := set.Key(kid)
		if key == nil {
			return nil, fmt.Errorf("key %q not found in key set", kid)
		}
		return key.PublicKey()
	},
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithAudience(v.audience),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token")
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return uuid.Nil, fmt.Errorf("token missing subject claim")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject: %w", err)
	}
	return userID, nil
}
