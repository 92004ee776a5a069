package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/bytedance/sonic"
)

// jwksTTL is how long one fetched key set is reused.
const jwksTTL = 24 * time.Hour

// JWK is a single RSA signing key from the provider's key set.
type JWK struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// JWKS is the provider's published key set.
type JWKS struct {
	Keys []JWK `json:"keys"`
}

// Key returns the key with the given id, or nil.
func (s *JWKS) Key(kid string) *JWK {
	for i := range s.Keys {
		if s.Keys[i].Kid == kid {
			return &s.Keys[i]
		}
	}
	return nil
}

// PublicKey decodes the JWK modulus and exponent into an RSA public key.
func (k *JWK) PublicKey() (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("decode modulus: %w", err)
	}
	eb, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("decode exponent: %w", err)
	}
	e := new(big.Int).SetBytes(eb)
	if !e.IsInt64() || e.Int64() <= 0 {
		return nil, fmt.Errorf("invalid exponent")
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nb),
		E: int(e.Int64()),
	}, nil
}

// jwksCache is a single-slot TTL cache for the key set. One value is
// shared process-wide; concurrent refreshes are benign since every
// fetch returns the same externally-published set and the last write
// wins.
type jwksCache struct {
	mu      sync.Mutex
	set     *JWKS
	expires time.Time
}

func (c *jwksCache) get() *JWKS {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set == nil || time.Now().After(c.expires) {
		return nil
	}
	return c.set
}

func (c *jwksCache) put(set *JWKS) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set = set
	c.expires = time.Now().Add(jwksTTL)
}

// fetchJWKS retrieves the key set over HTTP.
func fetchJWKS(ctx context.Context, client *http.Client, url string) (*JWKS, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read jwks body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jwks endpoint returned %d", resp.StatusCode)
	}

	var set JWKS
	if err := sonic.Unmarshal(body, &set); err != nil {
		return nil, fmt.Errorf("unmarshal jwks: %w", err)
	}
	return &set, nil
}
