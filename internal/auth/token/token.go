// Package token issues and verifies the bearer tokens that prove a prior
// successful login.
//
// Tokens are HS256-signed JWTs carrying the account identifier in the "id"
// claim and expiring a fixed interval after issuance. Tokens are stateless:
// nothing is stored server-side, and rotating the signing secret invalidates
// every outstanding token.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidOrExpired is the only error Verify returns. Expired, tampered,
// and structurally malformed tokens are deliberately indistinguishable to
// callers.
var ErrInvalidOrExpired = errors.New("token: invalid or expired")

// DefaultTTL is the token lifetime used when none is configured.
const DefaultTTL = time.Hour

// Config configures the token service.
type Config struct {
	// Secret is the HMAC signing key. Required.
	Secret string `yaml:"jwt_secret" mapstructure:"jwt_secret"`

	// TTL is the token lifetime (default: 1h).
	TTL time.Duration `yaml:"token_ttl" mapstructure:"token_ttl"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.TTL == 0 {
		c.TTL = DefaultTTL
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	if c.TTL < 0 {
		return fmt.Errorf("auth.token_ttl must be non-negative (got: %s)", c.TTL)
	}
	return nil
}

// Claims is the JWT payload. The account identifier travels in the "id"
// claim; expiry and issuance ride in the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// Service issues and verifies bearer tokens with an immutable process-wide
// secret. Safe for concurrent use.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service from configuration.
func NewService(cfg Config) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("token: %w", err)
	}
	return &Service{secret: []byte(cfg.Secret), ttl: cfg.TTL}, nil
}

// Issue creates a signed token bound to the given account identifier,
// expiring TTL after issuance.
func (s *Service) Issue(accountID string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: accountID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify validates the token's signature and expiry and returns the bound
// account identifier. Any failure yields ErrInvalidOrExpired.
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return "", ErrInvalidOrExpired
	}
	return claims.UserID, nil
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// keyFunc is the jwt.Keyfunc used during token parsing.
func (s *Service) keyFunc(t *jwt.Token) (interface{}, error) {
	if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("token: unexpected signing method: %s", t.Method.Alg())
	}
	return s.secret, nil
}
