package jwt

import (
	"errors"
	"time"
)

// Config holds JWT manager configuration.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  []string
	TTL       time.Duration
}

var (
	ErrSecretKeyRequired = errors.New("jwt secret key is required")
)

// New creates a JWT manager with an HS256 symmetric key.
func New(cfg Config) (*Manager, error) {
	if cfg.SecretKey == "" {
		return nil, ErrSecretKeyRequired
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &Manager{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       ttl,
	}, nil
}
