package scope

import (
	"context"

	"botguard-srv/internal/model"
)

// Payload is the verified token payload.
type Payload struct {
	UserID    string
	Username  string
	Role      string
	Subject   string
	Issuer    string
	Id        string
	IssuedAt  int64
	ExpiresAt int64
}

// Manager verifies tokens into payloads.
type Manager interface {
	Verify(token string) (Payload, error)
}

// NewScope creates a request scope from a verified payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

type payloadKey struct{}
type scopeKey struct{}

// SetPayloadToContext stores the token payload in the context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, payload)
}

// GetPayloadFromContext retrieves the token payload from the context.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(payloadKey{}).(Payload)
	return p, ok
}

// SetScopeToContext stores the scope in the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext retrieves the scope from the context.
// Returns the zero scope when none was set (unauthenticated internal calls).
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeKey{}).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
