package model

// Scope is the authenticated request scope extracted from the token.
type Scope struct {
	UserID   string
	Username string
	Role     string
}
