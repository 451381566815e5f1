package identity

import (
	"context"
	"strings"
)

// Static returns a configured email
type Static struct {
	email string
}

// NewStatic creates a provider for a fixed email
func NewStatic(email string) *Static {
	return &Static{email: strings.TrimSpace(email)}
}

// Current returns the configured principal or ErrNoIdentity when blank
func (s *Static) Current(ctx context.Context) (Principal, error) {
	if s.email == "" {
		return Principal{}, ErrNoIdentity
	}
	return Principal{Email: s.email, Source: "static"}, nil
}
