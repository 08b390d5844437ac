package ports

import (
	"context"

	"github.com/igiehon-foundation/tournament-portal/internal/core/domain"
)

// AuthService wraps sign-in/sign-out against the identity provider and
// classifies each signed-in identity into exactly one effective role.
type AuthService interface {
	// SignIn verifies the credential pair, derives the role, caches the
	// session, and returns it with the signed credential token. Fails with
	// domain.ErrInvalidCredentials when the provider rejects the pair; the
	// caller surfaces that verbatim, no retry.
	SignIn(ctx context.Context, email, password string) (*domain.Session, string, error)

	// SignOut discards the cached session. It always succeeds locally:
	// a failure to reach the session cache is logged and swallowed, since a
	// stale remote session has no capability once the credential is gone.
	SignOut(ctx context.Context, tokenID string)

	// CurrentSession rehydrates the session from a persisted credential
	// token. On a cache miss the role is re-resolved and re-cached. Returns
	// domain.ErrInvalidCredentials for a token that does not verify.
	CurrentSession(ctx context.Context, token string) (*domain.Session, error)
}
