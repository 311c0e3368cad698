package session

import (
	"context"
	"fmt"

	"finledger/internal/api"
	"finledger/internal/logging"
	"finledger/internal/models"
)

// Guard validates the held session. Validate is a pure decision: it returns
// either a user context or one of the package's sentinel errors, and performs
// no storage clearing or navigation itself — callers apply those side effects
// from the returned error.
type Guard struct {
	store  *Store
	client api.Client
	log    logging.Logger
}

func NewGuard(store *Store, client api.Client, log logging.Logger) *Guard {
	return &Guard{store: store, client: client, log: log}
}

// Validate reads the stored token, structurally decodes it, and confirms it
// against the service by fetching the profile.
//
// Outcomes:
//   - no token            → ErrNoSession (no network call)
//   - undecodable token   → ErrMalformedToken (no profile fetch)
//   - fetch/auth failure or profile without email → ErrSessionInvalid
//   - otherwise           → the immutable user context for this session
func (g *Guard) Validate(ctx context.Context) (*models.User, error) {
	token, err := g.store.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNoSession
	}

	claims, err := DecodeClaims(token)
	if err != nil {
		g.log.Warn(ctx, "stored token failed to decode", "err", err)
		return nil, err
	}
	g.log.Debug(ctx, "token decoded", "subject", claims.Subject)

	user, err := g.client.FetchProfile(ctx, token)
	if err != nil {
		g.log.Warn(ctx, "profile fetch rejected session", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrSessionInvalid, err)
	}
	if user.Email == "" {
		return nil, fmt.Errorf("%w: profile response missing email", ErrSessionInvalid)
	}

	g.log.Info(ctx, "session validated", "email", user.Email)
	return user, nil
}
