// Package session owns the credential token lifecycle on the client: the
// persistent token slot, structural claim decoding, and the guard that decides
// whether a held token still identifies a live session.
package session

import (
	"context"
	"fmt"

	"finledger/internal/storage"
)

// TokenSlot is the name of the persistent slot the login flow writes the
// credential token into. This client only ever reads or clears it.
const TokenSlot = "UserToken"

// Store is the session-state container. It is the single place session state
// is mutated: written by SaveToken, wiped by Clear. Everything else reads.
type Store struct {
	slots *storage.SlotRepository
}

func NewStore(slots *storage.SlotRepository) *Store {
	return &Store{slots: slots}
}

// Token returns the stored credential token, or "" when none is held.
func (s *Store) Token(ctx context.Context) (string, error) {
	tok, err := s.slots.Get(ctx, TokenSlot)
	if err != nil {
		return "", fmt.Errorf("reading token slot: %w", err)
	}
	return tok, nil
}

// SaveToken stores a credential token issued by the external login flow.
func (s *Store) SaveToken(ctx context.Context, token string) error {
	if err := s.slots.Set(ctx, TokenSlot, token); err != nil {
		return fmt.Errorf("writing token slot: %w", err)
	}
	return nil
}

// Clear wipes all stored session state. Invoked exactly from the guard's
// failure paths and the logout action.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.slots.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session state: %w", err)
	}
	return nil
}
