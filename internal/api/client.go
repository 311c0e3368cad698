// Package api defines the contract with the remote finance service and its
// HTTP implementation. Every call carries the credential token as a Bearer
// header; the service is the authority on whether that token is still good.
package api

import (
	"context"

	"finledger/internal/models"
)

// Client is the boundary to the remote account/finance service.
//
// Contract:
//   - FetchProfile: GET /api/user/me, the authoritative session check.
//   - FetchHistory: GET /api/user/history, the transaction snapshot.
//   - FetchExpensesByEmail: GET /api/expenses/byEmail, the expense snapshot
//     for the profile's email.
//   - Close: release underlying resources.
//
// All methods honor context cancellation and deadlines.
type Client interface {
	FetchProfile(ctx context.Context, token string) (*models.User, error)
	FetchHistory(ctx context.Context, token string) ([]models.Record, error)
	FetchExpensesByEmail(ctx context.Context, token, email string) ([]models.Record, error)
	Close() error
}
