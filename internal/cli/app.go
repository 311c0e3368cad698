// Package cli is the interactive terminal frontend: a small REPL that walks
// the user through session validation, the step-up gate, filtered record
// views, and report export.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"finledger/internal/api"
	"finledger/internal/config"
	"finledger/internal/logging"
	"finledger/internal/models"
	"finledger/internal/session"
	"finledger/internal/storage"

	_ "modernc.org/sqlite"
)

// sessionValidator is the guard surface the app needs. *session.Guard
// satisfies it; tests provide stubs.
type sessionValidator interface {
	Validate(ctx context.Context) (*models.User, error)
}

// sessionStore covers the session-state side effects the app applies.
type sessionStore interface {
	Token(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type App struct {
	config *config.Config
	log    logging.Logger
	client api.Client
	store  sessionStore
	guard  sessionValidator
	db     *sql.DB
	user   *models.User
	gate   *StepUpGate
	reader *bufio.Reader
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	log := logging.NewSlogLogger(
		slog.New(slog.NewTextHandler(os.Stderr, nil)),
	).With("session_id", uuid.NewString())

	client := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout)
	store := session.NewStore(storage.NewSlotRepository(db))
	guard := session.NewGuard(store, client, log)

	return &App{
		config: cfg,
		log:    log,
		client: client,
		store:  store,
		guard:  guard,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if a.client != nil {
		_ = a.client.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isAuthenticated() bool {
	return a.user != nil
}
