package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/capnote/capnote/internal/client/config"
	"github.com/capnote/capnote/internal/client/localstore"
	"github.com/capnote/capnote/internal/client/remote"
	"github.com/capnote/capnote/internal/client/services"
	"github.com/capnote/capnote/internal/client/store"
	"github.com/capnote/capnote/internal/logging"
)

// App wires the CLI together: config, local files, the remote client, the
// services on top of it and the state store the views read from.
type App struct {
	config *config.Config
	logger logging.Logger

	local  *localstore.Store
	client remote.Client
	store  *store.Store

	auth       *services.AuthService
	notes      *services.NotesService
	payments   *services.PaymentsService
	checklists *services.ChecklistsService
	calendar   *services.CalendarService
	receipts   *services.ReceiptStore

	// reader takes prompt answers while the REPL loop scans commands with
	// its own bufio.Scanner over the same descriptor. On a terminal each
	// read waits for a fresh line; with piped input one buffer can consume
	// lines meant for the other, so scripted input must interleave commands
	// and answers exactly as prompted.
	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	local, err := localstore.Open()
	if err != nil {
		return nil, err
	}

	client, err := remote.Dial(ctx, remote.Options{
		EndpointURL: c.EndpointURL,
		Namespace:   c.Namespace,
		Database:    c.Database,
		Access:      c.Access,
	}, logger)
	if err != nil {
		return nil, err
	}

	receipts, err := services.NewReceiptStore(ctx, services.StorageConfig{
		Endpoint:      c.S3Endpoint,
		Region:        c.S3Region,
		Bucket:        c.S3Bucket,
		AccessKey:     c.S3AccessKey,
		SecretKey:     c.S3SecretKey,
		PublicBaseURL: c.S3PublicBaseURL,
	}, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		config:     c,
		logger:     logger,
		local:      local,
		client:     client,
		store:      store.New(store.InitialState()),
		auth:       services.NewAuthService(client, local, logger),
		notes:      services.NewNotesService(client, logger),
		payments:   services.NewPaymentsService(client, logger),
		checklists: services.NewChecklistsService(client, logger),
		calendar:   services.NewCalendarService(client, logger),
		receipts:   receipts,
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

// Run bootstraps local state, restores any saved session and enters the
// command loop. It returns when the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.client.Close(ctx) }()

	if !a.bootstrap(ctx) {
		return
	}
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.store.State().IsAuthenticated
}

func (a *App) status() string {
	s := a.store.State()
	status := ""
	if s.User != nil {
		status = s.User.Email
	}
	if s.SelectedTag != "" {
		status += " #" + s.SelectedTag
	}
	if status != "" {
		status = "(" + status + ")"
	}
	return status
}
