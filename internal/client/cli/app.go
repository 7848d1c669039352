package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pablomagana/recomenzar/internal/client/api"
	"github.com/pablomagana/recomenzar/internal/client/config"
	"github.com/pablomagana/recomenzar/internal/client/notify"
	"github.com/pablomagana/recomenzar/internal/client/repositories/prefs"
	"github.com/pablomagana/recomenzar/internal/client/services"
	"github.com/pablomagana/recomenzar/internal/client/session"
	"github.com/pablomagana/recomenzar/internal/logging"
)

// App wires the whole client together and owns the interactive loop.
type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Store
	queue   *notify.LocalQueue

	reports    services.ReportService
	schedule   services.ScheduleService
	challenges services.ChallengeService
	users      services.UserService
	admin      services.AdminService
	alerts     *prefs.AlertStore

	reader *bufio.Reader
	now    func() time.Time // test seam
}

// NewApp builds the full dependency graph: local preferences database,
// raw auth client, session store, notification scheduler, authenticated
// gateway, and the services on top.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := prefs.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}
	prefsRepo := prefs.NewSQLiteRepository(db)
	alerts := prefs.NewAlertStore(db)

	queue := notify.NewLocalQueue(func(rec notify.Record) {
		fmt.Printf("\n🔔 %s\n%s\n", rec.Title, rec.Body)
	})
	scheduler := notify.NewScheduler(queue, cfg, log)

	// The raw auth client needs the session's token for logout, and the
	// session needs the auth client; the bearer closure breaks the cycle.
	var store *session.Store
	authClient := api.NewAuthClient(cfg.APIBaseURL, cfg.RequestTimeout, func() string {
		if store == nil {
			return ""
		}
		return store.AccessToken()
	})
	store = session.NewStore(authClient, prefsRepo, scheduler, log)

	gateway := api.NewGateway(cfg.APIBaseURL, cfg.RequestTimeout, store, log)

	return &App{
		config:     cfg,
		log:        log,
		session:    store,
		queue:      queue,
		reports:    services.NewReportService(api.NewReportsClient(gateway), scheduler, log),
		schedule:   services.NewScheduleService(api.NewSchedulesClient(gateway), scheduler, log),
		challenges: services.NewChallengeService(api.NewChallengesClient(gateway)),
		users:      services.NewUserService(api.NewUsersClient(gateway), store),
		admin:      services.NewAdminService(api.NewAdminClient(gateway)),
		alerts:     alerts,
		reader:     bufio.NewReader(os.Stdin),
		now:        time.Now,
	}, nil
}

// Run restores a persisted session, starts the notification queue, and
// hands control to the interactive loop.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Initialize(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed, starting logged out", "error", err)
	}

	a.queue.Start()
	defer a.queue.Stop()

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}
