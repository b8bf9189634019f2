package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/vaultshare/internal/vault/http"
	"github.com/aussiebroadwan/vaultshare/internal/vault/service"
	"github.com/aussiebroadwan/vaultshare/internal/vault/store"
	"github.com/aussiebroadwan/vaultshare/internal/vault/store/drivers/postgres"
	"github.com/aussiebroadwan/vaultshare/internal/vault/store/drivers/sqlite"
	"github.com/aussiebroadwan/vaultshare/pkg/cryptox"
	"github.com/aussiebroadwan/vaultshare/pkg/httpx"
	"github.com/aussiebroadwan/vaultshare/pkg/jwtx"
	"github.com/aussiebroadwan/vaultshare/pkg/notify"
	"github.com/aussiebroadwan/vaultshare/pkg/otpcache"
	"github.com/aussiebroadwan/vaultshare/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	// Issuer is the iss claim of every token this service signs.
	Issuer = "vaultshare"
)

// Application encapsulates the vault service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	otp      *otpcache.Cache
	sealer   *cryptox.Sealer
	signer   jwtx.Signer
	verifier jwtx.Verifier
	notifier notify.Notifier

	tokenService        *service.TokenService
	userService         *service.UserService
	accountService      *service.AccountService
	workspaceService    *service.WorkspaceService
	sharingService      *service.SharingService
	adminService        *service.AdminService
	bootstrapService    *service.BootstrapService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config, component string) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: component,
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// New creates a new Application instance with all dependencies initialized.
// Initialisation order: database, migrations, crypto, services, bootstrap, HTTP.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		logger: NewLogger(cfg, "vault-service"),
	}

	ctx := slogx.WithContext(context.Background(), app.logger)

	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}

	if err := app.initCrypto(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()

	if err := app.bootstrapAdmin(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Handler returns the HTTP handler serving the API.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("vault service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"db_driver", app.cfg.DBDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down vault service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("vault service stopped")
	return nil
}

// OpenStore opens the configured database driver. Migrations are not
// applied.
func OpenStore(ctx context.Context, cfg Config) (store.Store, error) {
	switch cfg.DBDriver {
	case DriverPostgres:
		return postgres.NewStore(ctx, cfg.DatabaseURL)
	case DriverSQLite, "":
		return sqlite.NewStore(sqlite.DSN(cfg.DatabaseFile))
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DBDriver)
	}
}

// NewNotifier builds the configured notification sink.
func NewNotifier(cfg Config, logger *slog.Logger) notify.Notifier {
	if cfg.Notifier == NotifierSMTP {
		return &notify.SMTPNotifier{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		}
	}
	return &notify.LogNotifier{Logger: logger}
}

func (app *Application) initDatabase(ctx context.Context) error {
	db, err := OpenStore(ctx, app.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DBDriver)
	return nil
}

// initCrypto sets up the credential sealer and the token signer.
func (app *Application) initCrypto() error {
	material, ephemeral, err := cryptox.LoadKeyMaterial(app.cfg.MasterKeyPath, app.cfg.MasterKey)
	if err != nil {
		return err
	}
	if ephemeral {
		if !app.cfg.IsDev() {
			return errors.New("VAULT_MASTER_KEY or VAULT_MASTER_KEY_PATH is required outside dev")
		}
		app.logger.Warn("using an ephemeral master key, stored passwords will not survive a restart")
	}

	app.sealer, err = cryptox.NewSealer(material)
	if err != nil {
		return fmt.Errorf("failed to create sealer: %w", err)
	}

	secret := app.cfg.JWTSecret
	if secret == "" {
		secret = cryptox.MustGenerateToken(cryptox.TokenSize256)
		app.logger.Warn("VAULT_JWT_SECRET not set, using a random secret; tokens will not survive a restart")
	}

	signer, err := jwtx.NewHS256Signer([]byte(secret))
	if err != nil {
		return fmt.Errorf("failed to create signer: %w", err)
	}
	app.signer = signer
	app.verifier = jwtx.NewHS256Verifier([]byte(secret), Issuer, 30*time.Second)
	return nil
}

func (app *Application) initServices() {
	app.otp = otpcache.New(app.cfg.OTPCapacity, app.cfg.OTPTTL)
	app.notifier = NewNotifier(app.cfg, app.logger)

	app.tokenService = &service.TokenService{
		Signer:     app.signer,
		Verifier:   app.verifier,
		Issuer:     Issuer,
		AccessTTL:  app.cfg.AccessTokenTTL,
		RefreshTTL: app.cfg.RefreshTokenTTL,
	}
	app.userService = &service.UserService{
		Store:     app.db,
		Tokens:    app.tokenService,
		OTP:       app.otp,
		Notifier:  app.notifier,
		ClientURL: app.cfg.ClientURL,
	}
	app.accountService = &service.AccountService{Store: app.db, Sealer: app.sealer}
	app.workspaceService = &service.WorkspaceService{Store: app.db, Sealer: app.sealer}
	app.sharingService = &service.SharingService{
		Store:     app.db,
		Notifier:  app.notifier,
		ClientURL: app.cfg.ClientURL,
	}
	app.adminService = &service.AdminService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.otp,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) bootstrapAdmin(ctx context.Context) error {
	created, err := app.bootstrapService.EnsureAdmin(ctx, app.cfg.AdminEmail, app.cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}
	if created {
		app.logger.Info("administrator account created", "email", app.cfg.AdminEmail)
	}
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
		app.cfg.ClientURL,
	)

	router.Cookie = httpx.CookieOptions{TTL: app.cfg.CookieTTL, Secure: app.cfg.CookieSecure}
	router.UserService = app.userService
	router.AccountService = app.accountService
	router.WorkspaceService = app.workspaceService
	router.SharingService = app.sharingService
	router.AdminService = app.adminService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
