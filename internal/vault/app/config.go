package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Supported values for Config.DBDriver and Config.Notifier.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	NotifierLog  = "log"
	NotifierSMTP = "smtp"
)

type Config struct {
	Port      int    `env:"VAULT_PORT"       envDefault:"8080"` // HTTP server port
	Env       string `env:"VAULT_ENV"        envDefault:"dev"`  // Environment (dev, staging, prod)
	LogLevel  string `env:"VAULT_LOG_LEVEL"  envDefault:"info"` // Log level (debug, info, warn, error)
	LogFormat string `env:"VAULT_LOG_FORMAT" envDefault:"json"` // Log format (json, text)

	DBDriver     string `env:"VAULT_DB_DRIVER"     envDefault:"sqlite"`   // Database driver (sqlite, postgres)
	DatabaseFile string `env:"VAULT_DATABASE_FILE" envDefault:"vault.db"` // SQLite database file
	DatabaseURL  string `env:"VAULT_DATABASE_URL"`                        // PostgreSQL DSN, required for the postgres driver

	JWTSecret       string        `env:"VAULT_JWT_SECRET"`                             // HS256 secret, required outside dev
	AccessTokenTTL  time.Duration `env:"VAULT_ACCESS_TOKEN_TTL"  envDefault:"1h"`      // Login access token lifetime
	RefreshTokenTTL time.Duration `env:"VAULT_REFRESH_TOKEN_TTL" envDefault:"24h"`     // Login refresh token lifetime
	CookieTTL       time.Duration `env:"VAULT_COOKIE_TTL"        envDefault:"1h"`      // access_token cookie lifetime
	CookieSecure    bool          `env:"VAULT_COOKIE_SECURE"     envDefault:"false"`   // Set the Secure flag on the cookie
	MasterKeyPath   string        `env:"VAULT_MASTER_KEY_PATH"`                        // File holding the credential sealing key
	MasterKey       string        `env:"VAULT_MASTER_KEY"`                             // Sealing key material, used when no file is set
	ClientURL       string        `env:"CLIENT_URL" envDefault:"http://localhost:3000"` // Web client origin, used in email links and CORS

	Notifier     string `env:"VAULT_NOTIFIER"      envDefault:"log"` // Notification sink (log, smtp)
	SMTPHost     string `env:"VAULT_SMTP_HOST"`
	SMTPPort     int    `env:"VAULT_SMTP_PORT"     envDefault:"587"`
	SMTPUsername string `env:"VAULT_SMTP_USERNAME"`
	SMTPPassword string `env:"VAULT_SMTP_PASSWORD"`
	SMTPFrom     string `env:"VAULT_SMTP_FROM"     envDefault:"support@vaultshare.local"`

	OTPTTL      time.Duration `env:"VAULT_OTP_TTL"      envDefault:"5m"`  // One-time code lifetime
	OTPCapacity int           `env:"VAULT_OTP_CAPACITY" envDefault:"500"` // Maximum pending one-time codes

	AdminEmail    string `env:"VAULT_ADMIN_EMAIL"`    // Optional: administrator created on first start
	AdminPassword string `env:"VAULT_ADMIN_PASSWORD"` // Optional: password for AdminEmail

	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"` // Graceful shutdown timeout
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1m"`  // Expired OTP sweep interval
}

// LoadConfig reads the configuration from the environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsDev reports whether the service runs in the development environment.
func (c Config) IsDev() bool { return c.Env == "dev" }

// Validate checks the combinations env tags cannot express.
func (c Config) Validate() error {
	var errs []error

	switch c.DBDriver {
	case DriverSQLite:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("VAULT_DATABASE_URL is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown VAULT_DB_DRIVER %q", c.DBDriver))
	}

	switch c.Notifier {
	case NotifierLog:
	case NotifierSMTP:
		if c.SMTPHost == "" {
			errs = append(errs, errors.New("VAULT_SMTP_HOST is required for the smtp notifier"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown VAULT_NOTIFIER %q", c.Notifier))
	}

	if c.JWTSecret == "" && !c.IsDev() {
		errs = append(errs, errors.New("VAULT_JWT_SECRET is required outside dev"))
	}
	if c.OTPCapacity <= 0 {
		errs = append(errs, errors.New("VAULT_OTP_CAPACITY must be positive"))
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		errs = append(errs, errors.New("token lifetimes must be positive"))
	}

	return errors.Join(errs...)
}
