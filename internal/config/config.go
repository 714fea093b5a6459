package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type DB struct {
	Driver   string `envconfig:"DRIVER" default:"postgres"`
	URL      string `envconfig:"URL"`
	Host     string `envconfig:"HOST" default:"localhost"`
	User     string `envconfig:"USER" default:"postgres"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME" default:"snacks"`
	Port     string `envconfig:"PORT" default:"5432"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
}

type Jwt struct {
	SecretKey string        `envconfig:"SECRET_KEY" required:"true"`
	Expiry    time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type Auth struct {
	CookieName         string `envconfig:"COOKIE_NAME" default:"snack_session"`
	AllowedEmailDomain string `envconfig:"ALLOWED_EMAIL_DOMAIN"`
}

type Log struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"text"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Cors struct {
	AllowOrigins string `envconfig:"ALLOW_ORIGINS" default:"*"`
}

// Proxy names the header carrying the client address and the proxies allowed
// to set it. Without trusted proxies the socket address is used.
type Proxy struct {
	Header         string   `envconfig:"HEADER" default:"X-Forwarded-For"`
	TrustedProxies []string `envconfig:"TRUSTED"`
}

type App struct {
	Env       string    `envconfig:"APP_ENV" default:"development"`
	Port      string    `envconfig:"PORT" default:"3000"`
	SeedData  bool      `envconfig:"SEED_DATA" default:"false"`
	DB        DB        `envconfig:"DB"`
	Jwt       Jwt       `envconfig:"JWT"`
	Auth      Auth      `envconfig:"AUTH"`
	Log       Log       `envconfig:"LOG"`
	RateLimit RateLimit `envconfig:"RATE_LIMIT"`
	Cors      Cors      `envconfig:"CORS"`
	Proxy     Proxy     `envconfig:"PROXY"`
}

func (a *App) IsProduction() bool {
	return strings.EqualFold(a.Env, "production")
}

// Load reads the first env file that exists, then the process environment.
func Load(logger *slog.Logger, envFiles ...string) (*App, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	loaded := false
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("Environment file not found", "path", path)
			continue
		}
		logger.Info("Environment variables loaded from file", "path", path)
		loaded = true
		break
	}
	if !loaded {
		logger.Warn("No .env file found, using system environment variables")
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger.Info("App config loaded",
		"env", cfg.Env,
		"port", cfg.Port,
		"db_driver", cfg.DB.Driver,
		"db", maskValue(cfg.DB.URL),
		"jwt_secret", maskValue(cfg.Jwt.SecretKey),
		"jwt_expiry", cfg.Jwt.Expiry,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}

func maskValue(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 6 {
		return "****"
	}
	return value[:2] + "****" + value[len(value)-4:]
}
