package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is built once at startup and handed to every component by pointer.
// Nothing else in the module reads the environment.
type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"8080"`

	MySQLHost     string `env:"MYSQL_HOST" envDefault:"mysql"`
	MySQLPort     string `env:"MYSQL_PORT" envDefault:"3306"`
	MySQLDB       string `env:"MYSQL_DB" envDefault:"greentracker"`
	MySQLUser     string `env:"MYSQL_USER" envDefault:"greentracker"`
	MySQLPass     string `env:"MYSQL_PASS" envDefault:"greentracker"`
	DBAutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`
	DBLogLevel    string `env:"DB_LOG_LEVEL" envDefault:"warn"`

	// empty RedisAddr disables the idempotency middleware
	RedisAddr    string `env:"REDIS_ADDR"`
	RedisDB      int    `env:"REDIS_DB" envDefault:"0"`
	IdempTTLSecs int    `env:"IDEMPOTENCY_TTL_SECONDS" envDefault:"300"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`

	// zero LoginRatePerMin disables login throttling
	LoginRatePerMin int `env:"LOGIN_RATE_PER_MINUTE" envDefault:"10"`
	LoginBurst      int `env:"LOGIN_BURST" envDefault:"5"`

	SuperadminID       string `env:"SUPERADMIN_ID"`
	SuperadminPassword string `env:"SUPERADMIN_PASSWORD"`
	SuperadminName     string `env:"SUPERADMIN_NAME" envDefault:"Superadmin"`
	SuperadminEmail    string `env:"SUPERADMIN_EMAIL"`

	UploadPeriodID  int    `env:"UPLOAD_PERIOD_ID" envDefault:"1"`
	UploadDir       string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	UploadURLPrefix string `env:"UPLOAD_URL_PREFIX" envDefault:"/uploads"`

	SMTP SMTPConfig `envPrefix:"SMTP_"`

	CronWeekly string `env:"CRON_WEEKLY" envDefault:"0 9 * * 1"`
	CronDaily  string `env:"CRON_DAILY" envDefault:"0 8 * * *"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// SMTPConfig with an empty Host means reminder mail is only logged.
type SMTPConfig struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM"`
}

// Load reads the optional .env files (missing files are fine) and parses the environment.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// godotenv never overrides variables that are already set
		_ = godotenv.Load(f)
	}
	c, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if len(c.JWTSecret) < 16 {
		return errors.New("JWT_SECRET must be at least 16 characters")
	}
	if c.JWTExpiry <= 0 {
		return errors.New("JWT_EXPIRY must be positive")
	}
	if c.SuperadminID == "" || c.SuperadminPassword == "" {
		return errors.New("missing SUPERADMIN_ID/SUPERADMIN_PASSWORD")
	}
	if c.LoginRatePerMin < 0 || (c.LoginRatePerMin > 0 && c.LoginBurst <= 0) {
		return errors.New("LOGIN_RATE_PER_MINUTE must be >= 0 and LOGIN_BURST positive when throttling")
	}
	if c.UploadPeriodID <= 0 {
		return errors.New("UPLOAD_PERIOD_ID must be positive")
	}
	if c.SMTP.Host != "" && c.SMTP.From == "" {
		return errors.New("SMTP_FROM is required when SMTP_HOST is set")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime for DATETIME; clientFoundRows so an identical PUT still reports a matched row
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&clientFoundRows=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}
