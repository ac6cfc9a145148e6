package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, API keys), security settings
// - default: Values common across all environments (timezone, timeout, booking windows), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Stripe    StripeConfig
	Email     EmailConfig
	Redis     RedisConfig
	Booking   BookingConfig
	RateLimit RateLimitConfig
	Retry     RetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Merchant dashboard tokens are issued elsewhere; this service only verifies them.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:""`
}

type StripeConfig struct {
	SecretKey string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	Currency  string `envconfig:"STRIPE_CURRENCY" default:"usd"`
}

type EmailConfig struct {
	ResendAPIKey string `envconfig:"RESEND_API_KEY" required:"true"`
	FromAddress  string `envconfig:"EMAIL_FROM_ADDRESS" default:"bookings@example.com"`
	FromName     string `envconfig:"EMAIL_FROM_NAME" default:"Bookings"`
}

type RedisConfig struct {
	Addr            string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password        string        `envconfig:"REDIS_PASSWORD" default:""`
	DB              int           `envconfig:"REDIS_DB" default:"0"`
	AvailabilityTTL time.Duration `envconfig:"REDIS_AVAILABILITY_TTL" default:"30s"`
}

type BookingConfig struct {
	HoldTTL                 time.Duration `envconfig:"BOOKING_HOLD_TTL" default:"30m"`
	CheckoutTTL             time.Duration `envconfig:"BOOKING_CHECKOUT_TTL" default:"15m"`
	InvoiceDueDays          int64         `envconfig:"BOOKING_INVOICE_DUE_DAYS" default:"7"`
	LateCancelWindow        time.Duration `envconfig:"BOOKING_LATE_CANCEL_WINDOW" default:"24h"`
	LateCancelRefundPercent int64         `envconfig:"BOOKING_LATE_CANCEL_REFUND_PERCENT" default:"90"`
	SweepEnabled            bool          `envconfig:"BOOKING_SWEEP_ENABLED" default:"true"`
	SweepInterval           time.Duration `envconfig:"BOOKING_SWEEP_INTERVAL" default:"5m"`
	DispatchInterval        time.Duration `envconfig:"BOOKING_DISPATCH_INTERVAL" default:"1m"`
	IdempotencyTTL          time.Duration `envconfig:"BOOKING_IDEMPOTENCY_TTL" default:"24h"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	Burst             int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

type RetryConfig struct {
	MaxRetries      uint64        `envconfig:"RETRY_MAX_RETRIES" default:"3"`
	InitialInterval time.Duration `envconfig:"RETRY_INITIAL_INTERVAL" default:"200ms"`
	MaxInterval     time.Duration `envconfig:"RETRY_MAX_INTERVAL" default:"2s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Stripe: StripeConfig{
			SecretKey: "sk_test_dummy",
			Currency:  "usd",
		},
		Email: EmailConfig{
			ResendAPIKey: "re_test_dummy",
			FromAddress:  "bookings@example.com",
			FromName:     "Bookings",
		},
		Redis: RedisConfig{
			Addr:            "localhost:16379",
			AvailabilityTTL: 30 * time.Second,
		},
		Booking: BookingConfig{
			HoldTTL:                 30 * time.Minute,
			CheckoutTTL:             15 * time.Minute,
			InvoiceDueDays:          7,
			LateCancelWindow:        24 * time.Hour,
			LateCancelRefundPercent: 90,
			SweepEnabled:            false,
			SweepInterval:           5 * time.Minute,
			DispatchInterval:        time.Minute,
			IdempotencyTTL:          24 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             100,
		},
		Retry: RetryConfig{
			MaxRetries:      1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
		},
	}
}
