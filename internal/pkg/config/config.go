package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const EnvProduction = "production"

type Config struct {
	App      AppConfig
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Admin    AdminConfig
	Stripe   StripeConfig
	SMTP     SMTPConfig
	Delivery DeliveryConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

type AppConfig struct {
	Env  string `envconfig:"APP_ENV" default:"development"`
	Name string `envconfig:"APP_NAME" default:"WASSCE Checker Store"`
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Africa/Accra"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"2"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"GMT"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret              string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"8h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// Operator credentials. The password is stored as a bcrypt hash.
type AdminConfig struct {
	User         string `envconfig:"ADMIN_USER" default:"admin"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
	AlertEmail   string `envconfig:"ADMIN_ALERT_EMAIL" default:""`
}

type StripeConfig struct {
	SecretKey          string        `envconfig:"STRIPE_SECRET_KEY" default:""`
	WebhookSecret      string        `envconfig:"STRIPE_WEBHOOK_SECRET" default:""`
	SuccessURL         string        `envconfig:"STRIPE_SUCCESS_URL" default:"http://localhost:3000/success.html"`
	CancelURL          string        `envconfig:"STRIPE_CANCEL_URL" default:"http://localhost:3000/cancel.html"`
	Currency           string        `envconfig:"STRIPE_CURRENCY" default:"ghs"`
	SignatureTolerance time.Duration `envconfig:"STRIPE_SIGNATURE_TOLERANCE" default:"5m"`
	WebhookTimeout     time.Duration `envconfig:"STRIPE_WEBHOOK_TIMEOUT" default:"15s"`
	AllowUnsigned      bool          `envconfig:"STRIPE_ALLOW_UNSIGNED" default:"false"`
}

type SMTPConfig struct {
	Host     string        `envconfig:"SMTP_HOST" default:""`
	Port     int           `envconfig:"SMTP_PORT" default:"587"`
	User     string        `envconfig:"SMTP_USER" default:""`
	Password string        `envconfig:"SMTP_PASS" default:""`
	From     string        `envconfig:"EMAIL_FROM" default:"no-reply@example.com"`
	Timeout  time.Duration `envconfig:"SMTP_TIMEOUT" default:"10s"`
}

type DeliveryConfig struct {
	Inline       bool          `envconfig:"DELIVERY_INLINE" default:"true"`
	Worker       bool          `envconfig:"DELIVERY_WORKER" default:"true"`
	PollInterval time.Duration `envconfig:"DELIVERY_POLL_INTERVAL" default:"5s"`
	BatchSize    int           `envconfig:"DELIVERY_BATCH_SIZE" default:"10"`
	MaxAttempts  int           `envconfig:"DELIVERY_MAX_ATTEMPTS" default:"5"`
	BaseBackoff  time.Duration `envconfig:"DELIVERY_BASE_BACKOFF" default:"30s"`
	LeaseTimeout time.Duration `envconfig:"DELIVERY_LEASE_TIMEOUT" default:"5m"`
	SendTimeout  time.Duration `envconfig:"DELIVERY_SEND_TIMEOUT" default:"20s"`
}

// Empty Addr disables the processed-event cache.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	EventTTL time.Duration `envconfig:"REDIS_EVENT_TTL" default:"72h"`
}

// Empty Brokers disables outcome publishing.
type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"fulfillment.outcomes"`
	Buffer  int      `envconfig:"KAFKA_BUFFER" default:"256"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, EnvProduction)
}

func (c Config) Validate() error {
	if c.Stripe.AllowUnsigned && c.IsProduction() {
		return fmt.Errorf("STRIPE_ALLOW_UNSIGNED cannot be set when APP_ENV=%s", EnvProduction)
	}
	// unsigned webhooks are an explicit opt-in, never the result of a missing secret
	if c.Stripe.WebhookSecret == "" && !c.Stripe.AllowUnsigned {
		return fmt.Errorf("STRIPE_WEBHOOK_SECRET is required unless STRIPE_ALLOW_UNSIGNED=true")
	}
	if c.Delivery.MaxAttempts < 1 {
		return fmt.Errorf("DELIVERY_MAX_ATTEMPTS must be at least 1")
	}
	if c.Delivery.BatchSize < 1 {
		return fmt.Errorf("DELIVERY_BATCH_SIZE must be at least 1")
	}
	return nil
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		App: AppConfig{
			Env:  "test",
			Name: "WASSCE Checker Store",
		},
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
			MaxConns: 20,
			MinConns: 1,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:              "test-secret",
			AccessTokenDuration: "1h",
		},
		Admin: AdminConfig{
			User:         "admin",
			PasswordHash: "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A.", // password123
			AlertEmail:   "ops@example.com",
		},
		Stripe: StripeConfig{
			WebhookSecret:      "whsec_test",
			SuccessURL:         "http://localhost/success.html",
			CancelURL:          "http://localhost/cancel.html",
			Currency:           "ghs",
			SignatureTolerance: 5 * time.Minute,
			WebhookTimeout:     15 * time.Second,
		},
		SMTP: SMTPConfig{
			From:    "no-reply@example.com",
			Timeout: 5 * time.Second,
		},
		Delivery: DeliveryConfig{
			Inline:       true,
			Worker:       false,
			PollInterval: time.Second,
			BatchSize:    10,
			MaxAttempts:  3,
			BaseBackoff:  time.Second,
			LeaseTimeout: time.Minute,
			SendTimeout:  5 * time.Second,
		},
		Kafka: KafkaConfig{
			Topic:  "fulfillment.outcomes",
			Buffer: 16,
		},
	}
}
