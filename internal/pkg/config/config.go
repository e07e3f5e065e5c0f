package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	Cache    CacheConfig
	CORS     CORSConfig
	Log      LogConfig
	Dispatch DispatchConfig
	Push     PushConfig
	Mail     MailConfig
	Realtime RealtimeConfig
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
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// CacheConfig selects the shared store backend. "memory" is only correct for a single instance.
type CacheConfig struct {
	Driver          string        `envconfig:"CACHE_DRIVER" default:"redis"`
	CleanupInterval time.Duration `envconfig:"CACHE_CLEANUP_INTERVAL" default:"1m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-User-ID"`
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

type DispatchConfig struct {
	DedupTTL            time.Duration `envconfig:"DISPATCH_DEDUP_TTL" default:"30s"`
	PollInterval        time.Duration `envconfig:"DISPATCH_POLL_INTERVAL" default:"1m"`
	PollTTL             time.Duration `envconfig:"DISPATCH_POLL_TTL" default:"2m"`
	CatchUpWindow       time.Duration `envconfig:"DISPATCH_CATCHUP_WINDOW" default:"6m"`
	ReminderMarkerGrace time.Duration `envconfig:"DISPATCH_REMINDER_MARKER_GRACE" default:"10m"`
	OutboxBatchSize     int32         `envconfig:"DISPATCH_OUTBOX_BATCH_SIZE" default:"50"`
	OutboxInterval      time.Duration `envconfig:"DISPATCH_OUTBOX_INTERVAL" default:"2s"`
	OutboxMaxAttempts   int32         `envconfig:"DISPATCH_OUTBOX_MAX_ATTEMPTS" default:"5"`
	// Zero disables the background loop; reminders then rely on request-driven catch-up only.
	ReminderLoopInterval time.Duration `envconfig:"DISPATCH_REMINDER_LOOP_INTERVAL" default:"0"`
}

type PushConfig struct {
	Driver         string `envconfig:"PUSH_DRIVER" default:"log"`
	Region         string `envconfig:"PUSH_AWS_REGION" default:"us-east-1"`
	TopicARNPrefix string `envconfig:"PUSH_TOPIC_ARN_PREFIX" default:""`
}

type MailConfig struct {
	Driver string `envconfig:"MAIL_DRIVER" default:"log"`
	Region string `envconfig:"MAIL_AWS_REGION" default:"us-east-1"`
	From   string `envconfig:"MAIL_FROM" default:"no-reply@example.com"`
}

type RealtimeConfig struct {
	ChannelPrefix string `envconfig:"REALTIME_CHANNEL_PREFIX" default:"private-user."`
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
			MaxConns: 4,
		},
		Cache: CacheConfig{
			Driver:          "memory",
			CleanupInterval: time.Minute,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Dispatch: DispatchConfig{
			DedupTTL:            30 * time.Second,
			PollInterval:        time.Minute,
			PollTTL:             2 * time.Minute,
			CatchUpWindow:       6 * time.Minute,
			ReminderMarkerGrace: 10 * time.Minute,
			OutboxBatchSize:     10,
			OutboxInterval:      100 * time.Millisecond,
			OutboxMaxAttempts:   3,
		},
		Push:     PushConfig{Driver: "log"},
		Mail:     MailConfig{Driver: "log", From: "no-reply@example.com"},
		Realtime: RealtimeConfig{ChannelPrefix: "private-user."},
	}
}
