package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	TON
	Payments
	Fraud
	Tracker
	Redis
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type Kafka struct {
	Brokers          string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ConsumerGroup    string `env:"KAFKA_PAYMENT_GROUP_ID" envDefault:"payment-core"`
	PublishTopics    string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"payments.completed,payments.flagged,payments.dlq"`
	SubscriberTopics string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"payments.gateway.notifications"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type TON struct {
	APIKey         string        `env:"TON_API_KEY"`
	APIBaseURL     string        `env:"TON_API_URL" envDefault:"https://toncenter.com/api/v2"`
	WalletAddress  string        `env:"TON_WALLET_ADDRESS"`
	RequestTimeout time.Duration `env:"TON_REQUEST_TIMEOUT" envDefault:"10s"`
}

type Payments struct {
	ExpiryOffset  time.Duration `env:"PAYMENT_EXPIRY_OFFSET" envDefault:"30m"`
	WebhookSecret string        `env:"PAYMENT_WEBHOOK_SECRET"`
	TokenSecret   string        `env:"PAYMENT_TOKEN_SECRET"`
	TokenTTL      time.Duration `env:"PAYMENT_TOKEN_TTL" envDefault:"5m"`
}

// Fraud thresholds are policy constants. They are configurable, but the
// defaults below are the tested baseline.
type Fraud struct {
	MaxPendingIntents int           `env:"FRAUD_MAX_PENDING_INTENTS" envDefault:"3"`
	DuplicateWindow   time.Duration `env:"FRAUD_DUPLICATE_WINDOW" envDefault:"5m"`
	MaxDuplicates     int           `env:"FRAUD_MAX_DUPLICATES" envDefault:"2"`
	AmountCeiling     float64       `env:"FRAUD_AMOUNT_CEILING" envDefault:"100"`
	PatternSampleSize int           `env:"FRAUD_PATTERN_SAMPLE_SIZE" envDefault:"20"`
	MaxFailedIntents  int           `env:"FRAUD_MAX_FAILED_INTENTS" envDefault:"5"`
	MaxExpiredIntents int           `env:"FRAUD_MAX_EXPIRED_INTENTS" envDefault:"7"`
	MinCreationGap    time.Duration `env:"FRAUD_MIN_CREATION_GAP" envDefault:"30s"`
}

type Tracker struct {
	InitialDelay time.Duration `env:"TRACKER_INITIAL_DELAY" envDefault:"5s"`
	BackoffStep  time.Duration `env:"TRACKER_BACKOFF_STEP" envDefault:"1s"`
	MaxInterval  time.Duration `env:"TRACKER_MAX_INTERVAL" envDefault:"30s"`
}

// Redis is optional: when ADDR is empty, tracking sessions stay in an
// in-process map and are lost on restart. Set ADDR to share sessions across
// instances.
type Redis struct {
	ADDR       string        `env:"REDIS_ADDR"`
	PASSWORD   string        `env:"REDIS_PASSWORD"`
	SessionTTL time.Duration `env:"REDIS_SESSION_TTL" envDefault:"2h"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
