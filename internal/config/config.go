package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	AuthSecret         string
	OrderNumberPrefix  string
	WebhookAddress     string
	OverduePollInterval time.Duration
	OverdueBatchSize   int
	WorkerPoolSize     int
	NotificationBuffer int
	ShutdownTimeout    time.Duration
}

const (
	defaultRunAddress          = ":8080"
	defaultAuthSecret          = "change-me-in-production"
	defaultOrderNumberPrefix   = "SW"
	defaultOverduePollInterval = time.Minute
	defaultOverdueBatchSize    = 32
	defaultWorkerPoolSize      = 4
	defaultNotificationBuffer  = 256
	defaultShutdownTimeout     = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		AuthSecret:          getString(lookup, "AUTH_SECRET", defaultAuthSecret),
		OrderNumberPrefix:   getString(lookup, "ORDER_NUMBER_PREFIX", defaultOrderNumberPrefix),
		WebhookAddress:      getString(lookup, "NOTIFICATION_WEBHOOK", ""),
		OverduePollInterval: getDuration(lookup, "OVERDUE_POLL_INTERVAL", defaultOverduePollInterval),
		OverdueBatchSize:    getInt(lookup, "OVERDUE_BATCH_SIZE", defaultOverdueBatchSize),
		WorkerPoolSize:      getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		NotificationBuffer:  getInt(lookup, "NOTIFICATION_BUFFER", defaultNotificationBuffer),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("agromart", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.OverduePollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.OrderNumberPrefix, "order-prefix", cfg.OrderNumberPrefix, "Organization prefix for order numbers")
	fs.StringVar(&cfg.WebhookAddress, "webhook", cfg.WebhookAddress, "Notification webhook base URL (optional)")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent overdue workers")
	fs.StringVar(&pollIntervalStr, "overdue-interval", pollIntervalStr, "Interval between overdue payment scans")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.OverdueBatchSize, "overdue-batch", cfg.OverdueBatchSize, "Maximum orders per overdue scan")
	fs.IntVar(&cfg.NotificationBuffer, "notification-buffer", cfg.NotificationBuffer, "Notification queue capacity")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.OverduePollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid overdue interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("AUTH_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.OverdueBatchSize <= 0 {
		cfg.OverdueBatchSize = defaultOverdueBatchSize
	}

	if cfg.NotificationBuffer <= 0 {
		cfg.NotificationBuffer = defaultNotificationBuffer
	}

	if cfg.OverduePollInterval <= 0 {
		cfg.OverduePollInterval = defaultOverduePollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.OrderNumberPrefix == "" {
		cfg.OrderNumberPrefix = defaultOrderNumberPrefix
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
