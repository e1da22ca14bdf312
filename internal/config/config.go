package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultAddress        = ":9090"
	defaultTimeout        = 30 * time.Second
	defaultCacheDB        = 0
	defaultMembershipTTL  = 24 * time.Hour
	defaultMQDriver       = "memory"
	defaultTopic          = "interaction_events"
	defaultPartitions     = 8
	defaultWorkers        = 8
	defaultBuffer         = 256
	defaultRetryInterval  = 100 * time.Millisecond
	defaultRetryMax       = time.Second
	defaultMaxRetries     = 3
	defaultAuditBatchSize = 200
	defaultSnowflakeNode  = 1
)

type Database struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

type Cache struct {
	Host string
	Port string
	Pass string
	DB   int
	// MembershipTTL is how long an idle dedup key stays in the cache, zero keeps it forever
	MembershipTTL time.Duration
}

type MQ struct {
	// Driver is "memory" or "kafka"
	Driver     string
	Network    string
	Addresses  []string
	Topic      string
	Partitions int
}

type Reconciler struct {
	Workers       int
	Buffer        int
	RetryInterval time.Duration
	RetryMax      time.Duration
	MaxRetries    int32
}

type Config struct {
	ServerAddress  string
	ContextTimeout time.Duration
	LogLevel       string
	LogFormat      string
	SnowflakeNode  int64

	Database   Database
	Cache      Cache
	MQ         MQ
	Reconciler Reconciler

	// AuditInterval of zero disables the audit job
	AuditInterval  time.Duration
	AuditBatchSize int

	// AdminToken guards the admin routes, which stay closed while it is empty
	AdminToken string
}

// Load reads .env if present, then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file loaded, reading configuration from the environment")
	}

	return Config{
		ServerAddress:  getString("SERVER_ADDRESS", defaultAddress),
		ContextTimeout: getDuration("CONTEXT_TIMEOUT", defaultTimeout),
		LogLevel:       getString("LOG_LEVEL", "info"),
		LogFormat:      getString("LOG_FORMAT", "text"),
		SnowflakeNode:  int64(getInt("SNOWFLAKE_NODE", defaultSnowflakeNode)),
		Database: Database{
			Host: getString("DATABASE_HOST", "localhost"),
			Port: getString("DATABASE_PORT", "3306"),
			User: getString("DATABASE_USER", "root"),
			Pass: os.Getenv("DATABASE_PASS"),
			Name: getString("DATABASE_NAME", "interaction"),
		},
		Cache: Cache{
			Host:          getString("CACHE_HOST", "localhost"),
			Port:          getString("CACHE_PORT", "6379"),
			Pass:          os.Getenv("CACHE_PASS"),
			DB:            getInt("CACHE_DB", defaultCacheDB),
			MembershipTTL: getDuration("CACHE_MEMBERSHIP_TTL", defaultMembershipTTL),
		},
		MQ: MQ{
			Driver:     strings.ToLower(getString("MQ_DRIVER", defaultMQDriver)),
			Network:    getString("MQ_KAFKA_NETWORK", "tcp"),
			Addresses:  getList("MQ_KAFKA_ADDRESSES"),
			Topic:      getString("MQ_TOPIC", defaultTopic),
			Partitions: getInt("MQ_PARTITIONS", defaultPartitions),
		},
		Reconciler: Reconciler{
			Workers:       getInt("RECONCILER_WORKERS", defaultWorkers),
			Buffer:        getInt("RECONCILER_BUFFER", defaultBuffer),
			RetryInterval: getDuration("RECONCILER_RETRY_INTERVAL", defaultRetryInterval),
			RetryMax:      getDuration("RECONCILER_RETRY_MAX", defaultRetryMax),
			MaxRetries:    int32(getInt("RECONCILER_RETRY_TIMES", defaultMaxRetries)),
		},
		AuditInterval:  getDuration("AUDIT_INTERVAL", 0),
		AuditBatchSize: getInt("AUDIT_BATCH_SIZE", defaultAuditBatchSize),
		AdminToken:     os.Getenv("ADMIN_TOKEN"),
	}
}

// SetupLogger applies LOG_LEVEL and LOG_FORMAT to the standard logrus logger.
func (c Config) SetupLogger() {
	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("invalid LOG_LEVEL %q, using info", c.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.Warnf("failed to parse %s=%q, using default %d", key, v, def)
		return def
	}
	return n
}

// getDuration accepts Go durations ("500ms", "1h") or plain seconds.
func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	logrus.Warnf("failed to parse %s=%q, using default %v", key, v, def)
	return def
}

func getList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var res []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			res = append(res, s)
		}
	}
	return res
}
