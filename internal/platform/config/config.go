package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr        string
	Environment string
	LogLevel    string
	LogFormat   string
	AuditBuffer int
	Redis       RedisConfig
	Kafka       KafkaConfig
	CMP         CMPConfig
}

// RedisConfig configures the optional Redis backed IAB string source.
// An empty URL disables Redis.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IABHashKey   string
	IABChannel   string
}

// KafkaConfig configures the optional change event publisher. Empty brokers
// disable Kafka.
type KafkaConfig struct {
	Brokers      string
	ConsentTopic string
}

// CMPConfig configures the reference CMP and the adapter credentials.
type CMPConfig struct {
	DefaultDialog string
	DialogDelay   time.Duration
	// RandomSeed makes simulated dialog outcomes reproducible when set.
	RandomSeed *uint64
	// PartnerMap holds comma separated cmpID=partnerKey pairs.
	PartnerMap string
}

// FromEnv builds a Server config from environment variables so main stays lean.
// Malformed numeric or duration values are reported rather than ignored.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:        getEnv("CMPREF_ADDR", ":8080"),
		Environment: getEnv("CMPREF_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		Redis: RedisConfig{
			URL:        os.Getenv("REDIS_URL"),
			IABHashKey: os.Getenv("REDIS_IAB_HASH"),
			IABChannel: os.Getenv("REDIS_IAB_CHANNEL"),
		},
		Kafka: KafkaConfig{
			Brokers:      os.Getenv("KAFKA_BROKERS"),
			ConsentTopic: getEnv("KAFKA_CONSENT_TOPIC", "cmpref.consent.changes"),
		},
		CMP: CMPConfig{
			DefaultDialog: os.Getenv("CMP_DEFAULT_DIALOG"),
			PartnerMap:    os.Getenv("CMP_PARTNER_MAP"),
		},
	}

	var err error
	if cfg.AuditBuffer, err = getInt("AUDIT_BUFFER", 256); err != nil {
		return Server{}, err
	}
	if cfg.Redis.PoolSize, err = getInt("REDIS_POOL_SIZE", 10); err != nil {
		return Server{}, err
	}
	if cfg.Redis.MinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return Server{}, err
	}
	if cfg.Redis.DialTimeout, err = getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second); err != nil {
		return Server{}, err
	}
	if cfg.Redis.ReadTimeout, err = getDuration("REDIS_READ_TIMEOUT", 3*time.Second); err != nil {
		return Server{}, err
	}
	if cfg.Redis.WriteTimeout, err = getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second); err != nil {
		return Server{}, err
	}
	if cfg.CMP.DialogDelay, err = getDuration("CMP_DIALOG_DELAY", 0); err != nil {
		return Server{}, err
	}
	if raw := os.Getenv("CMP_RANDOM_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Server{}, fmt.Errorf("CMP_RANDOM_SEED: %w", err)
		}
		cfg.CMP.RandomSeed = &seed
	}
	return cfg, nil
}

// PartnerIDMap parses CMP_PARTNER_MAP into the adapter credential form.
func (c CMPConfig) PartnerIDMap() (map[string]string, error) {
	if strings.TrimSpace(c.PartnerMap) == "" {
		return nil, nil
	}
	out := make(map[string]string)
	for _, pair := range strings.Split(c.PartnerMap, ",") {
		from, to, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("CMP_PARTNER_MAP: entry %q is not cmpID=partnerKey", pair)
		}
		out[strings.TrimSpace(from)] = strings.TrimSpace(to)
	}
	return out, nil
}

// Credentials returns the adapter credentials map described by the config.
func (c CMPConfig) Credentials() (map[string]any, error) {
	creds := map[string]any{}
	if c.DefaultDialog != "" {
		creds["default_dialog_type"] = c.DefaultDialog
	}
	partners, err := c.PartnerIDMap()
	if err != nil {
		return nil, err
	}
	if partners != nil {
		creds["partner_id_map"] = partners
	}
	return creds, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
