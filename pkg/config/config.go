package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	AppEnv   string `toml:"app_env"`
	LogLevel string `toml:"log_level"`

	GRPCPort int `toml:"grpc_port"`
	HTTPPort int `toml:"http_port"`

	// StoreAddr is the gRPC address of the store process. Empty runs the
	// catalog and cart in-process.
	StoreAddr     string  `toml:"store_addr"`
	StoreBackend  string  `toml:"store_backend"`
	SQLitePath    string  `toml:"sqlite_path"`
	DefaultUserID string  `toml:"default_user_id"`
	ShippingFee   float64 `toml:"shipping_fee"`

	NLU   NLUConfig   `toml:"nlu"`
	Kafka KafkaConfig `toml:"kafka"`
}

type NLUConfig struct {
	Provider string `toml:"provider"`
	BaseURL  string `toml:"base_url"`
	APIKey   string `toml:"api_key"`
	Model    string `toml:"model"`
}

type KafkaConfig struct {
	Brokers   []string `toml:"brokers"`
	CartTopic string   `toml:"cart_topic"`
}

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"

	NLURules = "rules"
	NLULLM   = "llm"
)

func Default() Config {
	return Config{
		AppEnv:        "dev",
		LogLevel:      "info",
		HTTPPort:      8080,
		GRPCPort:      8081,
		StoreBackend:  BackendMemory,
		SQLitePath:    "data/store.db",
		DefaultUserID: "default_user",
		ShippingFee:   1500,
		NLU:           NLUConfig{Provider: NLURules},
		Kafka:         KafkaConfig{CartTopic: "cart.events"},
	}
}

// Load builds the config from defaults, the optional TOML file named by
// CONFIG_FILE, then environment variables. A broken config file is fatal
// for the caller; bad numeric env values fall back silently.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.AppEnv = getEnv("APP_ENV", cfg.AppEnv)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.HTTPPort = getEnvInt("HTTP_PORT", cfg.HTTPPort)
	cfg.GRPCPort = getEnvInt("GRPC_PORT", cfg.GRPCPort)
	cfg.StoreAddr = getEnv("STORE_ADDR", cfg.StoreAddr)
	cfg.StoreBackend = getEnv("STORE_BACKEND", cfg.StoreBackend)
	cfg.SQLitePath = getEnv("SQLITE_PATH", cfg.SQLitePath)
	cfg.DefaultUserID = getEnv("DEFAULT_USER_ID", cfg.DefaultUserID)
	cfg.ShippingFee = getEnvFloat("SHIPPING_FEE", cfg.ShippingFee)

	cfg.NLU.Provider = getEnv("NLU_PROVIDER", cfg.NLU.Provider)
	cfg.NLU.BaseURL = getEnv("LLM_BASE_URL", cfg.NLU.BaseURL)
	cfg.NLU.APIKey = getEnv("LLM_API_KEY", cfg.NLU.APIKey)
	cfg.NLU.Model = getEnv("LLM_MODEL", cfg.NLU.Model)

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	cfg.Kafka.CartTopic = getEnv("KAFKA_CART_TOPIC", cfg.Kafka.CartTopic)

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file %s not found", path)
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return def
	}
	return f
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
