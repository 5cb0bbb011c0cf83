package shared

import (
	"encoding/json"
	"github.com/tailscale/hujson"
	"log"
	"os"
)

const (
	configVarName  = "CONFIG"                  // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"                 // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "./dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "./dev/secrets.dev.jsonc" // Path to config.json in development environment
)

type Config struct {
	Secrets         Secrets         `json:"-"`
	LogFile         string          `json:"log_file"`
	LogLevel        string          `json:"log_level"`
	ServicePort     uint            `json:"service_port"`
	DbFile          string          `json:"db_file"`
	UserAgent       string          `json:"user_agent"`
	ProfileDir      string          `json:"profile_dir"`
	ProfileKeepDays int             `json:"profile_keep_days"`
	Polling         PollingConfig   `json:"polling"`
	Streaming       StreamingConfig `json:"streaming"`
}

type PollingConfig struct {
	IntervalMs       int `json:"interval_ms"`
	TimelinePageSize int `json:"timeline_page_size"`
	NotifPageSize    int `json:"notification_page_size"`
}

type StreamingConfig struct {
	BackoffBaseMs        int `json:"backoff_base_ms"`
	BackoffMaxMs         int `json:"backoff_max_ms"`
	MaxReconnectAttempts int `json:"max_reconnect_attempts"`
}

type Secrets struct {
	ApiKeys     []string `json:"api_keys"`
	MetricsAuth string   `json:"metrics_auth"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	config.ApplyDefaults()
	return &config
}

// ApplyDefaults fills in zero-valued tunables. Values match upstream
// Mastodon client conventions: 60s poll interval, 40/30 page sizes,
// 1s doubling backoff capped at 16s, 5 reconnect attempts.
func (cfg *Config) ApplyDefaults() {
	if cfg.Polling.IntervalMs == 0 {
		cfg.Polling.IntervalMs = 60000
	}
	if cfg.Polling.TimelinePageSize == 0 {
		cfg.Polling.TimelinePageSize = 40
	}
	if cfg.Polling.NotifPageSize == 0 {
		cfg.Polling.NotifPageSize = 30
	}
	if cfg.Streaming.BackoffBaseMs == 0 {
		cfg.Streaming.BackoffBaseMs = 1000
	}
	if cfg.Streaming.BackoffMaxMs == 0 {
		cfg.Streaming.BackoffMaxMs = 16000
	}
	if cfg.Streaming.MaxReconnectAttempts == 0 {
		cfg.Streaming.MaxReconnectAttempts = 5
	}
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
