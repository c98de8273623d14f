package acctconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

// ProcessConfig is the set of options that can't change mid-run: where
// the live accounting database is, a log level, a metrics address, and
// the purge policy file. It's read once at startup the way the
// teacher's cmd/bd/config.go bootstraps its own viper instance.
// LogLevel and MetricsAddr are loaded and printed by `config show`, but
// the purge and restore commands do not apply them: they log to stderr
// at slog's default level, and --telemetry exports to stdout.
type ProcessConfig struct {
	DSN         string `mapstructure:"dsn"`
	LogLevel    string `mapstructure:"log_level"`
	MetricsAddr string `mapstructure:"metrics_addr"`
	PolicyFile  string `mapstructure:"policy_file"`
}

// LoadProcessConfig reads configPath (YAML) into a fresh viper
// instance, then lets ACCTARCHIVE_-prefixed environment variables
// override any key (ACCTARCHIVE_DSN overrides "dsn", and so on).
func LoadProcessConfig(configPath string) (*ProcessConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("ACCTARCHIVE")
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("policy_file", "purge_policy.toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("acctconfig: read process config %s: %w", configPath, err)
	}

	var cfg ProcessConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("acctconfig: decode process config: %w", err)
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("acctconfig: dsn is required")
	}
	return &cfg, nil
}
