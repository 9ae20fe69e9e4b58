// Package config holds the runtime settings of the portfolio server.
package config

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// Config is decoded by viper from defaults, an optional config file and the environment.
type Config struct {
	Port      string `mapstructure:"port"`
	AssetsDir string `mapstructure:"assets_dir"`
	LogLevel  string `mapstructure:"log_level"`
	GinMode   string `mapstructure:"gin_mode"`
	PageTitle string `mapstructure:"page_title"`
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("assets_dir", ".")
	v.SetDefault("log_level", "info")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("page_title", "")
}

// Load reads configuration into a Config. An empty cfgFile searches the
// working directory for config.yaml; a missing search result is not an error.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// PORT is what most hosts inject.
	if err := v.BindEnv("port", "PORTFOLIO_PORT", "PORT"); err != nil {
		return Config{}, fmt.Errorf("bind port env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	}
	return fmt.Errorf("invalid gin_mode %q: want %q, %q or %q",
		c.GinMode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
}
