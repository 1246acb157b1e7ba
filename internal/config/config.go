// Package config holds application settings loaded from file, environment,
// and flags via viper.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type LLMCfg struct {
	Model     string        `mapstructure:"model"`
	ServerURL string        `mapstructure:"server_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type LoggingCfg struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type Config struct {
	DataDir string     `mapstructure:"data_dir"`
	LLM     LLMCfg     `mapstructure:"llm"`
	Logging LoggingCfg `mapstructure:"logging"`
}

var cfg *Config

// Load populates the global config from a viper instance, applying defaults
// for anything the file, environment, or flags do not set.
func Load(v *viper.Viper) error {
	v.SetDefault("data_dir", "data")
	v.SetDefault("llm.model", "mistral")
	v.SetDefault("llm.server_url", "http://localhost:11434")
	v.SetDefault("llm.timeout", "60s")
	v.SetDefault("logging.level", "info")

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	cfg = &c
	return nil
}

// Get returns the loaded config, or a zero config when Load was never called.
func Get() *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	return cfg
}
