package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Database    DatabaseConfig    `mapstructure:"database"`
	Translation TranslationConfig `mapstructure:"translation"`
	Practice    PracticeConfig    `mapstructure:"practice"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type TranslationConfig struct {
	MyMemoryURL   string `mapstructure:"mymemory_url"`
	LibreURL      string `mapstructure:"libre_url"`
	DictionaryURL string `mapstructure:"dictionary_url"`
	TimeoutSec    int    `mapstructure:"timeout_seconds"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

type PracticeConfig struct {
	WordCount int `mapstructure:"word_count"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/remword")
	}

	v.SetDefault("database.path", filepath.Join("data", "remword.db"))
	v.SetDefault("translation.mymemory_url", "https://api.mymemory.translated.net")
	v.SetDefault("translation.libre_url", "https://libretranslate.de")
	v.SetDefault("translation.dictionary_url", "https://api.dictionaryapi.dev")
	v.SetDefault("translation.timeout_seconds", 15)
	v.SetDefault("translation.retry_attempts", 2)
	v.SetDefault("practice.word_count", 10)

	// Endpoint overrides come from the environment only, not the config file
	if err := v.BindEnv("translation.mymemory_url", "REMWORD_MYMEMORY_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind REMWORD_MYMEMORY_URL environment variable: %w", err)
	}
	if err := v.BindEnv("translation.libre_url", "REMWORD_LIBRE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind REMWORD_LIBRE_URL environment variable: %w", err)
	}
	if err := v.BindEnv("translation.dictionary_url", "REMWORD_DICTIONARY_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind REMWORD_DICTIONARY_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}
