package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort             int    `mapstructure:"APP_PORT"`
	DatabasePath        string `mapstructure:"DATABASE_PATH"`
	RetrievalURL        string `mapstructure:"RETRIEVAL_URL"`
	RetrievalDownMarker string `mapstructure:"RETRIEVAL_DOWN_MARKER"`
	DefaultAPIBase      string `mapstructure:"DEFAULT_API_BASE"`
	LLMModel            string `mapstructure:"LLM_MODEL"`
	LogLevel            string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "./data/dbchat.db")
	viper.SetDefault("RETRIEVAL_URL", "http://localhost:8093")
	// The retrieval service signals a dead database cursor inside an
	// otherwise successful stream with this exact marker.
	viper.SetDefault("RETRIEVAL_DOWN_MARKER", "2055: Cursor is not connected")
	viper.SetDefault("DEFAULT_API_BASE", "https://api.moonshot.cn/v1")
	viper.SetDefault("LLM_MODEL", "moonshot-v1-128k")
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
