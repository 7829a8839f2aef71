package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort           string `mapstructure:"SERVER_PORT"`
	DatabaseURL          string `mapstructure:"DATABASE_URL"`
	ClientOrigin         string `mapstructure:"CLIENT_ORIGIN"`
	DistanceAPIURL       string `mapstructure:"DISTANCE_API_URL"`
	DistanceAPIKey       string `mapstructure:"DISTANCE_API_KEY"`
	QuoteCacheTTLSeconds int    `mapstructure:"QUOTE_CACHE_TTL_SECONDS"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("QUOTE_CACHE_TTL_SECONDS", 60)

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env file is fine; env vars alone can configure us.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No .env file found.")
		} else {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
