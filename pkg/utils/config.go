package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	TMDB     TMDBConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	URL            string
	Host           string
	Port           string
	Name           string
	User           string
	Password       string
	MaxConns       int32
	MigrateOnStart bool
}

// DSN returns DATABASE_URL when set, otherwise a keyword/value string built from the parts.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}

	dsn := fmt.Sprintf("user=%s password=%s dbname=%s sslmode=disable host=%s",
		c.User, c.Password, c.Name, c.Host)
	if c.Port != "" {
		dsn += " port=" + c.Port
	}
	return dsn
}

type TMDBConfig struct {
	APIKey         string
	BaseURL        string
	ImageBaseURL   string
	Language       string
	Timeout        time.Duration
	MaxConcurrency int
	RatePerSecond  float64
	RateBurst      int
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "streamview")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("MIGRATE_ON_START", false)
	viper.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	viper.SetDefault("TMDB_IMAGE_BASE_URL", "https://image.tmdb.org/t/p")
	viper.SetDefault("TMDB_LANGUAGE", "fr-FR")
	viper.SetDefault("TMDB_TIMEOUT_SECONDS", 10)
	viper.SetDefault("TMDB_MAX_CONCURRENCY", 10)
	viper.SetDefault("TMDB_RATE_PER_SECOND", 40)
	viper.SetDefault("TMDB_RATE_BURST", 20)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// .env is optional, real deployments pass plain environment variables
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			URL:            viper.GetString("DATABASE_URL"),
			Host:           viper.GetString("DB_HOST"),
			Port:           viper.GetString("DB_PORT"),
			Name:           viper.GetString("DB_NAME"),
			User:           viper.GetString("DB_USER"),
			Password:       viper.GetString("DB_PASS"),
			MaxConns:       viper.GetInt32("DB_MAX_CONNS"),
			MigrateOnStart: viper.GetBool("MIGRATE_ON_START"),
		},
		TMDB: TMDBConfig{
			APIKey:         viper.GetString("TMDB_API_KEY"),
			BaseURL:        viper.GetString("TMDB_BASE_URL"),
			ImageBaseURL:   viper.GetString("TMDB_IMAGE_BASE_URL"),
			Language:       viper.GetString("TMDB_LANGUAGE"),
			Timeout:        time.Duration(viper.GetInt("TMDB_TIMEOUT_SECONDS")) * time.Second,
			MaxConcurrency: viper.GetInt("TMDB_MAX_CONCURRENCY"),
			RatePerSecond:  viper.GetFloat64("TMDB_RATE_PER_SECOND"),
			RateBurst:      viper.GetInt("TMDB_RATE_BURST"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.TMDB.APIKey == "" {
		return errors.New("TMDB_API_KEY is required")
	}
	if c.Database.URL == "" && c.Database.Host == "" {
		return errors.New("DATABASE_URL or DB_HOST is required")
	}
	if c.TMDB.MaxConcurrency < 1 {
		return fmt.Errorf("TMDB_MAX_CONCURRENCY must be positive, got %d", c.TMDB.MaxConcurrency)
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
