package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Database drivers understood by the server.
const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	App      AppConfig      `mapstructure:"app"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	// Port, when set, overrides the port part of Address.
	Port      string `mapstructure:"port"`
	PublicDir string `mapstructure:"public_dir"`
	// IndexFile replaces the embedded landing page when set.
	IndexFile        string        `mapstructure:"index_file"`
	CORSAllowOrigins []string      `mapstructure:"cors_allow_origins"`
	ReadTimeout      time.Duration `mapstructure:"read_timeout"`
	WriteTimeout     time.Duration `mapstructure:"write_timeout"`
	IdleTimeout      time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout  time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	URI    string `mapstructure:"uri"`
	Name   string `mapstructure:"name"`
}

// AppConfig holds domain settings.
type AppConfig struct {
	// Timezone is the IANA zone in which exercise dates are rendered.
	Timezone string `mapstructure:"timezone"`
}

// Location resolves Timezone, falling back to UTC when it is empty.
func (a AppConfig) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(a.Timezone)
}

// LoadConfig reads configuration from path/config.yaml, path/.env and the
// environment. Neither file is required.
func LoadConfig(path string) (config Config, err error) {
	// .env only fills variables that are not already set in the environment.
	if err = godotenv.Load(filepath.Join(path, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	// Names used by earlier deployments of the service.
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")
	_ = v.BindEnv("database.uri", "DATABASE_URI", "ATLAS_URI")

	v.SetDefault("server.address", ":3000")
	v.SetDefault("server.port", "")
	v.SetDefault("server.public_dir", "public")
	v.SetDefault("server.index_file", "")
	v.SetDefault("server.cors_allow_origins", []string{"*"})
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "5s")
	v.SetDefault("database.driver", DriverMongo)
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "exercise_tracker")
	v.SetDefault("app.timezone", "UTC")

	err = v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}

	if config.Server.Port != "" {
		config.Server.Address = ":" + config.Server.Port
	}

	switch config.Database.Driver {
	case DriverMongo, DriverMemory:
	default:
		err = errors.New("database.driver must be \"mongo\" or \"memory\"")
		return
	}

	if _, err = config.App.Location(); err != nil {
		return
	}

	return config, nil
}
