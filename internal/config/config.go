package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrInterval is returned when the generator interval cannot be parsed.
var ErrInterval = errors.New("failed to parse interval from configuration")

type Config struct {
	Env        string           `yaml:"env"`        // Env is the current environment: local, development, production.
	Restaurant RestaurantConfig `yaml:"restaurant"` // Restaurant describes the simulated venue.
	Postgres   PostgresConfig   `yaml:"postgres"`   // Postgres holds the database configuration
	Generator  GeneratorConfig  `yaml:"generator"`  // Generator holds the synthesizer configuration
	Server     ServerConfig     `yaml:"server"`     // Server holds the monitoring server configuration
	Settings   SettingsConfig   `yaml:"settings"`
}

// RestaurantConfig names the simulated venue.
type RestaurantConfig struct {
	Name     string `yaml:"name"`
	Timezone string `yaml:"timezone"`
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host          string `yaml:"host"`           // Host is the database server address.
	Port          string `yaml:"port"`           // Port is the database server port.
	User          string `yaml:"user"`           // User is the database user.
	Password      string `yaml:"password"`       // Password is the database user's password.
	Dbname        string `yaml:"db_name"`        // Dbname is the name of the database.
	MigrationsDir string `yaml:"migrations_dir"` // MigrationsDir holds the goose SQL migrations.
}

// GeneratorConfig controls the daily generation runner.
type GeneratorConfig struct {
	Interval  time.Duration `yaml:"interval"`   // Interval between two maintenance runs.
	StartDate string        `yaml:"start_date"` // StartDate is the first day generated on an empty database.
	Seed      uint64        `yaml:"seed"`       // Seed makes generation reproducible, 0 means random.
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type SettingsConfig struct {
	EnableLogging bool `yaml:"enable_logging"`
}

// MustLoad loads the configuration from the file in CONFIG_PATH (optional) and the environment.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		if errors.Is(err, ErrInterval) {
			panic(ErrInterval.Error())
		}
		panic("config error: " + err.Error())
	}

	return cfg
}

// Load reads the YAML file at configPath, if any, and applies environment overrides on top.
func Load(configPath string) (*Config, error) {
	vpr := viper.New()

	vpr.SetDefault("env", "local")
	vpr.SetDefault("restaurant.name", "Restaurant Dummy")
	vpr.SetDefault("restaurant.timezone", "Australia/Melbourne")
	vpr.SetDefault("postgres.host", "localhost")
	vpr.SetDefault("postgres.port", "5432")
	vpr.SetDefault("postgres.migrations_dir", "migrations")
	vpr.SetDefault("generator.interval", "24h")
	vpr.SetDefault("generator.start_date", "2024-01-01")
	vpr.SetDefault("generator.seed", 0)
	vpr.SetDefault("server.port", 8080)
	vpr.SetDefault("settings.enable_logging", true)

	bindings := map[string]string{
		"env":                  "HESTIA_ENV",
		"restaurant.name":      "HESTIA_RESTAURANT",
		"postgres.host":        "DB_HOST",
		"postgres.port":        "DB_PORT",
		"postgres.user":        "DB_USERNAME",
		"postgres.password":    "DB_PASSWORD",
		"postgres.db_name":     "DB_NAME",
		"generator.interval":   "HESTIA_INTERVAL",
		"generator.seed":       "HESTIA_SEED",
		"generator.start_date": "HESTIA_START_DATE",
	}
	for key, env := range bindings {
		if err := vpr.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}

		vpr.SetConfigFile(configPath)
		if err := vpr.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	interval, err := time.ParseDuration(vpr.GetString("generator.interval"))
	if err != nil || interval <= 0 {
		return nil, ErrInterval
	}

	return &Config{
		Env: vpr.GetString("env"),
		Restaurant: RestaurantConfig{
			Name:     vpr.GetString("restaurant.name"),
			Timezone: vpr.GetString("restaurant.timezone"),
		},
		Postgres: PostgresConfig{
			Host:          vpr.GetString("postgres.host"),
			Port:          vpr.GetString("postgres.port"),
			User:          vpr.GetString("postgres.user"),
			Password:      vpr.GetString("postgres.password"),
			Dbname:        vpr.GetString("postgres.db_name"),
			MigrationsDir: vpr.GetString("postgres.migrations_dir"),
		},
		Generator: GeneratorConfig{
			Interval:  interval,
			StartDate: vpr.GetString("generator.start_date"),
			Seed:      vpr.GetUint64("generator.seed"),
		},
		Server: ServerConfig{
			Port: vpr.GetInt("server.port"),
		},
		Settings: SettingsConfig{
			EnableLogging: vpr.GetBool("settings.enable_logging"),
		},
	}, nil
}
