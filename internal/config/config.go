package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Environment string `mapstructure:"environment" yaml:"environment"`

	// Directory holding canonical <patch>.json documents
	CanonicalDir string `mapstructure:"canonical_dir" yaml:"canonical_dir"`

	// HS256 secret for admin tokens on the load endpoint
	JWTSecret string `mapstructure:"jwt_secret" yaml:"jwt_secret"`

	Database   DatabaseConfig   `mapstructure:"database" yaml:"database"`
	Loader     LoaderConfig     `mapstructure:"loader" yaml:"loader"`
	DataDragon DataDragonConfig `mapstructure:"ddragon" yaml:"ddragon"`
	Server     ServerConfig     `mapstructure:"server" yaml:"server"`
	Watch      WatchConfig      `mapstructure:"watch" yaml:"watch"`
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
}

type DatabaseConfig struct {
	// "postgres" or "sqlite"
	Driver string `mapstructure:"driver" yaml:"driver"`
	URL    string `mapstructure:"url" yaml:"url"`
}

type LoaderConfig struct {
	// Delete spell-change indices beyond the reloaded list length
	PruneStaleSpellChanges bool `mapstructure:"prune_stale_spell_changes" yaml:"prune_stale_spell_changes"`
	// Take a per-patch advisory lock before writing
	SerializePatchLoads bool `mapstructure:"serialize_patch_loads" yaml:"serialize_patch_loads"`
}

type DataDragonConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	// Pinned version; empty means latest
	Version     string        `mapstructure:"version" yaml:"version"`
	Dir         string        `mapstructure:"dir" yaml:"dir"`
	Concurrency int           `mapstructure:"concurrency" yaml:"concurrency"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port" yaml:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

type WatchConfig struct {
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	JSON  bool   `mapstructure:"json" yaml:"json"`
	File  string `mapstructure:"file" yaml:"file"`

	Rotation LogRotationConfig `mapstructure:"rotation" yaml:"rotation"`
}

type LogRotationConfig struct {
	MaxSize    int  `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int  `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int  `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool `mapstructure:"compress" yaml:"compress"`
}

var envFiles = []string{".env", ".env.local"}

// Load builds the configuration from defaults, an optional YAML file, .env
// files and the process environment, in increasing precedence. Nested keys
// map to upper-cased environment names, e.g. database.url -> DATABASE_URL.
func Load(path string) (*Config, error) {
	for _, envFile := range envFiles {
		// Missing .env files are fine
		_ = godotenv.Load(envFile)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")

	if path != "" {
		v.SetConfigFile(path)
		for _, envFile := range envFiles {
			_ = godotenv.Load(filepath.Join(filepath.Dir(path), envFile))
		}
	} else {
		v.SetConfigName("aramalyze")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if c.DataDragon.Concurrency < 1 {
		return fmt.Errorf("ddragon.concurrency must be at least 1")
	}
	return nil
}
