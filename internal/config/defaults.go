package config

import (
	"time"

	"github.com/spf13/viper"
)

func Default() Config {
	return Config{
		Environment:  "development",
		CanonicalDir: "data/canonical",
		Database: DatabaseConfig{
			Driver: "postgres",
			URL:    "",
		},
		Loader: LoaderConfig{
			PruneStaleSpellChanges: false,
			SerializePatchLoads:    true,
		},
		DataDragon: DataDragonConfig{
			BaseURL:     "https://ddragon.leagueoflegends.com",
			Version:     "",
			Dir:         "data/ddragon",
			Concurrency: 8,
			Timeout:     20 * time.Second,
		},
		Server: ServerConfig{
			Port:            "8080",
			ShutdownTimeout: 30 * time.Second,
		},
		Watch: WatchConfig{
			Interval: 60 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
			File:  "",
			Rotation: LogRotationConfig{
				MaxSize:    128,
				MaxBackups: 5,
				MaxAge:     16,
				Compress:   false,
			},
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("environment", d.Environment)
	v.SetDefault("canonical_dir", d.CanonicalDir)
	v.SetDefault("jwt_secret", d.JWTSecret)

	v.SetDefault("database.driver", d.Database.Driver)
	v.SetDefault("database.url", d.Database.URL)

	v.SetDefault("loader.prune_stale_spell_changes", d.Loader.PruneStaleSpellChanges)
	v.SetDefault("loader.serialize_patch_loads", d.Loader.SerializePatchLoads)

	v.SetDefault("ddragon.base_url", d.DataDragon.BaseURL)
	v.SetDefault("ddragon.version", d.DataDragon.Version)
	v.SetDefault("ddragon.dir", d.DataDragon.Dir)
	v.SetDefault("ddragon.concurrency", d.DataDragon.Concurrency)
	v.SetDefault("ddragon.timeout", d.DataDragon.Timeout)

	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)

	v.SetDefault("watch.interval", d.Watch.Interval)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.rotation.max_size", d.Log.Rotation.MaxSize)
	v.SetDefault("log.rotation.max_backups", d.Log.Rotation.MaxBackups)
	v.SetDefault("log.rotation.max_age", d.Log.Rotation.MaxAge)
	v.SetDefault("log.rotation.compress", d.Log.Rotation.Compress)
}
