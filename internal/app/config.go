package app

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/shrimpsizemoose/trekker/logger"
)

type Config struct {
	Server struct {
		Port string `toml:"port"`
	} `toml:"server"`

	Admin struct {
		Password string `toml:"password"`
		Secret   string `toml:"secret"`
	} `toml:"admin"`

	Database struct {
		DSN  string `toml:"dsn"`
		Name string `toml:"name"`
	} `toml:"database"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	// Secrets and the store DSN may come from the environment instead of
	// the config file.
	if v := os.Getenv("RETAKE_MONGO_URL"); v != "" {
		config.Database.DSN = v
	}
	if v := os.Getenv("RETAKE_ADMIN_PASSWORD"); v != "" {
		config.Admin.Password = v
	}
	if v := os.Getenv("RETAKE_ADMIN_SECRET"); v != "" {
		config.Admin.Secret = v
	}

	if config.Server.Port == "" {
		return nil, fmt.Errorf("Server port is not specified in config, use a value like :8080")
	}
	if config.Database.Name == "" {
		config.Database.Name = "bubt"
	}

	logger.Debug.Printf("Loaded config: server=%s db=%s", config.Server.Port, config.Database.Name)

	return &config, nil
}
