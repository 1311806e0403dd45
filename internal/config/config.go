// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	AWS struct {
		Region   string `yaml:"region"`
		Endpoint string `yaml:"endpoint"`
	} `yaml:"aws"`

	Log struct {
		Path string `yaml:"path"`
	} `yaml:"log"`

	// TableName comes from the TABLE_NAME environment variable. It may be
	// empty at startup: the handler reports the missing configuration per
	// request, after field validation.
	TableName string `yaml:"-"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Log.Path == "" {
		cfg.Log.Path = "/tmp/crear_pelicula.logl"
	}
	cfg.TableName = os.Getenv("TABLE_NAME")
	return cfg, nil
}
