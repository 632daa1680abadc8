// Package config loads the optional YAML configuration file.
//
// # Format
//
//	resources:
//	  - type: database/sql.Tx
//	    method: Rollback
//	  - type: github.com/example/broker.Session
//	    method: Shutdown
//	arg-escape: false
//
// Resource entries are appended to the registry after the built-in io.Closer
// entry and any -resources flag entries. The arg-escape key, when present,
// overrides the -arg-escape flag.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Resource is one configured resource type entry.
type Resource struct {
	Type   string `yaml:"type"`
	Method string `yaml:"method"`
}

// Config is the file-level configuration.
type Config struct {
	Resources []Resource `yaml:"resources"`
	ArgEscape *bool      `yaml:"arg-escape"`
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	for i, res := range cfg.Resources {
		if res.Type == "" || res.Method == "" {
			return nil, fmt.Errorf("config %s: resource entry %d needs both type and method", path, i)
		}
	}

	return &cfg, nil
}
