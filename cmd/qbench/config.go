package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// envAuditDB overrides the config file's audit_db when set.
const envAuditDB = "QBENCH_AUDIT_DB"

type config struct {
	// AuditDB is the SQLite file for the run log. Empty disables recording.
	AuditDB string `yaml:"audit_db"`
	// Debug enables debug logging unless the --debug flag says otherwise.
	Debug bool `yaml:"debug"`
}

// loadConfig reads the YAML config at path. An empty path returns the zero
// config.
func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
