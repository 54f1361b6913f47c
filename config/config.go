package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// EnvSettings names the environment variable that points at an alternate
// settings file.
const EnvSettings = "JOTTER_SETTINGS"

const defaultPath = ".config"

// Config represents the configuration settings of the application. It is
// constructed once at startup and never mutated afterwards.
type Config struct {
	Port      int    `json:"port"`
	Database  string `json:"database"`
	SecretKey string `json:"secret_key"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// Default returns the settings used when no settings file overrides them.
// The secret key is a development placeholder; generate a real one with
// the admin tool for anything reachable from a network.
func Default() Config {
	return Config{
		Port:      9090,
		Database:  "./database/jotter.db",
		SecretKey: "development key",
		Username:  "admin",
		Password:  "default",
	}
}

// LoadConfig loads the configuration from .config, or from the file named
// by JOTTER_SETTINGS when that is set. Fields absent from the file keep
// their defaults. A missing .config is fine; a missing JOTTER_SETTINGS
// file is an error, since the operator asked for it explicitly.
func LoadConfig() (Config, error) {
	path := defaultPath
	fromEnv := false
	if p := os.Getenv(EnvSettings); p != "" {
		path = p
		fromEnv = true
	}

	c := Default()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !fromEnv {
			return c, nil
		}
		return Config{}, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Config{}, fmt.Errorf("error reading %s: %w", path, err)
	}

	err = json.Unmarshal(data, &c)
	if err != nil {
		return Config{}, fmt.Errorf("error unmarshalling %s: %w", path, err)
	}
	return c, nil
}
