// Package config holds the environment configuration of the companion
// command. The library itself takes everything through recently.Host;
// nothing here leaks into the public API.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	XbelFile       string   // explicit bookmark file path (optional, empty = XDG resolution)
	RemotePrefixes []string // path prefixes treated as network mounts
	MaxEntries     int      // trim the printed list (0 = unlimited)
}

// fileConfig mirrors the optional YAML config file.
type fileConfig struct {
	XbelFile       string   `yaml:"xbel_file"`
	RemotePrefixes []string `yaml:"remote_prefixes"`
	MaxEntries     int      `yaml:"max_entries"`
}

// Load reads configuration from the environment, honoring a .env file
// and an optional YAML file named by RECENTLY_CONFIG. Environment values
// win over file values.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:   getenv("RECENTLY_LOG_LEVEL", "info"),
		PrettyLog:  mustBool("RECENTLY_PRETTY_LOG", true),
		XbelFile:   getenv("RECENTLY_XBEL_FILE", ""),
		MaxEntries: getenvInt("RECENTLY_MAX_ENTRIES", 0),
	}

	if path := os.Getenv("RECENTLY_CONFIG"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			log.Printf("config file %s ignored: %v", path, err)
		}
	}

	return cfg
}

// applyFile merges the YAML file into cfg without overriding values that
// came from the environment.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config yaml: %w", err)
	}

	if c.XbelFile == "" {
		c.XbelFile = fc.XbelFile
	}
	if c.MaxEntries == 0 {
		c.MaxEntries = fc.MaxEntries
	}
	if len(fc.RemotePrefixes) > 0 {
		c.RemotePrefixes = fc.RemotePrefixes
	}

	return nil
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
