// Package config loads application configuration from YAML files and the
// environment, and validates it with struct tags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderConfig holds optional file overrides for Load.
type LoaderConfig struct {
	// ConfigFile is an explicit YAML config path. Empty means search.
	ConfigFile string
	// EnvFile is an explicit .env path. Empty means search.
	EnvFile string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load populates cfg for a service: YAML config first, then .env, then
// process environment variables, later sources overriding earlier ones.
func Load(serviceName string, cfg any, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	if lc.ConfigFile == "" {
		lc.ConfigFile = findFirst(
			fmt.Sprintf("./cmd/%s/config.yml", serviceName),
			"./config.yml",
		)
	}
	if lc.EnvFile == "" {
		lc.EnvFile = findFirst(
			fmt.Sprintf(".env.%s", serviceName),
			".env",
		)
	}

	v := viper.New()

	if lc.ConfigFile != "" && exists(lc.ConfigFile) {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", lc.ConfigFile, err)
		}
	}

	if lc.EnvFile != "" && exists(lc.EnvFile) {
		if err := godotenv.Load(lc.EnvFile); err != nil {
			return fmt.Errorf("config: load %s: %w", lc.EnvFile, err)
		}
	}

	// Viper only sees environment variables for keys it was told about, so
	// bind every variable under both its flat and nested spellings.
	bindEnv(v)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal for service %s: %w", serviceName, err)
	}
	return nil
}

// bindEnv maps process environment variables onto viper keys.
// API_KEY becomes both "api_key" and "api.key"; TRACING_ENDPOINT becomes
// "tracing_endpoint", "tracing.endpoint", and so on.
func bindEnv(v *viper.Viper) {
	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok || key == "" {
			continue
		}

		lower := strings.ToLower(key)
		v.Set(lower, value)
		if strings.Contains(lower, "_") {
			v.Set(strings.ReplaceAll(lower, "_", "."), value)

			// Progressive nesting: TRACING_OTLP_ENDPOINT also binds
			// tracing.otlp_endpoint for structs with compound field names.
			parts := strings.Split(lower, "_")
			for i := 1; i < len(parts); i++ {
				v.Set(strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"), value)
			}
		}
	}
}

func findFirst(paths ...string) string {
	for _, path := range paths {
		if exists(path) {
			return path
		}
	}
	return ""
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
