package config

import "os"

// FromEnv applies environment variable overrides on top of cfg.
// Unset variables leave the config value untouched.
func FromEnv(cfg *Config) *Config {
	if cfg == nil {
		cfg = Default()
	}
	if v := os.Getenv("HRIS_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("HRIS_DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("HRIS_ADMIN_USERNAME"); v != "" {
		cfg.Auth.AdminUsername = v
	}
	if v := os.Getenv("HRIS_ADMIN_PASSWORD"); v != "" {
		cfg.Auth.AdminPassword = v
	}
	return cfg
}
