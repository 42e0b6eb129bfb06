package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server" json:"server"`
	Storage   StorageConfig   `yaml:"storage" json:"storage"`
	Auth      AuthConfig      `yaml:"auth" json:"auth"`
	Directory DirectoryConfig `yaml:"directory" json:"directory"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

type StorageConfig struct {
	DataDir string `yaml:"data_dir" json:"data_dir"`
}

type AuthConfig struct {
	AdminUsername string `yaml:"admin_username" json:"admin_username"`
	AdminPassword string `yaml:"admin_password" json:"admin_password"`
}

type DirectoryConfig struct {
	Employees []EmployeeConfig `yaml:"employees" json:"employees"`
}

type EmployeeConfig struct {
	ID         string `yaml:"id" json:"id"`
	Name       string `yaml:"name" json:"name"`
	Email      string `yaml:"email" json:"email"`
	Role       string `yaml:"role" json:"role"`
	Department string `yaml:"department" json:"department"`
	Status     string `yaml:"status" json:"status"`
	LastSeen   string `yaml:"last_seen" json:"last_seen"`
}

func (c *Config) ApplyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8085"
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = "data"
	}
	if c.Auth.AdminUsername == "" {
		c.Auth.AdminUsername = "admin"
	}
	if c.Auth.AdminPassword == "" {
		c.Auth.AdminPassword = "admin123"
	}
}

func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Config
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	r.ApplyDefaults()
	return &r, nil
}
