package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App      `json:"app" yaml:"app"`
	Server   *Server   `json:"server" yaml:"server"`
	Database *Database `json:"database" yaml:"database"`
	Redis    *Redis    `json:"redis" yaml:"redis"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// New reads the yaml file at filename. A missing file is not fatal: the
// defaults plus environment overrides are enough to run locally.
func New(filename string) *Config {
	// .env is optional
	_ = godotenv.Load()

	conf := Default()

	content, err := os.ReadFile(filename)
	if err != nil && !os.IsNotExist(err) {
		panic(err)
	}
	if err == nil {
		if err := yaml.Unmarshal(content, conf); err != nil {
			panic(fmt.Sprintf("parse %s: %v", filename, err))
		}
	}

	conf.applyEnv()
	return conf
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		App:    &App{Env: "dev", Name: "BrainRotBGone"},
		Server: &Server{Http: 8000},
		Database: &Database{
			Driver: DriverSQLite,
			Path:   "brainrotbgone.db",
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("APP_ENV"); v != "" {
		c.App.Env = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Http = port
		}
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		c.Database.Dsn = v
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
