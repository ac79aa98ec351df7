package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen   string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		AdminKey string        `yaml:"admin_key" json:"admin_key" jsonschema:"description=Key for admin endpoints (can use environment variable)"`
		BaseURL  string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Externally visible base URL for OAuth redirects"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:menubot.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Menu MenuConfig `yaml:"menu" json:"menu" jsonschema:"description=Cafeteria menu source configuration"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Notification schedule configuration"`

	Kakao KakaoConfig `yaml:"kakao" json:"kakao" jsonschema:"description=Kakao delivery configuration"`
}

// SourceConfig describes a single cafeteria page on the university food board
type SourceConfig struct {
	Name      string `yaml:"name" json:"name" jsonschema:"required,description=Display name of the cafeteria"`
	ArticleID string `yaml:"article_id" json:"article_id" jsonschema:"required,description=Board article number of the cafeteria page"`
}

// MenuConfig holds the upstream menu page settings
type MenuConfig struct {
	Title     string         `yaml:"title" json:"title" jsonschema:"default=아주대 식당 메뉴,description=Digest header title"`
	PageURL   string         `yaml:"page_url" json:"page_url" jsonschema:"default=https://www.ajou.ac.kr/kr/life/food.do,description=University food board URL"`
	Timeout   time.Duration  `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Fetch timeout per source"`
	UserAgent string         `yaml:"user_agent" json:"user_agent" jsonschema:"default=Menubot/1.0,description=User agent for menu page requests"`
	Sources   []SourceConfig `yaml:"sources" json:"sources" jsonschema:"description=Ordered list of cafeterias to include in the digest"`
}

// ScheduleConfig holds the daily notification trigger settings
type ScheduleConfig struct {
	Time     string `yaml:"time" json:"time" jsonschema:"default=12:00,description=Daily notification time in HH:MM"`
	Timezone string `yaml:"timezone" json:"timezone" jsonschema:"default=Asia/Seoul,description=IANA timezone for the schedule and digest dates"`
}

// KakaoConfig holds Kakao API settings for digest delivery and OAuth
type KakaoConfig struct {
	ClientID string        `yaml:"client_id" json:"client_id" jsonschema:"description=Kakao REST API key (can use environment variable)"`
	SendURL  string        `yaml:"send_url" json:"send_url" jsonschema:"default=https://kapi.kakao.com/v2/api/talk/memo/default/send,description=Memo send API endpoint"`
	AuthURL  string        `yaml:"auth_url" json:"auth_url" jsonschema:"default=https://kauth.kakao.com/oauth/authorize,description=OAuth consent endpoint"`
	TokenURL string        `yaml:"token_url" json:"token_url" jsonschema:"default=https://kauth.kakao.com/oauth/token,description=OAuth token endpoint"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Kakao API request timeout"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:8080"
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:menubot.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for menu
	if cfg.Menu.Title == "" {
		cfg.Menu.Title = "아주대 식당 메뉴"
	}
	if cfg.Menu.PageURL == "" {
		cfg.Menu.PageURL = "https://www.ajou.ac.kr/kr/life/food.do"
	}
	if cfg.Menu.Timeout == 0 {
		cfg.Menu.Timeout = 10 * time.Second
	}
	if cfg.Menu.UserAgent == "" {
		cfg.Menu.UserAgent = "Menubot/1.0"
	}
	if len(cfg.Menu.Sources) == 0 {
		cfg.Menu.Sources = []SourceConfig{
			{Name: "기숙사식당", ArticleID: "63"},
			{Name: "교직원식당", ArticleID: "221904"},
		}
	}

	// set defaults for schedule
	if cfg.Schedule.Time == "" {
		cfg.Schedule.Time = "12:00"
	}
	if cfg.Schedule.Timezone == "" {
		cfg.Schedule.Timezone = "Asia/Seoul"
	}

	// set defaults for kakao
	if cfg.Kakao.SendURL == "" {
		cfg.Kakao.SendURL = "https://kapi.kakao.com/v2/api/talk/memo/default/send"
	}
	if cfg.Kakao.AuthURL == "" {
		cfg.Kakao.AuthURL = "https://kauth.kakao.com/oauth/authorize"
	}
	if cfg.Kakao.TokenURL == "" {
		cfg.Kakao.TokenURL = "https://kauth.kakao.com/oauth/token"
	}
	if cfg.Kakao.Timeout == 0 {
		cfg.Kakao.Timeout = 10 * time.Second
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate menu config
	if cfg.Menu.PageURL == "" {
		return fmt.Errorf("menu.page_url is required")
	}
	if cfg.Menu.Timeout < time.Second {
		return fmt.Errorf("menu timeout must be at least 1 second")
	}
	seen := make(map[string]struct{}, len(cfg.Menu.Sources))
	for i, src := range cfg.Menu.Sources {
		if src.Name == "" {
			return fmt.Errorf("menu.sources[%d].name is required", i)
		}
		if src.ArticleID == "" {
			return fmt.Errorf("menu.sources[%d].article_id is required", i)
		}
		if _, ok := seen[src.Name]; ok {
			return fmt.Errorf("menu.sources has duplicate name %q", src.Name)
		}
		seen[src.Name] = struct{}{}
	}

	// validate schedule config
	var hour, minute int
	if _, err := fmt.Sscanf(cfg.Schedule.Time, "%d:%d", &hour, &minute); err != nil {
		return fmt.Errorf("schedule.time %q is not HH:MM", cfg.Schedule.Time)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("schedule.time %q is out of range", cfg.Schedule.Time)
	}
	if _, err := time.LoadLocation(cfg.Schedule.Timezone); err != nil {
		return fmt.Errorf("schedule.timezone %q is invalid: %w", cfg.Schedule.Timezone, err)
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetAdminKey returns the admin endpoint key, empty when admin access is disabled
func (c *Config) GetAdminKey() string {
	return c.Server.AdminKey
}

// GetBaseURL returns the externally visible base URL
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}

// GetMenuConfig returns the menu source configuration
func (c *Config) GetMenuConfig() MenuConfig {
	return c.Menu
}

// GetKakaoConfig returns the Kakao delivery configuration
func (c *Config) GetKakaoConfig() KakaoConfig {
	return c.Kakao
}

// Location resolves the configured timezone. Load validates the name, so this
// only fails on a config that bypassed Load.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Schedule.Timezone)
}
