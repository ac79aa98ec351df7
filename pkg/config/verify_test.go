package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseConfig returns a config that passes validateRequiredFields; tests mutate it
func baseConfig() *Config {
	cfg := &Config{}
	cfg.Server.Listen = ":8080"
	cfg.Server.Timeout = 30 * time.Second
	cfg.Menu = MenuConfig{
		Title:     "아주대 식당 메뉴",
		PageURL:   "https://www.ajou.ac.kr/kr/life/food.do",
		Timeout:   10 * time.Second,
		UserAgent: "Menubot/1.0",
		Sources: []SourceConfig{
			{Name: "기숙사식당", ArticleID: "63"},
			{Name: "교직원식당", ArticleID: "221904"},
		},
	}
	cfg.Schedule = ScheduleConfig{Time: "12:00", Timezone: "Asia/Seoul"}
	cfg.Kakao = KakaoConfig{
		SendURL:  "https://kapi.kakao.com/v2/api/talk/memo/default/send",
		AuthURL:  "https://kauth.kakao.com/oauth/authorize",
		TokenURL: "https://kauth.kakao.com/oauth/token",
		Timeout:  10 * time.Second,
	}
	return cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "missing server listen",
			mutate:  func(cfg *Config) { cfg.Server.Listen = "" },
			wantErr: true,
			errMsg:  "server.listen is required",
		},
		{
			name:    "missing server timeout",
			mutate:  func(cfg *Config) { cfg.Server.Timeout = 0 },
			wantErr: true,
			errMsg:  "server.timeout is required",
		},
		{
			name:    "no menu sources",
			mutate:  func(cfg *Config) { cfg.Menu.Sources = nil },
			wantErr: true,
			errMsg:  "menu.sources must have at least one entry",
		},
		{
			name: "client id without token url",
			mutate: func(cfg *Config) {
				cfg.Kakao.ClientID = "test-client"
				cfg.Kakao.TokenURL = ""
			},
			wantErr: true,
			errMsg:  "kakao.token_url is required when client_id is set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(cfg)
			err := VerifyAgainstEmbeddedSchema(cfg)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid minimal config",
			mutate: func(*Config) {},
		},
		{
			name:    "missing menu page url",
			mutate:  func(cfg *Config) { cfg.Menu.PageURL = "" },
			wantErr: true,
			errMsg:  "menu.page_url is required",
		},
		{
			name:    "source missing article id",
			mutate:  func(cfg *Config) { cfg.Menu.Sources[1].ArticleID = "" },
			wantErr: true,
			errMsg:  "menu.sources[1] is missing name or article_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(cfg)
			err := validateRequiredFields(cfg)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	// verify schema can be marshaled to JSON
	data, err := schema.MarshalJSON()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// verify it contains expected fields
	schemaStr := string(data)
	assert.Contains(t, schemaStr, "Config")
	assert.Contains(t, schemaStr, "server")
	assert.Contains(t, schemaStr, "sources")
	assert.Contains(t, schemaStr, "kakao")
}
