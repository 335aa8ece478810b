package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so that JSON config files can carry durations
// as human-readable strings ("30s", "1h").
type Duration time.Duration

// UnmarshalJSON parses either a duration string or a raw nanosecond number.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	switch v := value.(type) {
	case float64:
		*d = Duration(time.Duration(v))
		return nil
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", v, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return errors.New("invalid duration value in JSON config")
	}
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags, so that a
// config file can use snake_case keys and string durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		AllowedEmails []string `json:"allowed_emails"`
	} `json:"app"`
	Storage struct {
		DatabaseURI string `json:"database_uri"`
	} `json:"storage"`
	Server struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`
}

// parseJSON reads the JSON config file at path and converts it into a
// *StructuredConfig suitable for merging with the other sources.
func parseJSON(path string) (*StructuredConfig, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading JSON config file: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err := json.Unmarshal(contents, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error parsing JSON config file: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			AllowedEmails: jsonCfg.App.AllowedEmails,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DatabaseURI},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.Address,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}, nil
}
