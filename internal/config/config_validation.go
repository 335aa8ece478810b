package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultTokenDuration  = time.Hour
	defaultRequestTimeout = 30 * time.Second
	defaultTokenIssuer    = "vaultkeep"
)

// validate checks that the merged configuration carries everything the
// server cannot run without and fills in defaults for optional values.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN", ErrRequiredConfigMissing))
	}
	if c.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key", ErrRequiredConfigMissing))
	}

	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.App.TokenDuration <= 0 {
		c.App.TokenDuration = defaultTokenDuration
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = defaultTokenIssuer
	}

	return errors.Join(errs...)
}
