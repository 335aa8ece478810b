package config

import "errors"

// ErrRequiredConfigMissing is returned by validation when a setting the
// server cannot run without was supplied by no configuration source.
var ErrRequiredConfigMissing = errors.New("required config value is missing")
