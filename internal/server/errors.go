package server

import "errors"

// errNoListenAddress is returned when the configuration names no HTTP
// address to bind, so there is nothing to run.
var errNoListenAddress = errors.New("no listen address configured")
