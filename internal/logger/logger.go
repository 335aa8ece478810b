// Package logger wraps zerolog with the constructors and context helpers the
// rest of vaultkeep expects.
//
// Logger embeds zerolog.Logger, so the whole zerolog API is available on the
// wrapper. Handlers obtain request-scoped loggers through FromRequest after
// the trace-id middleware has attached one; everything else receives a
// *Logger at construction time.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger to let the application attach helper methods
// without shadowing the upstream API.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the process-wide JSON logger writing to stdout.
//
// Every entry carries a "role" field (e.g. "vaultkeep-server", "vaultcheck")
// so logs from different binaries can be told apart, a timestamp, and a
// "func" field holding the fully qualified caller name instead of zerolog's
// default file:line form. The global level is Debug.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger clones the receiver so callers can add fields (trace id,
// request attributes) without mutating the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger that middleware stored in the
// request context via zerolog's WithContext.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx. When ctx carries none,
// zerolog hands back its global logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
