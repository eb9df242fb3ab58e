// Package logger provides a configured zerolog logger.
package logger

import (
	"errors"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

type stackTracer interface{ StackTrace() pkgerrors.StackTrace }

// New returns the service logger writing JSON lines to stdout.
// Call sites should use .Stack() on error events to include stacks.
func New(serviceName string) zerolog.Logger {
	return NewWithWriter(os.Stdout, serviceName)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, serviceName string) zerolog.Logger {
	// Store drivers wrap errors with pkg/errors, usually under a StorageError.
	zerolog.ErrorStackMarshaler = func(err error) interface{} {
		return zpkgerrors.MarshalStack(withStack(err))
	}

	return zerolog.New(w).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}

// withStack returns the first error in err's chain that carries a stack,
// or err wrapped with the caller's stack when none does.
func withStack(err error) error {
	var st stackTracer
	if errors.As(err, &st) {
		if e, ok := st.(error); ok {
			return e
		}
	}
	return pkgerrors.WithStack(err)
}
