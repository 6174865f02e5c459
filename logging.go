package veogo

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger constructs a timestamped zerolog.Logger at the given level.
// Unknown levels fall back to info; a nil writer means stderr.
func NewLogger(level string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
