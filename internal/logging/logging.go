// In file: internal/logging/logging.go
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel keeps diagnostics out of the way of the chat on stdout.
const DefaultLevel = "warn"

// Setup points the global zerolog logger at w in console format and sets the
// global level. An empty level means DefaultLevel.
func Setup(w io.Writer, level string) error {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}

	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true})
	return nil
}
