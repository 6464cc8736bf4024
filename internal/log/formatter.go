package log

import (
	"errors"
	"strings"
	"time"
)

// DefaultFormat is the format string used when none is configured.
const DefaultFormat = "{ascTime}: [{level}] - {message}"

var errNoMessage = errors.New("missing {message} in format string")

// Formatter turns a log entry into a line of text. The format string may use
// the following variables, each enclosed in braces:
//
//	ascTime - the time of the entry (RFC 3339)
//	level   - the level of the entry
//	message - the message itself (required)
type Formatter struct {
	formatStr string
	now       func() time.Time
}

// DefaultFormatter creates a Formatter using DefaultFormat.
func DefaultFormatter() Formatter {
	return NewFormatter(DefaultFormat)
}

// NewFormatter creates a Formatter with a user-defined format string.
func NewFormatter(formatStr string) Formatter {
	return Formatter{formatStr, time.Now}
}

// Validate returns an error if the format string cannot produce output.
func (f Formatter) Validate() error {
	if !strings.Contains(f.formatStr, "{message}") {
		return errNoMessage
	}
	return nil
}

// Format returns the formatted line, including a trailing newline.
func (f Formatter) Format(level string, message string) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	replacer := strings.NewReplacer(
		"{ascTime}", f.now().Format(time.RFC3339),
		"{level}", level,
		"{message}", message,
	)
	return replacer.Replace(f.formatStr) + "\n", nil
}
