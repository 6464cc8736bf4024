package log

import (
	"fmt"
	"io"
	"os"
)

// Console is a Sink which writes formatted lines to a terminal stream.
type Console struct {
	out       io.Writer
	formatter Formatter
}

// NewConsole creates a Console which writes to out. A nil writer selects
// standard error, which keeps event output on standard output readable.
func NewConsole(out io.Writer, formatter Formatter) *Console {
	if out == nil {
		out = os.Stderr
	}
	return &Console{out, formatter}
}

// ConsoleWrite writes the formatted output to the console.
func (c *Console) ConsoleWrite(level string, message string) error {
	formattedMsg, err := c.formatter.Format(level, message)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if _, err = io.WriteString(c.out, formattedMsg); err != nil {
		return fmt.Errorf("write to console: %w", err)
	}
	return nil
}

func (c *Console) Error(message string) error   { return c.ConsoleWrite("ERROR", message) }
func (c *Console) Warn(message string) error    { return c.ConsoleWrite("WARN", message) }
func (c *Console) Info(message string) error    { return c.ConsoleWrite("INFO", message) }
func (c *Console) Debug(message string) error   { return c.ConsoleWrite("DEBUG", message) }
func (c *Console) Verbose(message string) error { return c.ConsoleWrite("VERBOSE", message) }
