package log

import (
	"fmt"
	"os"
)

// File is a Sink which appends formatted lines to a log file.
type File struct {
	logFile   *os.File
	formatter Formatter
}

// OpenFile opens (creating or truncating) the log file at path.
func OpenFile(path string, formatter Formatter) (*File, error) {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &File{logFile, formatter}, nil
}

// FileWrite writes the formatted output to the log file.
func (f *File) FileWrite(level string, message string) error {
	formattedMsg, err := f.formatter.Format(level, message)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if _, err = f.logFile.WriteString(formattedMsg); err != nil {
		return fmt.Errorf("write to log file: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (f *File) Close() error {
	return f.logFile.Close()
}

func (f *File) Error(message string) error   { return f.FileWrite("ERROR", message) }
func (f *File) Warn(message string) error    { return f.FileWrite("WARN", message) }
func (f *File) Info(message string) error    { return f.FileWrite("INFO", message) }
func (f *File) Debug(message string) error   { return f.FileWrite("DEBUG", message) }
func (f *File) Verbose(message string) error { return f.FileWrite("VERBOSE", message) }
