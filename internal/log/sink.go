package log

// Sink receives formatted log lines for each level. Console and File are the
// two Sinks used by Logger.
type Sink interface {
	Error(string) error
	Warn(string) error
	Info(string) error
	Debug(string) error
	Verbose(string) error
}

// write dispatches a message to the Sink method for the given level.
func write(s Sink, level LogLevel, message string) error {
	switch level {
	case ERROR:
		return s.Error(message)
	case WARN:
		return s.Warn(message)
	case INFO:
		return s.Info(message)
	case DEBUG:
		return s.Debug(message)
	default:
		return s.Verbose(message)
	}
}
