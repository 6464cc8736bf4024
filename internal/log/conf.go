package log

import "io"

// LogConf is the logging section of a configuration profile.
type LogConf struct {
	Level  string `toml:"level" yaml:"level"`
	Path   string `toml:"path" yaml:"path"`
	Format string `toml:"format" yaml:"format"`
}

// Logger builds a Logger from the configuration. Empty fields fall back to
// the INFO level, no log file and DefaultFormat.
func (c LogConf) Logger(disableConsole bool) (*Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}
	return NewLogger(level, c.Path, disableConsole, c.formatter())
}

// LoggerTo builds a Logger like Logger, but with console output sent to out
// instead of standard error.
func (c LogConf) LoggerTo(out io.Writer) (*Logger, error) {
	l, err := c.Logger(true)
	if err != nil {
		return nil, err
	}
	l.sinks = append(l.sinks, NewConsole(out, c.formatter()))
	return l, nil
}

func (c LogConf) level() (LogLevel, error) {
	if c.Level == "" {
		return INFO, nil
	}
	return ParseLevel(c.Level)
}

func (c LogConf) formatter() Formatter {
	if c.Format == "" {
		return DefaultFormatter()
	}
	return NewFormatter(c.Format)
}
