package log

import (
	"io"
	"os"
)

// Level is the --log-level value.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format is the --log-format value. JSON suits CI pipelines that collect
// importer output; text is the terminal default.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config is filled from the settings.log_level and settings.log_format keys.
type Config struct {
	Level  Level  `mapstructure:"level"`
	Format Format `mapstructure:"format"`
	// Output defaults to stderr so stdout stays free for the run summary.
	Output io.Writer `mapstructure:"-"`
}

// DefaultConfig logs info and above as text to stderr.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Format: FormatText,
		Output: os.Stderr,
	}
}
