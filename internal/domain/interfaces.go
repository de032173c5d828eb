package domain

import "io"

// ConfigProvider reads and writes the argp config file. Keys are validated
// against ConfigKeys by Set and Unset; Get accepts any key.
type ConfigProvider interface {
	Get(key string) (string, bool)
	GetAll() (map[string]string, error)
	Set(key, value string) error
	Unset(key string) error
}

// Logger receives printf-style messages. The parser logs every resolution
// at debug level, so implementations must be cheap when the level is off.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)

	// Close flushes and releases the log file, if any.
	Close() error
}

// OutputWriter is where commands print their results. Parse results and
// previews go through Printf; help text goes through Pager.
type OutputWriter interface {
	io.Writer

	Printf(format string, args ...any) (int, error)
	Println(args ...any) (int, error)

	// Pager shows content through the configured pager when stdout is a
	// terminal and the content is taller than the screen. Otherwise it
	// prints content as is.
	Pager(content string)
}

// Styler colours text for the terminal. With styling disabled every method
// returns its input unchanged, except Escapes, which strips the shorthand
// escape codes instead of translating them.
type Styler interface {
	Enabled() bool

	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string
	Header(text string) string

	// Escapes translates shorthand escape codes such as "$r" or "$0".
	Escapes(text string) string
}

// Application holds the process-wide dependencies built by app.New.
type Application struct {
	Config ConfigProvider
	Logger Logger
	Output OutputWriter
	Styler Styler
}
