package app

import (
	"os"

	"golang.org/x/term"

	"github.com/footprint-tools/argp/internal/config"
	"github.com/footprint-tools/argp/internal/domain"
	"github.com/footprint-tools/argp/internal/log"
	"github.com/footprint-tools/argp/internal/paths"
	"github.com/footprint-tools/argp/internal/ui"
	"github.com/footprint-tools/argp/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Log options
	LogEnabled bool
	LogLevel   string
	LogPath    string

	// Style options. Color is "auto", "always" or "never".
	Color       string
	StyleConfig map[string]string
}

// DefaultOptions returns the options stored in the config file.
func DefaultOptions() Options {
	cfg, err := config.GetAll()
	if err != nil {
		log.Warn("app: %v", err)
	}

	return Options{
		LogEnabled:  cfg["enable_log"] == "true",
		LogLevel:    cfg["log_level"],
		LogPath:     paths.LogFilePath(),
		Color:       cfg["color"],
		StyleConfig: cfg,
	}
}

// New creates a new Application with all dependencies wired up. The logger
// also becomes the global logger.
func New(opts Options) *domain.Application {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		l, err := log.New(opts.LogPath, log.ParseLevel(opts.LogLevel))
		if err == nil {
			log.SetDefault(l)
			logger = l
		}
	}

	InitStyle(opts)

	return &domain.Application{
		Config: config.NewProvider(),
		Logger: logger,
		Output: NewOutput(opts),
		Styler: style.NewStyler(),
	}
}

// InitStyle turns styling on or off for opts.Color. "auto" styles only when
// stdout is a terminal.
func InitStyle(opts Options) {
	style.Init(style.Resolve(opts.Color, term.IsTerminal(int(os.Stdout.Fd()))), opts.StyleConfig)
}

// NewOutput creates the stdout writer with the pager settings of opts.
func NewOutput(opts Options) domain.OutputWriter {
	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	writerOpts = append(writerOpts, ui.WithConfigGetter(config.Get))

	return ui.NewWriter(writerOpts...)
}

// NewForTesting creates an Application with a NopLogger, no styling and no
// pager.
func NewForTesting() *domain.Application {
	return &domain.Application{
		Config: config.NewProvider(),
		Logger: log.NopLogger{},
		Output: ui.NewWriter(ui.WithPagerDisabled()),
		Styler: style.NopStyler{},
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	return nil
}
