package actions

import (
	"fmt"

	"github.com/footprint-tools/argp/internal/app"
	"github.com/footprint-tools/argp/internal/config"
	"github.com/footprint-tools/argp/internal/domain"
	"github.com/footprint-tools/argp/internal/log"
	"github.com/footprint-tools/argp/internal/sample"
	"github.com/footprint-tools/argp/internal/template"
)

type actionDependencies struct {
	Printf    func(format string, a ...any) (n int, err error)
	Version   func() string
	Templates func() ([]*template.Option, []*template.Subcommand)
	ConfigGet func(key string) (string, bool)
	Logger    func() domain.Logger
}

func defaultDeps() actionDependencies {
	return actionDependencies{
		Printf:    fmt.Printf,
		Version:   app.CurrentVersion,
		Templates: sample.Templates,
		ConfigGet: config.Get,
		Logger:    log.Default,
	}
}
