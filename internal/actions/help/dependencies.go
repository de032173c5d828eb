package help

import (
	"github.com/footprint-tools/argp/internal/config"
	"github.com/footprint-tools/argp/internal/dispatchers"
	"github.com/footprint-tools/argp/internal/sample"
	"github.com/footprint-tools/argp/internal/template"
)

type Deps struct {
	BuildTree func() *dispatchers.DispatchNode
	Templates func() ([]*template.Option, []*template.Subcommand)
	ConfigGet func(string) (string, bool)
	Pager     func(string)
}

// The command tree is built by package cli, which imports this package.
var buildTreeFunc func() *dispatchers.DispatchNode

// SetBuildTreeFunc registers the command tree builder. Package cli calls it
// from init.
func SetBuildTreeFunc(f func() *dispatchers.DispatchNode) {
	buildTreeFunc = f
}

func DefaultDeps() Deps {
	return Deps{
		BuildTree: buildTreeFunc,
		Templates: sample.Templates,
		ConfigGet: config.Get,
		Pager:     func(s string) { dispatchers.Output().Pager(s) },
	}
}
