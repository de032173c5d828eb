package dispatchers

import "github.com/footprint-tools/argp/internal/template"

// RootSpec, GroupSpec and CommandSpec describe the nodes of the command
// tree. Options become option templates of the node; a command's Params,
// Defaults and Variadic become its subcommand template.
type RootSpec struct {
	Name    string
	Summary string
	Usage   string
	Options []*template.Option
}

type GroupSpec struct {
	Name    string
	Parent  *DispatchNode
	Summary string
	Usage   string
	Options []*template.Option
}

type CommandSpec struct {
	Name    string
	Aliases []string
	Parent  *DispatchNode
	Summary string
	Usage   string
	Options []*template.Option

	// Params names the positional values. The last len(Defaults) of them
	// are optional.
	Params   []string
	Defaults []string
	Variadic template.Variadicity

	Action   CommandFunc
	Category CommandCategory
}
