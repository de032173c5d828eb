package dispatchers

import "github.com/footprint-tools/argp/internal/template"

type CommandFunc func(args []string, flags *ParsedFlags) error

type Resolution struct {
	Node     *DispatchNode
	Args     []string
	Flags    *ParsedFlags
	Execute  CommandFunc
	ExitCode int
}

// DispatchNode is a command of argp's own command line. Every node owns the
// template the parser matches it with.
type DispatchNode struct {
	Name     string
	Aliases  []string
	Path     []string
	Summary  string
	Usage    string
	Children map[string]*DispatchNode
	Action   CommandFunc
	Category CommandCategory

	// Template holds the node's names, values, local options and nested
	// subcommands. The root's template is only a container: its Options
	// are the global options and its Subcommands the top-level commands.
	Template *template.Subcommand

	root  *DispatchNode
	index map[*template.Subcommand]*DispatchNode
}

// Options returns the options local to the node, or the global options for
// the root.
func (n *DispatchNode) Options() []*template.Option {
	return n.Template.Options
}

// IsRoot reports whether n is the root of its tree.
func (n *DispatchNode) IsRoot() bool {
	return n.root == n
}

// within reports whether n is ancestor itself or one of its descendants.
func (n *DispatchNode) within(ancestor *DispatchNode) bool {
	if len(n.Path) < len(ancestor.Path) {
		return false
	}
	for i, name := range ancestor.Path {
		if n.Path[i] != name {
			return false
		}
	}
	return true
}
