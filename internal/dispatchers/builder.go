package dispatchers

import "github.com/footprint-tools/argp/internal/template"

// NewNode creates a node and links it, and its template, below parent.
// A nil parent makes a root.
func NewNode(
	name string,
	parent *DispatchNode,
	summary string,
	usage string,
	tmpl *template.Subcommand,
	action CommandFunc,
) *DispatchNode {
	if tmpl == nil {
		tmpl = &template.Subcommand{}
	}
	if len(tmpl.Names) == 0 {
		tmpl.Names = []string{name}
	}
	if tmpl.Description == "" {
		tmpl.Description = summary
	}

	node := &DispatchNode{
		Name:     name,
		Aliases:  tmpl.Names[1:],
		Summary:  summary,
		Usage:    usage,
		Action:   action,
		Children: make(map[string]*DispatchNode),
		Template: tmpl,
	}

	if parent == nil {
		node.Path = []string{name}
		node.root = node
		node.index = make(map[*template.Subcommand]*DispatchNode)
		return node
	}

	node.Path = append(append([]string(nil), parent.Path...), name)
	node.root = parent.root
	parent.Children[name] = node
	parent.Template.Subcommands = append(parent.Template.Subcommands, tmpl)
	node.root.index[tmpl] = node

	return node
}

func Root(spec RootSpec) *DispatchNode {
	return NewNode(
		spec.Name,
		nil,
		spec.Summary,
		spec.Usage,
		&template.Subcommand{Options: spec.Options},
		nil,
	)
}

func Group(spec GroupSpec) *DispatchNode {
	return NewNode(
		spec.Name,
		spec.Parent,
		spec.Summary,
		spec.Usage,
		&template.Subcommand{Options: spec.Options},
		nil,
	)
}

func Command(spec CommandSpec) *DispatchNode {
	node := NewNode(
		spec.Name,
		spec.Parent,
		spec.Summary,
		spec.Usage,
		&template.Subcommand{
			Names:    append([]string{spec.Name}, spec.Aliases...),
			Params:   spec.Params,
			Defaults: spec.Defaults,
			Variadic: spec.Variadic,
			Options:  spec.Options,
		},
		spec.Action,
	)

	node.Category = spec.Category
	return node
}

// ResolveNode follows path (names or aliases) from root. It returns nil if
// a name is unknown.
func ResolveNode(root *DispatchNode, path []string) *DispatchNode {
	current := root

	for _, p := range path {
		child := current.child(p)
		if child == nil {
			return nil
		}
		current = child
	}

	return current
}

func (n *DispatchNode) child(name string) *DispatchNode {
	if child, ok := n.Children[name]; ok {
		return child
	}
	for _, child := range n.Children {
		for _, alias := range child.Aliases {
			if alias == name {
				return child
			}
		}
	}
	return nil
}
