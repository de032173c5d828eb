package dispatchers

import (
	"sort"

	"github.com/footprint-tools/argp/internal/parser"
)

// FindSimilarCommands returns up to three names (or aliases) of node's
// children that are close to input.
func FindSimilarCommands(input string, node *DispatchNode) []string {
	if node == nil || node.Children == nil {
		return nil
	}

	var names []string
	for name, child := range node.Children {
		names = append(names, name)
		names = append(names, child.Aliases...)
	}
	sort.Strings(names)

	return parser.Suggest(input, names)
}

// CollectAllCommands recursively collects the command paths below node,
// sorted.
func CollectAllCommands(node *DispatchNode, prefix string) []string {
	if node == nil {
		return nil
	}

	var commands []string

	for name, child := range node.Children {
		fullPath := name
		if prefix != "" {
			fullPath = prefix + " " + name
		}
		commands = append(commands, fullPath)
		commands = append(commands, CollectAllCommands(child, fullPath)...)
	}

	sort.Strings(commands)
	return commands
}
