package dispatchers

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/footprint-tools/argp/internal/domain"
	"github.com/footprint-tools/argp/internal/help"
	"github.com/footprint-tools/argp/internal/ui"
	"github.com/footprint-tools/argp/internal/ui/style"
)

var (
	output   domain.OutputWriter = ui.NewWriter()
	outputMu sync.RWMutex
)

// SetOutput sets where help is written.
func SetOutput(w domain.OutputWriter) {
	outputMu.Lock()
	defer outputMu.Unlock()
	output = w
}

// Output returns where help is written.
func Output() domain.OutputWriter {
	outputMu.RLock()
	defer outputMu.RUnlock()
	return output
}

// commandDisplayOrder defines explicit ordering within categories.
// Commands not listed appear alphabetically after listed ones.
var commandDisplayOrder = map[string]int{
	"parse":        1,
	"tokens":       2,
	"help":         1,
	"version":      2,
	"config get":   1,
	"config set":   2,
	"config unset": 3,
	"config list":  4,
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(usage string) string {
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' || c == '-' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

func collectLeafCommands(node *DispatchNode, out *[]*DispatchNode) {
	if node.Action != nil {
		*out = append(*out, node)
		return
	}

	for _, child := range node.Children {
		collectLeafCommands(child, out)
	}
}

func sortByDisplayOrder(nodes []*DispatchNode) {
	sort.Slice(nodes, func(i, j int) bool {
		nameI := strings.Join(nodes[i].Path[1:], " ")
		nameJ := strings.Join(nodes[j].Path[1:], " ")
		orderI, hasI := commandDisplayOrder[nameI]
		orderJ, hasJ := commandDisplayOrder[nameJ]
		if hasI && hasJ {
			return orderI < orderJ
		}
		if hasI {
			return true
		}
		if hasJ {
			return false
		}
		return nameI < nameJ
	})
}

// optionsHelp renders options with the help package. Descriptions start at
// column 32 so the section lines up with the command lists.
func optionsHelp(node *DispatchNode) string {
	c := help.DefaultCustomizer()
	c.ShortNamesIndent = 3
	c.LongNamesIndent = 7
	c.DescriptionIndent = 32
	c.DescriptionWidth = 48

	text, err := help.Message(node.Options(), nil, c)
	if err != nil {
		return ""
	}
	return style.Escapes(text)
}

// HelpText renders the help for node.
func HelpText(node *DispatchNode, root *DispatchNode) string {
	var out strings.Builder
	name := root.Name

	if node == root {
		fmt.Fprintf(&out, "%s - %s\n\n", name, node.Summary)

		out.WriteString(style.Header("USAGE") + "\n   ")
		out.WriteString(formatUsage(node.Usage))
		out.WriteString("\n\n")

		grouped := make(map[CommandCategory][]*DispatchNode)

		var leaves []*DispatchNode
		for _, child := range root.Children {
			collectLeafCommands(child, &leaves)
		}

		for _, cmd := range leaves {
			grouped[cmd.Category] = append(grouped[cmd.Category], cmd)
		}

		for _, cat := range categoryOrder {
			cmds := grouped[cat]
			if len(cmds) == 0 {
				continue
			}

			out.WriteString(cat.String())
			out.WriteString("\n")

			sortByDisplayOrder(cmds)
			for _, cmd := range cmds {
				displayName := strings.Join(cmd.Path[1:], " ")
				fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-26s", displayName)), cmd.Summary)
			}
			out.WriteString("\n")
		}

		if opts := optionsHelp(node); opts != "" {
			out.WriteString(style.Header("OPTIONS") + "\n")
			out.WriteString(opts)
			out.WriteString("\n")
		}

		fmt.Fprintf(&out, "See '%s help <command>' for detailed help on a specific command.\n", name)
		return out.String()
	}

	out.WriteString(strings.Join(node.Path, " "))
	if node.Summary != "" {
		out.WriteString(" - ")
		out.WriteString(node.Summary)
	}
	out.WriteString("\n\n")

	out.WriteString(style.Header("USAGE") + "\n   ")
	out.WriteString(formatUsage(node.Usage))
	out.WriteString("\n\n")

	if len(node.Aliases) > 0 {
		fmt.Fprintf(&out, "%s\n   %s\n\n", style.Header("ALIASES"), strings.Join(node.Aliases, ", "))
	}

	if len(node.Children) > 0 {
		out.WriteString(style.Header("COMMANDS") + "\n")

		children := make([]*DispatchNode, 0, len(node.Children))
		for _, child := range node.Children {
			children = append(children, child)
		}
		sortByDisplayOrder(children)

		for _, child := range children {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", child.Name)), child.Summary)
		}
		out.WriteString("\n")
	}

	if opts := optionsHelp(node); opts != "" {
		out.WriteString(style.Header("OPTIONS") + "\n")
		out.WriteString(opts)
		out.WriteString("\n")
	}

	fmt.Fprintf(&out, "See '%s help <command>' to read about a specific command.\n", name)
	return out.String()
}

// HelpAction writes the help for node through the pager.
func HelpAction(node *DispatchNode, root *DispatchNode) CommandFunc {
	return func(args []string, flags *ParsedFlags) error {
		Output().Pager(HelpText(node, root))
		return nil
	}
}
