// Package help renders the help message for a set of templates.
//
// The layout with the default customizer:
//
//	  -o, --output <file>                   Write the result to file.
//	      --level <min> [max=10]            Limit the level.
//	    get <key>                           Print the value of key.
//	    remote                              Manage remotes.
//
//	remote:
//	  -f, --force                           Overwrite existing remotes.
//	    add <name> <url>                    Add a remote.
//
// Messages are meant for preview.Format: names, defaults and descriptions
// are sanitized, so a "$" in them is printed as is, and the customizer's
// styles are added as shorthand escape codes.
package help

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/footprint-tools/argp/internal/preview"
	"github.com/footprint-tools/argp/internal/template"
)

// Customizer controls indentation, wrapping and styles of a help message.
type Customizer struct {
	ShortNamesIndent  int
	LongNamesIndent   int
	SubcommandIndent  int
	DescriptionIndent int
	DescriptionWidth  int

	// TemplateStyle and DescriptionStyle are shorthand escape codes.
	TemplateStyle    string
	DescriptionStyle string

	// MicrosoftStyle prints /O and /OPTION instead of -o and --option.
	MicrosoftStyle bool
}

// DefaultCustomizer returns the default layout.
func DefaultCustomizer() Customizer {
	return Customizer{
		ShortNamesIndent:  2,
		LongNamesIndent:   6,
		SubcommandIndent:  4,
		DescriptionIndent: 40,
		DescriptionWidth:  40,
	}
}

// Message validates the templates and renders their help message. Nested
// options and subcommands get a section per subcommand, titled with the
// names leading to it.
func Message(options []*template.Option, subcommands []*template.Subcommand, c Customizer) (string, error) {
	if err := template.Validate(options, subcommands); err != nil {
		return "", err
	}

	var b strings.Builder

	for _, opt := range options {
		b.WriteString(optionEntry(opt, c))
	}
	if len(options) > 0 && len(subcommands) > 0 {
		b.WriteString("\n")
	}
	for _, sub := range subcommands {
		b.WriteString(subcommandEntry(sub, c))
	}
	for _, sub := range subcommands {
		nested(&b, sub, "", c)
	}

	return b.String(), nil
}

func nested(b *strings.Builder, sub *template.Subcommand, path string, c Customizer) {
	if len(sub.Options) == 0 && len(sub.Subcommands) == 0 {
		return
	}

	if path != "" {
		path += " "
	}
	path += sub.Name()

	b.WriteString("\n" + preview.Sanitize(path) + ":\n")

	for _, opt := range sub.Options {
		b.WriteString(optionEntry(opt, c))
	}
	if len(sub.Options) > 0 && len(sub.Subcommands) > 0 {
		b.WriteString("\n")
	}
	for _, child := range sub.Subcommands {
		b.WriteString(subcommandEntry(child, c))
	}
	for _, child := range sub.Subcommands {
		nested(b, child, path, c)
	}
}

func optionEntry(opt *template.Option, c Customizer) string {
	var b strings.Builder

	shorts := shortNames(opt, c)
	longs := longNames(opt, c)

	if shorts != "" {
		b.WriteString(spaces(c.ShortNamesIndent))
		b.WriteString(shorts)
	}
	if longs != "" {
		if shorts == "" {
			b.WriteString(spaces(c.LongNamesIndent))
		} else {
			b.WriteString(", ")
		}
		b.WriteString(longs)
	}
	if p := params(opt.Params, opt.Defaults, opt.Variadic, c); p != "" {
		b.WriteString(" " + p)
	}

	line := b.String()
	return line + description(width(line), opt.Description, c)
}

func subcommandEntry(sub *template.Subcommand, c Customizer) string {
	var b strings.Builder

	b.WriteString(spaces(c.SubcommandIndent))
	for i, name := range sub.Names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(styled(name, c.TemplateStyle))
	}
	if p := params(sub.Params, sub.Defaults, sub.Variadic, c); p != "" {
		b.WriteString(" " + p)
	}

	line := b.String()
	return line + description(width(line), sub.Description, c)
}

func shortNames(opt *template.Option, c Customizer) string {
	names := make([]string, len(opt.ShortNames))
	for i, n := range opt.ShortNames {
		if c.MicrosoftStyle {
			names[i] = "/" + styled(strings.ToUpper(string(n)), c.TemplateStyle)
		} else {
			names[i] = "-" + styled(string(n), c.TemplateStyle)
		}
	}
	return strings.Join(names, ", ")
}

func longNames(opt *template.Option, c Customizer) string {
	names := make([]string, len(opt.LongNames))
	for i, n := range opt.LongNames {
		if c.MicrosoftStyle {
			names[i] = "/" + styled(strings.ToUpper(n), c.TemplateStyle)
		} else {
			names[i] = "--" + styled(n, c.TemplateStyle)
		}
	}
	return strings.Join(names, ", ")
}

// params renders parameters as <required>, [optional=default] and a
// trailing <variadic>... or [variadic]...
func params(names, defaults []string, variadic template.Variadicity, c Customizer) string {
	parts := make([]string, 0, len(names)+1)

	for i, name := range names {
		if c.MicrosoftStyle {
			name = strings.ToUpper(name)
		}
		name = styled(name, c.TemplateStyle)
		last := i == len(names)-1

		switch {
		case last && variadic == template.OneOrMore:
			parts = append(parts, "<"+name+">...")
		case last && variadic == template.ZeroOrMore:
			parts = append(parts, "["+name+"]...")
		case template.IsOptional(names, defaults, i):
			if d := defaults[template.DefaultIndex(names, defaults, i)]; d != "" {
				name += "=" + styled(d, c.TemplateStyle)
			}
			parts = append(parts, "["+name+"]")
		default:
			parts = append(parts, "<"+name+">")
		}
	}

	if len(names) == 0 && variadic.IsVariadic() {
		parts = append(parts, "...")
	}

	return strings.Join(parts, " ")
}

// description wraps text and places it at the description column, on the
// template line if it fits before the column, else on the following lines.
// The result always ends with a newline.
func description(lineWidth int, text string, c Customizer) string {
	if text == "" {
		return "\n"
	}

	wrapped := text
	if c.DescriptionWidth > 0 {
		wrapped = ansi.Wrap(text, c.DescriptionWidth, "")
	}
	lines := strings.Split(wrapped, "\n")

	var b strings.Builder

	if lineWidth < c.DescriptionIndent {
		b.WriteString(spaces(c.DescriptionIndent - lineWidth))
		b.WriteString(styled(lines[0], c.DescriptionStyle) + "\n")
		lines = lines[1:]
	} else {
		b.WriteString("\n")
	}

	for _, line := range lines {
		b.WriteString(spaces(c.DescriptionIndent))
		b.WriteString(styled(line, c.DescriptionStyle) + "\n")
	}

	return b.String()
}

// width is the display width of a template line without escape codes.
func width(line string) int {
	return ansi.StringWidth(preview.Format(line, true))
}

func spaces(n int) string {
	return strings.Repeat(" ", max(n, 0))
}

// styled sanitizes text from the templates and wraps it in style.
func styled(text, style string) string {
	text = preview.Sanitize(text)
	if style == "" || text == "" {
		return text
	}
	return style + text + "$0"
}
