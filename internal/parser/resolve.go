package parser

import (
	"slices"
	"strings"

	"github.com/footprint-tools/argp/internal/template"
	"github.com/footprint-tools/argp/internal/token"
)

// scope holds the templates a token is resolved against. active is the chain
// of matched subcommands from the top level down to the innermost one.
type scope struct {
	options     []*template.Option
	subcommands []*template.Subcommand
	active      []*template.Subcommand
}

func (s *scope) innermost() *template.Subcommand {
	if len(s.active) == 0 {
		return nil
	}
	return s.active[len(s.active)-1]
}

// subcommand resolves a regular token. The descendants of the innermost
// active subcommand are searched first, then the whole top-level tree. The
// returned chain leads from the top level to the match; nested reports
// whether the match came from the active subcommand.
func (s *scope) subcommand(value string) (chain []*template.Subcommand, nested bool) {
	name := strings.ToLower(value)

	if cur := s.innermost(); cur != nil {
		if path := findSubcommand(name, cur.Subcommands); path != nil {
			chain = make([]*template.Subcommand, 0, len(s.active)+len(path))
			chain = append(chain, s.active...)
			return append(chain, path...), true
		}
	}

	return findSubcommand(name, s.subcommands), false
}

// findSubcommand searches subcommands level by level: the names of a list
// are compared before the descendants of any of its entries, so a direct
// match always wins over a deeper one.
func findSubcommand(name string, subcommands []*template.Subcommand) []*template.Subcommand {
	for _, sub := range subcommands {
		if slices.Contains(sub.Names, name) {
			return []*template.Subcommand{sub}
		}
	}

	for _, sub := range subcommands {
		if path := findSubcommand(name, sub.Subcommands); path != nil {
			return append([]*template.Subcommand{sub}, path...)
		}
	}
	return nil
}

// option resolves an option token against the options of the active
// subcommands, innermost first, then against the global options.
func (s *scope) option(tok token.Token) *template.Option {
	for i := len(s.active) - 1; i >= 0; i-- {
		if opt := matchOption(tok, s.active[i].Options); opt != nil {
			return opt
		}
	}
	return matchOption(tok, s.options)
}

func matchOption(tok token.Token, options []*template.Option) *template.Option {
	name := strings.ToLower(tok.Name())

	switch tok.Type {
	case token.LongOption:
		return findLong(name, options)
	case token.ShortOption:
		if len(name) != 1 {
			return nil
		}
		return findShort(name[0], options)
	case token.SwitchOption:
		if len(name) == 1 {
			if opt := findShort(name[0], options); opt != nil {
				return opt
			}
		}
		return findLong(name, options)
	default:
		return nil
	}
}

func findLong(name string, options []*template.Option) *template.Option {
	for _, opt := range options {
		for _, n := range opt.LongNames {
			if n == name {
				return opt
			}
		}
	}
	return nil
}

func findShort(name byte, options []*template.Option) *template.Option {
	for _, opt := range options {
		for _, n := range opt.ShortNames {
			if n == name {
				return opt
			}
		}
	}
	return nil
}

// subcommandNames lists the names a regular token could have meant: the
// children of the innermost active subcommand and the top-level names.
func (s *scope) subcommandNames() []string {
	var names []string
	if cur := s.innermost(); cur != nil {
		for _, sub := range cur.Subcommands {
			names = append(names, sub.Names...)
		}
	}
	for _, sub := range s.subcommands {
		names = append(names, sub.Names...)
	}
	return names
}

// optionNames lists the long names visible in the current scope, spelled
// with the prefix of tok.
func (s *scope) optionNames(tok token.Token) []string {
	prefix := "--"
	if tok.Type == token.SwitchOption {
		prefix = "/"
	}

	var names []string
	add := func(options []*template.Option) {
		for _, opt := range options {
			for _, n := range opt.LongNames {
				names = append(names, prefix+n)
			}
		}
	}

	for i := len(s.active) - 1; i >= 0; i-- {
		add(s.active[i].Options)
	}
	add(s.options)

	return names
}
