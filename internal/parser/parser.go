// Package parser matches command-line arguments against option and
// subcommand templates.
//
// Parsing runs in three steps. The templates are validated, the arguments
// are tokenized (see package token), then the tokens are matched left to
// right:
//
//   - a regular token names a subcommand. Once matched, the subcommand
//     becomes active: its nested subcommands and options are preferred
//     until a regular token only matches outside of it;
//   - an option token names an option of the active subcommands or a
//     global option. Options never change the active subcommand;
//   - "--" ends matching. It and every following token are returned as
//     unparsed passthrough entries.
//
// After a match the following regular tokens are collected as values of the
// matched template.
package parser

import (
	"fmt"

	"github.com/footprint-tools/argp/internal/domain"
	"github.com/footprint-tools/argp/internal/log"
	"github.com/footprint-tools/argp/internal/preview"
	"github.com/footprint-tools/argp/internal/template"
	"github.com/footprint-tools/argp/internal/token"
	"github.com/footprint-tools/argp/internal/usage"
)

// Policy decides what happens with input that does not match the templates.
type Policy int

const (
	// PolicyFail stops parsing and returns a *usage.ArgumentError.
	PolicyFail Policy = iota
	// PolicyRecord adds an entry with a failure Status and keeps parsing.
	PolicyRecord
)

func (p Policy) String() string {
	switch p {
	case PolicyFail:
		return "fail"
	case PolicyRecord:
		return "record"
	default:
		return "unknown"
	}
}

// ParsePolicy converts "fail" or "record" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "fail":
		return PolicyFail, nil
	case "record":
		return PolicyRecord, nil
	default:
		return PolicyFail, fmt.Errorf("unknown policy %q", s)
	}
}

type config struct {
	unrecognizedSubcommand Policy
	unrecognizedOption     Policy
	notEnoughValues        Policy
	logger                 domain.Logger
}

// Option configures Parse.
type Option func(*config)

// WithUnrecognizedSubcommand sets the policy for regular tokens that match
// no subcommand. The default is PolicyRecord.
func WithUnrecognizedSubcommand(p Policy) Option {
	return func(c *config) { c.unrecognizedSubcommand = p }
}

// WithUnrecognizedOption sets the policy for option tokens that match no
// option. The default is PolicyFail.
func WithUnrecognizedOption(p Policy) Option {
	return func(c *config) { c.unrecognizedOption = p }
}

// WithNotEnoughValues sets the policy for templates that did not get all
// their required values. The default is PolicyFail.
func WithNotEnoughValues(p Policy) Option {
	return func(c *config) { c.notEnoughValues = p }
}

// WithLogger logs every resolution at debug level.
func WithLogger(l domain.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Parse matches args (without the program name) against the templates.
//
// Invalid templates are reported as *template.ConfigError before any
// argument is looked at. Input that does not fit the templates is handled
// according to the policies; failures are reported as *usage.ArgumentError.
//
// The templates are only read. Entries of the result point into them.
func Parse(args []string, options []*template.Option, subcommands []*template.Subcommand, opts ...Option) ([]Argument, error) {
	if err := template.Validate(options, subcommands); err != nil {
		return nil, err
	}

	cfg := config{
		unrecognizedSubcommand: PolicyRecord,
		unrecognizedOption:     PolicyFail,
		notEnoughValues:        PolicyFail,
		logger:                 log.NopLogger{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	tokens := token.Tokenize(args)
	p := &parser{
		cfg:     cfg,
		tokens:  tokens,
		cmdLine: token.CommandLine(tokens),
		scope:   scope{options: options, subcommands: subcommands},
	}

	return p.run()
}

// Tokens tokenizes args the same way Parse does. Token ranges point into
// token.CommandLine of the result.
func Tokens(args []string) []token.Token {
	return token.Tokenize(args)
}

type parser struct {
	cfg     config
	tokens  []token.Token
	cmdLine string
	cursor  int
	scope   scope
	result  []Argument
}

func (p *parser) run() ([]Argument, error) {
	for p.cursor < len(p.tokens) {
		tok := p.tokens[p.cursor]

		var err *usage.ArgumentError
		switch {
		case tok.Type == token.Regular:
			err = p.subcommand(tok)
		case tok.Type.IsOption():
			err = p.option(tok)
		default:
			p.passthrough()
		}

		if err != nil {
			p.cfg.logger.Debug("parser: %s", err.Message)
			return nil, err
		}
	}

	return p.result, nil
}

func (p *parser) subcommand(tok token.Token) *usage.ArgumentError {
	start := p.cursor
	p.cursor++

	chain, nested := p.scope.subcommand(tok.Value)
	if chain == nil {
		suggestions := Suggest(tok.Value, p.scope.subcommandNames())
		p.scope.active = nil

		if p.cfg.unrecognizedSubcommand == PolicyFail {
			return usage.NewArgumentError(
				usage.ErrUnrecognizedSubcommand,
				fmt.Sprintf("unrecognized subcommand '%s'", tok.Value),
				p.cmdLine, tok.Range, suggestions...,
			)
		}

		p.cfg.logger.Debug("parser: %q matches no subcommand", tok.Value)
		p.result = append(p.result, Argument{
			Token:       tok,
			Status:      StatusUnrecognizedSubcommand,
			Parsed:      true,
			Suggestions: suggestions,
		})
		return nil
	}

	sub := chain[len(chain)-1]
	p.scope.active = chain
	p.cfg.logger.Debug("parser: %q -> subcommand %s (nested: %t, depth: %d)", tok.Value, sub.Name(), nested, len(chain))

	values, ok := collect(&p.cursor, p.tokens, sub.Params, sub.Defaults, sub.Variadic)
	arg := Argument{
		Subcommand: sub,
		Values:     values,
		Token:      tok,
		Status:     StatusValid,
		Parsed:     true,
	}
	if !ok {
		return p.shortfall(arg, start, "subcommand '"+sub.Name()+"'",
			required(sub.Params, sub.Defaults, sub.Variadic))
	}

	p.result = append(p.result, arg)
	return nil
}

func (p *parser) option(tok token.Token) *usage.ArgumentError {
	start := p.cursor
	p.cursor++

	opt := p.scope.option(tok)
	if opt == nil {
		var suggestions []string
		if len(tok.Name()) > 1 {
			suggestions = Suggest(tok.Value, p.scope.optionNames(tok))
		}

		if p.cfg.unrecognizedOption == PolicyFail {
			return usage.NewArgumentError(
				usage.ErrUnrecognizedOption,
				fmt.Sprintf("unrecognized option '%s'", tok.Value),
				p.cmdLine, tok.Range, suggestions...,
			)
		}

		p.cfg.logger.Debug("parser: %q matches no option", tok.Value)
		p.result = append(p.result, Argument{
			Token:       tok,
			Status:      StatusUnrecognizedOption,
			Parsed:      true,
			Suggestions: suggestions,
		})
		return nil
	}

	p.cfg.logger.Debug("parser: %q -> option %s", tok.Value, opt.Name())

	values, ok := collect(&p.cursor, p.tokens, opt.Params, opt.Defaults, opt.Variadic)
	arg := Argument{
		Option: opt,
		Values: values,
		Token:  tok,
		Status: StatusValid,
		Parsed: true,
	}
	if !ok {
		return p.shortfall(arg, start, "option '"+tok.Value+"'",
			required(opt.Params, opt.Defaults, opt.Variadic))
	}

	p.result = append(p.result, arg)
	return nil
}

// shortfall handles a template that got fewer values than it requires. The
// reported range covers the matched token and the values taken after it.
func (p *parser) shortfall(arg Argument, start int, what string, want int) *usage.ArgumentError {
	got := p.cursor - start - 1

	if p.cfg.notEnoughValues == PolicyFail {
		last := p.tokens[p.cursor-1]
		r := preview.Range{
			Begin:   arg.Token.Range.Begin,
			Length:  last.Range.End() - arg.Token.Range.Begin,
			Pointer: arg.Token.Range.Begin,
		}
		return usage.NewArgumentError(
			usage.ErrNotEnoughValues,
			fmt.Sprintf("not enough values for %s: expected at least %d, got %d", what, want, got),
			p.cmdLine, r,
		)
	}

	p.cfg.logger.Debug("parser: %s got %d of %d values", what, got, want)
	arg.Status = StatusNotEnoughValues
	p.result = append(p.result, arg)
	return nil
}

// passthrough adds the remaining tokens as unparsed entries.
func (p *parser) passthrough() {
	p.cfg.logger.Debug("parser: passing %d tokens through", len(p.tokens)-p.cursor)

	for ; p.cursor < len(p.tokens); p.cursor++ {
		p.result = append(p.result, Argument{
			Token:  p.tokens[p.cursor],
			Status: StatusValid,
		})
	}
}
