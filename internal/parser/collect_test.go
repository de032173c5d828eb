package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argp/internal/template"
	"github.com/footprint-tools/argp/internal/token"
)

func TestCollect(t *testing.T) {
	params := []string{"p1", "p2", "p3"}

	tests := []struct {
		name     string
		args     []string
		params   []string
		defaults []string
		variadic template.Variadicity
		want     []string
		ok       bool
		consumed int
	}{
		{name: "no params", args: []string{"a"}, ok: true},
		{name: "exact", args: []string{"a", "b", "c"}, params: params, want: []string{"a", "b", "c"}, ok: true, consumed: 3},
		{name: "stops at params", args: []string{"a", "b", "c", "d"}, params: params, want: []string{"a", "b", "c"}, ok: true, consumed: 3},
		{name: "stops at option", args: []string{"a", "-x", "c"}, params: params, want: []string{"a"}, consumed: 1},
		{name: "stops at terminator", args: []string{"a", "--", "c"}, params: params, want: []string{"a"}, consumed: 1},
		{name: "nothing provided", params: params, consumed: 0},

		{name: "all defaults", params: params, defaults: []string{"d1", "d2", "d3"}, want: []string{"d1", "d2", "d3"}, ok: true},
		{name: "one of three defaults used", args: []string{"a", "b"}, params: params, defaults: []string{"d1", "d2", "d3"}, want: []string{"a", "b", "d3"}, ok: true, consumed: 2},
		{name: "two defaults, one value", args: []string{"a"}, params: params, defaults: []string{"d2", "d3"}, want: []string{"a", "d2", "d3"}, ok: true, consumed: 1},
		{name: "two defaults, two values", args: []string{"a", "b"}, params: params, defaults: []string{"d2", "d3"}, want: []string{"a", "b", "d3"}, ok: true, consumed: 2},
		{name: "two defaults, three values", args: []string{"a", "b", "c"}, params: params, defaults: []string{"d2", "d3"}, want: []string{"a", "b", "c"}, ok: true, consumed: 3},
		{name: "two defaults, four values", args: []string{"a", "b", "c", "d"}, params: params, defaults: []string{"d2", "d3"}, want: []string{"a", "b", "c"}, ok: true, consumed: 3},
		{name: "two defaults, no value", params: params, defaults: []string{"d2", "d3"}},
		{name: "one default, one value", args: []string{"a"}, params: params, defaults: []string{"d3"}, want: []string{"a"}, consumed: 1},

		{name: "zero or more, none", params: []string{"files"}, variadic: template.ZeroOrMore, ok: true},
		{name: "zero or more, many", args: []string{"a", "b", "c", "d"}, params: []string{"files"}, variadic: template.ZeroOrMore, want: []string{"a", "b", "c", "d"}, ok: true, consumed: 4},
		{name: "one or more, none", args: []string{"-x"}, params: []string{"files"}, variadic: template.OneOrMore},
		{name: "one or more, one", args: []string{"a"}, params: []string{"files"}, variadic: template.OneOrMore, want: []string{"a"}, ok: true, consumed: 1},
		{name: "fixed then variadic, short", args: []string{"a"}, params: []string{"dst", "src"}, variadic: template.OneOrMore, want: []string{"a"}, consumed: 1},
		{name: "fixed then variadic", args: []string{"a", "b", "c"}, params: []string{"dst", "src"}, variadic: template.OneOrMore, want: []string{"a", "b", "c"}, ok: true, consumed: 3},
		{name: "fixed then optional tail", args: []string{"a"}, params: []string{"dst", "src"}, variadic: template.ZeroOrMore, want: []string{"a"}, ok: true, consumed: 1},
		{name: "one or more without params", args: []string{"a"}, variadic: template.OneOrMore, want: []string{"a"}, ok: true, consumed: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := token.Tokenize(tt.args)
			cursor := 0

			values, ok := collect(&cursor, tokens, tt.params, tt.defaults, tt.variadic)

			require.Equal(t, tt.want, values)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.consumed, cursor)
		})
	}
}

func TestRequired(t *testing.T) {
	require.Equal(t, 3, required([]string{"a", "b", "c"}, nil, template.NotVariadic))
	require.Equal(t, 1, required([]string{"a", "b", "c"}, []string{"b", "c"}, template.NotVariadic))
	require.Equal(t, 0, required(nil, nil, template.ZeroOrMore))
	require.Equal(t, 1, required([]string{"a", "b"}, nil, template.ZeroOrMore))
	require.Equal(t, 1, required(nil, nil, template.OneOrMore))
	require.Equal(t, 2, required([]string{"a", "b"}, nil, template.OneOrMore))
}
