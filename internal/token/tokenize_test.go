package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argp/internal/preview"
)

type shape struct {
	Value string
	Type  Type
}

func shapes(tokens []Token) []shape {
	out := make([]shape, len(tokens))
	for i, tok := range tokens {
		out[i] = shape{tok.Value, tok.Type}
	}
	return out
}

func TestClassify(t *testing.T) {
	tests := []struct {
		arg  string
		want Type
	}{
		{"get", Regular},
		{"", Regular},
		{"-", Regular},
		{"/", Regular},
		{"--", Terminator},
		{"-a", ShortOption},
		{"-abc", ShortOption},
		{"--all", LongOption},
		{"--name=value", LongOption},
		{"/S", SwitchOption},
		{"/OUT:file", SwitchOption},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.arg))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []shape
	}{
		{
			name: "empty input",
			args: []string{},
			want: []shape{},
		},
		{
			name: "regular arguments",
			args: []string{"get", "key1"},
			want: []shape{{"get", Regular}, {"key1", Regular}},
		},
		{
			name: "long option with value",
			args: []string{"--name=value"},
			want: []shape{{"--name", LongOption}, {"value", Regular}},
		},
		{
			name: "switch with value",
			args: []string{"/name:value"},
			want: []shape{{"/name", SwitchOption}, {"value", Regular}},
		},
		{
			name: "split at the first separator only",
			args: []string{"--define=a=b"},
			want: []shape{{"--define", LongOption}, {"a=b", Regular}},
		},
		{
			name: "switch ignores equals",
			args: []string{"/a=b"},
			want: []shape{{"/a=b", SwitchOption}},
		},
		{
			name: "value that looks like an option stays regular",
			args: []string{"--offset=-5"},
			want: []shape{{"--offset", LongOption}, {"-5", Regular}},
		},
		{
			name: "empty value",
			args: []string{"-o="},
			want: []shape{{"-o", ShortOption}, {"", Regular}},
		},
		{
			name: "combined short options",
			args: []string{"-abc"},
			want: []shape{{"-a", ShortOption}, {"-b", ShortOption}, {"-c", ShortOption}},
		},
		{
			name: "combined short options with value",
			args: []string{"-xf=out.txt"},
			want: []shape{{"-x", ShortOption}, {"-f", ShortOption}, {"out.txt", Regular}},
		},
		{
			name: "separator directly after prefix is not split",
			args: []string{"--=x"},
			want: []shape{{"--=x", LongOption}},
		},
		{
			name: "terminator makes the rest raw",
			args: []string{"-v", "--", "-abc", "--x=y", "get"},
			want: []shape{
				{"-v", ShortOption},
				{"--", Terminator},
				{"-abc", Raw},
				{"--x=y", Raw},
				{"get", Raw},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shapes(Tokenize(tt.args))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.args, diff)
			}
		})
	}
}

func TestTokenize_Ranges(t *testing.T) {
	tokens := Tokenize([]string{"get", "-ab", "--name=value"})

	require.Equal(t, "get -a -b --name value", CommandLine(tokens))

	want := []preview.Range{
		{Begin: 0, Length: 3, Pointer: 0},
		{Begin: 4, Length: 2, Pointer: 4},
		{Begin: 7, Length: 2, Pointer: 7},
		{Begin: 10, Length: 6, Pointer: 10},
		{Begin: 17, Length: 5, Pointer: 17},
	}

	got := make([]preview.Range, len(tokens))
	for i, tok := range tokens {
		got[i] = tok.Range
	}
	require.Equal(t, want, got)

	line := CommandLine(tokens)
	for _, tok := range tokens {
		require.Equal(t, tok.Value, line[tok.Range.Begin:tok.Range.End()])
	}
}

// Re-tokenizing the values of a result gives the same result, as long as no
// split-off value looks like an option (see the next test).
func TestTokenize_IsFixedPoint(t *testing.T) {
	inputs := [][]string{
		{"-abc", "--name=value", "/S:x", "get", "key"},
		{"-ab=c", "/LONG:v", "--flag"},
		{"-=x", "--=y", "/:z"},
		{"-v", "--", "-abc", "--x=y"},
		{},
	}

	for _, args := range inputs {
		first := Tokenize(args)
		second := Tokenize(Values(first))
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("re-tokenizing %q changed the result (-first +second):\n%s", args, diff)
		}
	}
}

// Split-off values are Regular, but as plain arguments they classify by
// their prefix. Re-tokenizing does not preserve them.
func TestTokenize_SplitValuesAreNotFixedPoints(t *testing.T) {
	tests := []struct {
		args   []string
		first  []shape
		second []shape
	}{
		{
			args:   []string{"--name=-x"},
			first:  []shape{{"--name", LongOption}, {"-x", Regular}},
			second: []shape{{"--name", LongOption}, {"-x", ShortOption}},
		},
		{
			args:   []string{"--name=--", "get"},
			first:  []shape{{"--name", LongOption}, {"--", Regular}, {"get", Regular}},
			second: []shape{{"--name", LongOption}, {"--", Terminator}, {"get", Raw}},
		},
		{
			args:   []string{"/OUT:/tmp"},
			first:  []shape{{"/OUT", SwitchOption}, {"/tmp", Regular}},
			second: []shape{{"/OUT", SwitchOption}, {"/tmp", SwitchOption}},
		},
	}

	for _, tt := range tests {
		first := Tokenize(tt.args)
		require.Equal(t, tt.first, shapes(first))
		require.Equal(t, tt.second, shapes(Tokenize(Values(first))))
	}
}

func TestToken_Name(t *testing.T) {
	require.Equal(t, "name", Token{Value: "--name", Type: LongOption}.Name())
	require.Equal(t, "a", Token{Value: "-a", Type: ShortOption}.Name())
	require.Equal(t, "OUT", Token{Value: "/OUT", Type: SwitchOption}.Name())
	require.Equal(t, "get", Token{Value: "get", Type: Regular}.Name())
}

func TestCommandLine_Empty(t *testing.T) {
	require.Equal(t, "", CommandLine(nil))
	require.Empty(t, Tokenize(nil))
}
