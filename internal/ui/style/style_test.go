package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func clearColorEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NO_COLOR", "")
	t.Setenv("ARGP_NO_COLOR", "")
	t.Setenv("ARGP_COLOR_THEME", "")
}

var helpers = []struct {
	name string
	fn   func(string) string
}{
	{"Success", Success},
	{"Warning", Warning},
	{"Error", Error},
	{"Info", Info},
	{"Header", Header},
	{"Muted", Muted},
}

func TestDisabledReturnsPlainText(t *testing.T) {
	clearColorEnv(t)
	Init(false, nil)

	for _, tt := range helpers {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, "test message", tt.fn("test message"))
		})
	}
}

func TestEnabledReturnsStyledText(t *testing.T) {
	clearColorEnv(t)
	Init(true, map[string]string{"color_theme": "default-dark"})

	for _, tt := range helpers {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.fn("test message")
			require.Contains(t, out, "test message")
			require.Contains(t, out, "\x1b[")
		})
	}
}

func TestNoColorEnvDisablesStyling(t *testing.T) {
	for _, env := range []string{"NO_COLOR", "ARGP_NO_COLOR"} {
		t.Run(env, func(t *testing.T) {
			clearColorEnv(t)
			t.Setenv(env, "1")

			Init(true, nil)
			require.False(t, Enabled())
			require.Equal(t, "test", Warning("test"))
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		mode     string
		terminal bool
		want     bool
	}{
		{"always", false, true},
		{"never", true, false},
		{"auto", true, true},
		{"auto", false, false},
		{"", true, true},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Resolve(tt.mode, tt.terminal), "Resolve(%q, %t)", tt.mode, tt.terminal)
	}
}

func TestEscapes(t *testing.T) {
	clearColorEnv(t)

	Init(false, nil)
	require.Equal(t, "error here", Escapes("$rerror$0 here"))

	Init(true, nil)
	require.Equal(t, "\x1b[31merror\x1b[0m here", Escapes("$rerror$0 here"))
}

func TestLoadColorConfig(t *testing.T) {
	clearColorEnv(t)

	require.Equal(t, Themes["mono-light"], LoadColorConfig(map[string]string{"color_theme": "mono-light"}))
	require.Equal(t, Themes["default-dark"], LoadColorConfig(map[string]string{"color_theme": "nope-dark"}))

	t.Setenv("ARGP_COLOR_THEME", "contrast-dark")
	require.Equal(t, Themes["contrast-dark"], LoadColorConfig(map[string]string{"color_theme": "mono-light"}))
}

func TestThemesAreComplete(t *testing.T) {
	for _, base := range BaseThemeNames {
		for _, suffix := range []string{"-dark", "-light"} {
			theme, ok := Themes[base+suffix]
			require.True(t, ok, base+suffix)
			require.NotEmpty(t, theme.Success)
			require.NotEmpty(t, theme.Header)
		}
	}
}

func TestResolveThemeName_KeepsSuffix(t *testing.T) {
	require.Equal(t, "mono-dark", ResolveThemeName("mono-dark"))
	require.Equal(t, "mono-light", ResolveThemeName("mono-light"))
}

func TestNopStyler(t *testing.T) {
	var s NopStyler
	require.False(t, s.Enabled())
	require.Equal(t, "x", s.Error("x"))
	require.Equal(t, "bad input", s.Escapes("$rbad$0 input"))
}

func TestStyler_FollowsInit(t *testing.T) {
	clearColorEnv(t)
	t.Cleanup(func() { Init(false, nil) })

	s := NewStyler()

	Init(false, nil)
	require.False(t, s.Enabled())
	require.Equal(t, "bad", s.Escapes("$rbad$0"))

	Init(true, nil)
	require.True(t, s.Enabled())
	require.Equal(t, "\x1b[31mbad\x1b[0m", s.Escapes("$rbad$0"))
}
