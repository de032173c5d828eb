package actions

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	for _, version := range []string{"v1.2.3", "dev", "v0.1.0-rc.1+dirty"} {
		t.Run(version, func(t *testing.T) {
			var out strings.Builder
			deps := actionDependencies{
				Printf: func(format string, a ...any) (int, error) {
					return fmt.Fprintf(&out, format, a...)
				},
				Version: func() string { return version },
			}

			require.NoError(t, printVersion(nil, nil, deps))
			require.Equal(t, "argp version "+version+"\n", out.String())
		})
	}
}
