// Package ui writes command output, through a pager when the output is a
// terminal.
//
// The pager command comes from the --pager flag, the config or $PAGER and is
// executed as given. This matches git, man and less and requires local
// access to change.
package ui

import (
	"os"
	"os/exec"
	"strings"
)

const defaultPager = "less -FRSX"

type pagerSettings struct {
	disabled bool
	override string
	config   func(string) (string, bool)
	env      func(string) string
}

// command returns the pager to run, or nil to print directly. The first
// non-empty setting wins:
//
//	--pager=<cmd>, config "pager", $PAGER, less -FRSX
//
// --no-pager, a blank setting and "cat" all mean direct output.
func (p pagerSettings) command() []string {
	if p.disabled {
		return nil
	}

	chosen := p.override
	if chosen == "" && p.config != nil {
		chosen, _ = p.config("pager")
	}
	if chosen == "" && p.env != nil {
		chosen = p.env("PAGER")
	}
	if chosen == "" {
		chosen = defaultPager
	}

	fields := strings.Fields(chosen)
	if len(fields) == 0 || fields[0] == "cat" {
		return nil
	}
	return fields
}

func runPager(pager string, args []string, content string) error {
	cmd := exec.Command(pager, args...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
