package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/footprint-tools/argp/internal/app"
	"github.com/footprint-tools/argp/internal/cli"
	"github.com/footprint-tools/argp/internal/config"
	"github.com/footprint-tools/argp/internal/dispatchers"
	"github.com/footprint-tools/argp/internal/log"
	"github.com/footprint-tools/argp/internal/parser"
	"github.com/footprint-tools/argp/internal/ui/style"
	"github.com/footprint-tools/argp/internal/usage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	opts := app.DefaultOptions()
	application := app.New(opts)
	defer func() { _ = app.Close(application) }()

	dispatchers.SetOutput(application.Output)

	root := cli.BuildTree()

	res, err := dispatchers.Dispatch(root, args, parser.WithLogger(application.Logger))
	if err != nil {
		return report(stderr, err)
	}

	if applyFlags(&opts, res.Flags) {
		app.InitStyle(opts)
		application.Output = app.NewOutput(opts)
		dispatchers.SetOutput(application.Output)
	}

	log.Debug("argp: running %v with %q, options %v", res.Node.Path, res.Args, res.Flags.Names())

	if err := res.Execute(res.Args, res.Flags); err != nil {
		return report(stderr, err)
	}

	// Non-zero when the resolution asks for it (e.g. argp with no args)
	return res.ExitCode
}

// applyFlags folds the global output flags into opts and reports whether
// anything changed.
func applyFlags(opts *app.Options, flags *dispatchers.ParsedFlags) bool {
	changed := false

	if flags.Has("no-color") {
		opts.Color = "never"
		changed = true
	}
	if flags.Has("no-pager") {
		opts.PagerDisabled = true
		changed = true
	}
	if pager := flags.String("pager", ""); pager != "" {
		opts.PagerOverride = pager
		changed = true
	}

	return changed
}

// report prints err and returns the exit code for it. Argument errors are
// printed with their preview of the command line.
func report(w io.Writer, err error) int {
	var argErr *usage.ArgumentError
	if errors.As(err, &argErr) {
		lineNumbers, _ := config.Get("line_numbers")
		fmt.Fprint(w, style.Escapes(argErr.Preview(lineNumbers != "false")))
	} else {
		fmt.Fprintln(w, err.Error())
	}

	log.Error("argp: %v", err)

	var coder usage.ExitCoder
	if errors.As(err, &coder) {
		return coder.GetExitCode()
	}
	return 1
}
