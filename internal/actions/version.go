package actions

import "github.com/footprint-tools/argp/internal/dispatchers"

// Version prints "argp version <v>". It takes no arguments and is also
// reached through the root -v flag.
func Version(args []string, flags *dispatchers.ParsedFlags) error {
	return printVersion(args, flags, defaultDeps())
}

func printVersion(_ []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	_, err := deps.Printf("argp version %s\n", deps.Version())
	return err
}
