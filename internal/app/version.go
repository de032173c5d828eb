package app

import "runtime/debug"

// Version is set at build time with -ldflags "-X .../internal/app.Version=v1.2.3".
var Version = "dev"

// CurrentVersion returns Version, or the module version recorded by
// "go install" when no version was linked in.
func CurrentVersion() string {
	return resolveVersion(Version, debug.ReadBuildInfo)
}

func resolveVersion(linked string, buildInfo func() (*debug.BuildInfo, bool)) string {
	if linked != "dev" {
		return linked
	}
	if info, ok := buildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return linked
}
