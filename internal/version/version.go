package version

import "runtime/debug"

// version is the release version, overridable at build time via
// -ldflags "-X github.com/indaco/verbump/internal/version.version=...".
var version = "0.1.0"

// GetVersion returns the build version string. When built from a module
// (go install), the module version from build info wins over the default.
func GetVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return version
}
