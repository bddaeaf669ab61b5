package utils

import "runtime/debug"

const (
	unknownVersion     = "unknown"
	developmentVersion = "(devel)"
)

// GetApplicationVersion reports the module version stamped into the binary at build time,
// or "unknown" when the build carries none.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if buildInfoAvailable && buildInfo.Main.Version != "" && buildInfo.Main.Version != developmentVersion {
		return buildInfo.Main.Version
	}
	return unknownVersion
}
