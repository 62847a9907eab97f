package app

import "runtime/debug"

// set by make build
var version = "dev"

// readBuildInfo is swapped out in tests
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the version string, attempting to get it from VCS info if available
func GetVersion() string {
	// If version was injected at build time, use it
	if version != "dev" {
		return version
	}

	info, ok := readBuildInfo()
	if !ok {
		return version
	}

	// go install module@vX.Y.Z records the module version
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return version
	}

	// Use short commit hash (first 8 characters)
	if len(revision) > 8 {
		revision = revision[:8]
	}
	v := "dev-" + revision
	if modified {
		v += "-dirty"
	}
	return v
}
