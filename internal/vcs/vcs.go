package vcs

import (
	"fmt"
	"runtime/debug"
)

// Version reports the build's module version when one was stamped in
// (go install pkg@vX), else the VCS revision, suffixed "-dirty" for
// builds from a modified tree.
func Version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unavailable"
	}

	return fromBuildInfo(bi)
}

func fromBuildInfo(bi *debug.BuildInfo) string {
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var (
		revision string
		modified bool
	)

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if revision == "" {
		return "unavailable"
	}

	if len(revision) > 12 {
		revision = revision[:12]
	}

	if modified {
		return fmt.Sprintf("%s-dirty", revision)
	}

	return revision
}
