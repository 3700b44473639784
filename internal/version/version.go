package version

import (
	"fmt"
	"runtime/debug"
)

var (
	tag       = "dev" // set via ldflags
	commit    = "unknown"
	buildTime = "unknown"
)

const template = "tracker %s (%s) built at %s"

var buildInfoReader = debug.ReadBuildInfo

// String reports the build tag, commit and time. VCS stamps from the Go
// toolchain fill in whatever ldflags left unset.
func String() string {
	currentCommit := commit
	currentDate := buildTime

	if info, ok := buildInfoReader(); ok {
		for _, setting := range info.Settings {
			switch {
			case setting.Key == "vcs.revision" && commit == "unknown":
				currentCommit = setting.Value
			case setting.Key == "vcs.time" && buildTime == "unknown":
				currentDate = setting.Value
			}
		}
	}

	return fmt.Sprintf(template, tag, currentCommit, currentDate)
}
