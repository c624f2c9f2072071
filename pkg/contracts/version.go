package contracts

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const (
	// Version is the release of the report generator
	Version = "1.0.0"

	// SummaryFormat identifies the column layout of the exported summary CSV
	SummaryFormat = "summary-csv/1"
)

// Revision and BuildDate can be stamped with
//
//	-ldflags "-X .../pkg/contracts.Revision=<sha> -X .../pkg/contracts.BuildDate=<date>"
//
// When left empty they are read from the VCS stamp the go command embeds.
var (
	Revision  string
	BuildDate string
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Version       string `json:"version"`
	Revision      string `json:"revision"`
	BuildDate     string `json:"build_date"`
	Modified      bool   `json:"modified"`
	GoVersion     string `json:"go_version"`
	Platform      string `json:"platform"`
	SummaryFormat string `json:"summary_format"`
}

// ReadBuildInfo collects the build metadata of the running binary
func ReadBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:       Version,
		Revision:      Revision,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		Platform:      runtime.GOOS + "/" + runtime.GOARCH,
		SummaryFormat: SummaryFormat,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Revision == "" {
					info.Revision = s.Value
				}
			case "vcs.time":
				if info.BuildDate == "" {
					info.BuildDate = s.Value
				}
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	if info.Revision == "" {
		info.Revision = "unknown"
	}
	if info.BuildDate == "" {
		info.BuildDate = "unknown"
	}
	return info
}

// Short returns the program name and version
func (b BuildInfo) Short() string {
	return "salesreport " + b.Version
}

// String renders the build metadata on one line, as printed by -version
func (b BuildInfo) String() string {
	revision := b.Revision
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if b.Modified {
		revision += "-dirty"
	}
	return fmt.Sprintf("%s (rev %s, %s, %s %s)", b.Short(), revision, b.BuildDate, b.GoVersion, b.Platform)
}
