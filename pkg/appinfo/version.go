// Package appinfo reports how the running binary was built.
package appinfo

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"text/tabwriter"
)

// Build variables set by LDFLAGS like below:
//
//	go build -ldflags '-X github.com/wuxler/imgref/pkg/appinfo.version=v1.0.0'
var (
	// version is the released version, e.g. "v1.0.0"
	version = ""
	// buildDate output from `date -u +'%Y-%m-%dT%H:%M:%SZ'`
	buildDate = ""
	// gitCommit output from `git rev-parse HEAD`
	gitCommit = ""
	// gitTreeState determined from `git status --porcelain`. either 'clean' or 'dirty'
	gitTreeState = ""
)

// DevVersion is reported when neither LDFLAGS nor the module build info
// carry a version.
const DevVersion = "dev"

// Info describes the running binary.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit,omitempty" yaml:"commit,omitempty"`
	TreeState string `json:"tree_state,omitempty" yaml:"tree_state,omitempty"`
	BuildDate string `json:"build_date,omitempty" yaml:"build_date,omitempty"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the Info of the running binary. LDFLAGS values win over the
// module build info recorded by the go command.
func Get() Info {
	info := Info{
		Version:   version,
		Commit:    gitCommit,
		TreeState: gitTreeState,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(&info, bi)
	}
	if info.Version == "" {
		info.Version = DevVersion
	}
	return info
}

func fillFromBuildInfo(info *Info, bi *debug.BuildInfo) {
	if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildDate == "" {
				info.BuildDate = s.Value
			}
		case "vcs.modified":
			if info.TreeState == "" {
				info.TreeState = map[string]string{"true": "dirty", "false": "clean"}[s.Value]
			}
		}
	}
}

// Short returns the version followed by the abbreviated commit, if any.
func (i Info) Short() string {
	if len(i.Commit) > 8 {
		return i.Version + "-" + i.Commit[:8]
	}
	if i.Commit != "" {
		return i.Version + "-" + i.Commit
	}
	return i.Version
}

// WriteText writes one "key: value" line per known field of i.
func (i Info) WriteText(w io.Writer, name string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	rows := [][2]string{
		{"Name", name},
		{"Version", i.Version},
		{"Commit", i.Commit},
		{"TreeState", i.TreeState},
		{"BuildDate", i.BuildDate},
		{"GoVersion", i.GoVersion},
		{"Platform", i.Platform},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		if _, err := fmt.Fprintf(tw, "%s\t: %s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// ShortVersion returns Get().Short().
func ShortVersion() string {
	return Get().Short()
}

// UserAgent returns the "name/version" product token of the application.
func UserAgent(name string) string {
	return name + "/" + ShortVersion()
}
