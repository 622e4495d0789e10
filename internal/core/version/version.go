// Package version reports what build of gsa is running
package version

import (
	"runtime/debug"
	"sync"
)

// Service is the name the API reports for itself
const Service = "gsa-api"

// Set with -ldflags "-X gsa/internal/core/version.version=v1.2.0" and likewise
// for commit and date. Unset values fall back to the module's vcs stamps
var (
	version = ""
	commit  = ""
	date    = ""
)

// BuildInfo is served by the meta module
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Dirty   bool   `json:"dirty,omitempty"`
	Go      string `json:"go,omitempty"`
}

// Info returns the build stamps, read once
var Info = sync.OnceValue(func() BuildInfo { return resolve(debug.ReadBuildInfo()) })

func resolve(bi *debug.BuildInfo, ok bool) BuildInfo {
	out := BuildInfo{Service: Service, Version: version, Commit: commit, Date: date}
	if ok {
		out.Go = bi.GoVersion
		if out.Version == "" && bi.Main.Version != "(devel)" {
			out.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if out.Commit == "" {
					out.Commit = s.Value
				}
			case "vcs.time":
				if out.Date == "" {
					out.Date = s.Value
				}
			case "vcs.modified":
				out.Dirty = s.Value == "true"
			}
		}
	}
	if out.Version == "" {
		out.Version = "dev"
	}
	if out.Commit == "" {
		out.Commit = "none"
	}
	if out.Date == "" {
		out.Date = "unknown"
	}
	return out
}
