// Package version records the toolkit release.
package version

// Version can be overridden at build time:
//
//	go build -ldflags "-X picalc/internal/version.Version=v1.2.3"
var Version = "0.1.0"
