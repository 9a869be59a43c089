// Package build holds build-time metadata.
package build

// Version is the application version, overridden at release time via
// -ldflags "-X go.trai.ch/declgraph/internal/build.Version=...".
var Version = "dev"
