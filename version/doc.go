// Package version provides build and version information for sheetlens.
//
// Version, commit, and build date are injected at build time via ldflags,
// falling back to module build info when the binary is installed with
// go install.
package version
