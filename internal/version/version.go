// internal/version/version.go
package version

// Version is stamped at release time via -ldflags.
var Version = "0.1.0-dev"
