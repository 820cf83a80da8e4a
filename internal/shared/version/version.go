// Package version carries build identification, injected at link time.
package version

// Version is the build version, overridden via
// -ldflags "-X github.com/oncabito/sentinela/internal/shared/version.Version=...".
var Version = "dev"
