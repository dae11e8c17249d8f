// Package version reports the ziplookup version and build metadata.
//
// Release builds inject values with -ldflags, for example:
//
//	-ldflags "-X github.com/dendrascience/ziplookup/version.Version=v1.0.0 -X github.com/dendrascience/ziplookup/version.Commit=abc1234"
//
// Builds without ldflags fall back to the module version and VCS settings
// recorded by the Go toolchain, and finally to development defaults.
package version
