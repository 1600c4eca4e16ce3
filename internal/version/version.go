// Package version provides centralized version information for Zuup Collect
// monorepo projects. This package supports independent versioning for the
// zuupd daemon and zuupctl CLI as separate projects within the monorepo,
// allowing them to evolve independently while maintaining consistency within
// each project's components.
// All versions follow semantic versioning (semver) conventions.

package version

// ZuupdVersion holds the current zuupd daemon version.
// Format: major.minor.patch[-prerelease][+build]
const ZuupdVersion = "0.1.0-dev"

// ZuupctlVersion holds the current zuupctl CLI version.
// This is used by the CLI binary and allows independent evolution
// of the management tool separate from the collection daemon.
// Format: major.minor.patch[-prerelease][+build]
const ZuupctlVersion = "0.1.0-dev"
