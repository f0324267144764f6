// Package bootstrap locates a project's source root from the path of a binary built
// inside it, finds checked-out sub-projects by name and runs their bootstrap
// executables as well as the usual package-manager commands.
//
// All directory handling goes through a workdir.Filesystem so the steps can run
// against the real process state or an in-memory tree.
package bootstrap
