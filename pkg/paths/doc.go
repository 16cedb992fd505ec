// Package paths provides centralized path handling for dotman: the
// repository directory resolution from the environment and the safety
// rules that decide which files may be tracked.
package paths
