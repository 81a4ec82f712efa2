// Package cli parses command-line arguments for the shortpath demo,
// validates them and carries process-level concerns like exit codes and
// logger setup.
package cli
