// Package workspace resolves where the lattis delegate persists its data.
// It normalizes the workspace mode (central or local) from the environment
// and the command line, derives the data directory, and produces the
// environment handed to the delegate.
package workspace
