// Package environ provides Env, a copy-on-write snapshot of process
// environment variables. Callers read the process environment once at
// startup and thread the snapshot through resolution and into the
// delegate's exec.Cmd instead of mutating global state.
package environ
