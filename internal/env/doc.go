// Package env abstracts the process environment so that settings can be
// initialised from, and credentials mirrored into, either the real process
// environment or an isolated in-memory one.
package env
