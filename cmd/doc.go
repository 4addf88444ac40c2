// Package cmd implements the settingsync command-line interface. Each file
// registers a single sub-command (save, load, show, watch). Configuration
// loading and service initialisation shared between commands live in
// shared.go.
package cmd
