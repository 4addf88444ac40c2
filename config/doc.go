// Package config defines the YAML/JSON configuration of the persistence
// service together with helpers to load and validate it.  Every value is
// optional; a zero Config leaves the decisions to the settings store.
package config
