package env

import (
	"os"
	"strings"

	"github.com/viant/settingsync/internal/syncmap"
)

// Environment reads and writes environment variables
type Environment interface {
	Lookup(name string) (string, bool)
	Set(name, value string) error
}

type process struct{}

func (process) Lookup(name string) (string, bool) { return os.LookupEnv(name) }

func (process) Set(name, value string) error { return os.Setenv(name, value) }

// OS returns the process environment
func OS() Environment { return process{} }

// Map is an in-memory environment
type Map struct {
	vars *syncmap.Map[string]
}

func (m *Map) Lookup(name string) (string, bool) { return m.vars.Lookup(name) }

func (m *Map) Set(name, value string) error {
	m.vars.Set(name, value)
	return nil
}

// Get returns the value of name, empty when unset
func (m *Map) Get(name string) string { return m.vars.Get(name) }

// NewMap creates an in-memory environment seeded with pairs
func NewMap(pairs map[string]string) *Map {
	ret := &Map{vars: syncmap.New[string]()}
	for k, v := range pairs {
		ret.vars.Set(k, v)
	}
	return ret
}

// Snapshot copies the current process environment into a Map.
func Snapshot() *Map {
	ret := NewMap(nil)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		ret.vars.Set(name, value)
	}
	return ret
}
