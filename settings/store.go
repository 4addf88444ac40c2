package settings

import (
	"fmt"
	"sync"

	"github.com/viant/settingsync/internal/env"
)

// Source identifies where the current value of a setting came from
type Source string

const (
	SourceDefault     Source = "default"
	SourceEnvironment Source = "environment"
	SourceSnapshot    Source = "snapshot"
	SourceOverride    Source = "override"
)

// Store is the live configuration of a process
type Store struct {
	mu      sync.RWMutex
	fields  []Field
	index   map[string]int
	values  map[string]any
	sources map[string]Source
}

// New creates a store for the Fields table initialised from defaults and environment
func New(environment env.Environment) *Store {
	return NewWithFields(Fields, environment)
}

// NewWithFields creates a store for a custom field table
func NewWithFields(fields []Field, environment env.Environment) *Store {
	if environment == nil {
		environment = env.NewMap(nil)
	}
	s := &Store{
		fields:  append([]Field{}, fields...),
		index:   make(map[string]int, len(fields)),
		values:  make(map[string]any, len(fields)),
		sources: make(map[string]Source, len(fields)),
	}
	for i := range s.fields {
		field := &s.fields[i]
		s.index[field.Name] = i
		value, source := field.initial(environment, s.values)
		s.values[field.Name] = value
		s.sources[field.Name] = source
	}
	return s
}

func (f *Field) initial(environment env.Environment, resolved map[string]any) (any, Source) {
	if f.Resolve != nil {
		value, source := f.Resolve(environment, resolved)
		if coerced, err := f.Kind.Coerce(value); err == nil {
			return coerced, source
		}
		return f.defaultValue(), SourceDefault
	}
	if f.Env != "" {
		if text, ok := environment.Lookup(f.Env); ok {
			if f.Normalize != nil {
				text = f.Normalize(text)
			}
			if value, err := f.Kind.Parse(text); err == nil {
				return value, SourceEnvironment
			}
		}
	}
	return f.defaultValue(), SourceDefault
}

func (f *Field) defaultValue() any {
	value, err := f.Kind.Coerce(cloneValue(f.Default))
	if err != nil {
		return f.Kind.zero()
	}
	return value
}

// Fields returns a copy of the store's field table
func (s *Store) Fields() []Field {
	return append([]Field{}, s.fields...)
}

// Field returns the declaration of name
func (s *Store) Field(name string) (*Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	field := s.fields[i]
	return &field, true
}

// Get returns a copy of the value of name
func (s *Store) Get(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (&Tx{store: s}).Get(name)
}

// Source returns where the value of name came from
func (s *Store) Source(name string) Source {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if source, ok := s.sources[name]; ok {
		return source
	}
	return SourceDefault
}

// String returns a string setting, empty for unknown or non string fields
func (s *Store) String(name string) string {
	v, _ := s.Get(name)
	ret, _ := v.(string)
	return ret
}

// Bool returns a bool setting
func (s *Store) Bool(name string) bool {
	v, _ := s.Get(name)
	ret, _ := v.(bool)
	return ret
}

// Int returns an int setting
func (s *Store) Int(name string) int {
	v, _ := s.Get(name)
	ret, _ := v.(int)
	return ret
}

// Float returns a float setting
func (s *Store) Float(name string) float64 {
	v, _ := s.Get(name)
	ret, _ := v.(float64)
	return ret
}

// Strings returns a list or set setting
func (s *Store) Strings(name string) []string {
	v, _ := s.Get(name)
	ret, _ := v.([]string)
	return ret
}

// Set assigns value to name, the value is coerced to the field's kind
func (s *Store) Set(name string, value any) error {
	return s.Update(func(tx *Tx) error {
		return tx.Set(name, value, SourceOverride)
	})
}

// View runs fn holding the read lock
func (s *Store) View(fn func(tx *Tx)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&Tx{store: s})
}

// Update runs fn holding the write lock
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{store: s, writable: true})
}

// Tx gives access to the store inside View or Update. It must not be retained.
type Tx struct {
	store    *Store
	writable bool
}

// Fields returns the field table
func (t *Tx) Fields() []Field { return t.store.fields }

// Field returns the declaration of name
func (t *Tx) Field(name string) (*Field, bool) { return t.store.Field(name) }

// Get returns a copy of the value of name
func (t *Tx) Get(name string) (any, bool) {
	v, ok := t.store.values[name]
	if !ok {
		return nil, false
	}
	return cloneValue(v), true
}

// String returns a string setting
func (t *Tx) String(name string) string {
	v, _ := t.store.values[name].(string)
	return v
}

// Set assigns value to name recording source
func (t *Tx) Set(name string, value any, source Source) error {
	if !t.writable {
		return fmt.Errorf("set %q: read-only transaction", name)
	}
	field, ok := t.store.Field(name)
	if !ok {
		return fmt.Errorf("set %q: %w", name, ErrUnknownField)
	}
	coerced, err := field.Kind.Coerce(value)
	if err != nil {
		return fmt.Errorf("set %q: %w", name, err)
	}
	t.store.values[name] = coerced
	t.store.sources[name] = source
	return nil
}

func cloneValue(val any) any {
	switch v := val.(type) {
	case map[string]any:
		ret := make(map[string]any, len(v))
		for k, item := range v {
			ret[k] = cloneValue(item)
		}
		return ret
	case []any:
		ret := make([]any, len(v))
		for i, item := range v {
			ret[i] = cloneValue(item)
		}
		return ret
	case []string:
		return append([]string{}, v...)
	default:
		return val
	}
}

// Values returns a copy of every value keyed by field name
func (s *Store) Values() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ret := make(map[string]any, len(s.values))
	for k, v := range s.values {
		ret[k] = cloneValue(v)
	}
	return ret
}
