package syncmap

import (
	"sort"
	"sync"
)

// Map is a thread-safe generic map keyed by string
type Map[T any] struct {
	mux sync.RWMutex
	m   map[string]T
}

// New creates a new instance of Map
func New[T any]() *Map[T] {
	return &Map[T]{
		m: make(map[string]T),
	}
}

// Lookup returns the value stored under key and whether it was present
func (r *Map[T]) Lookup(key string) (T, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[key]
	return v, ok
}

// Get retrieves an item by key, zero value when absent
func (r *Map[T]) Get(key string) T {
	v, _ := r.Lookup(key)
	return v
}

// GetOrCreate returns the stored value or stores and returns the one built by create.
// create runs under the write lock.
func (r *Map[T]) GetOrCreate(key string, create func() T) T {
	if v, ok := r.Lookup(key); ok {
		return v
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if v, ok := r.m[key]; ok {
		return v
	}
	v := create()
	r.m[key] = v
	return v
}

// Set adds or updates an item by key
func (r *Map[T]) Set(key string, value T) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m[key] = value
}

// Delete removes an item by key
func (r *Map[T]) Delete(key string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	delete(r.m, key)
}

// Clear removes all items
func (r *Map[T]) Clear() {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.m = make(map[string]T)
}

// Len returns the number of stored items
func (r *Map[T]) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.m)
}

// Keys returns sorted keys
func (r *Map[T]) Keys() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]string, 0, len(r.m))
	for k := range r.m {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
