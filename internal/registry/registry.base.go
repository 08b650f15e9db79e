// Package registry provides a thread-safe generic name to value registry.
// The server keeps one registry of MongoDB collections so services can look
// up their collection by name without carrying the client around.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrEmptyName is returned when registering an item without a name.
var ErrEmptyName = errors.New("registry: name cannot be empty")

// Registry stores items by name.
//
// Example:
//
//	r := NewRegistry[*mongo.Collection]()
//	r.Register("videos", db.Collection("videos"))
//	coll, ok := r.Get("videos")
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register stores item under name, overwriting any previous value.
// isNew is false when an existing item was replaced.
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, ErrEmptyName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get returns the item registered under name.
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// MustGet returns the item or an error naming the missing key.
func (r *Registry[T]) MustGet(name string) (T, error) {
	item, ok := r.Get(name)
	if !ok {
		var zero T
		return zero, fmt.Errorf("registry: %q is not registered", name)
	}
	return item, nil
}

// Names lists registered names in sorted order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
