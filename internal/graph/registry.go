package graph

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry holds all registered nodes keyed by descriptor ID. It is populated
// once at startup and read concurrently by the serving layer afterwards.
type Registry struct {
	mu    sync.RWMutex
	nodes map[string]Node
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		nodes: map[string]Node{},
	}
}

// Register adds a node to the registry.
func (r *Registry) Register(n Node) error {
	if n == nil {
		return errors.New("node is nil")
	}
	id := n.Descriptor().ID
	if id == "" {
		return errors.New("node ID is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.nodes[id]; exists {
		return fmt.Errorf("node already registered: %s", id)
	}
	r.nodes[id] = n
	return nil
}

// MustRegister calls Register and panics on error.
func (r *Registry) MustRegister(n Node) {
	if err := r.Register(n); err != nil {
		panic(err)
	}
}

// Get returns the node registered under the given ID.
func (r *Registry) Get(id string) (Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.nodes[id]
	return n, ok
}

// IDs returns all registered node IDs in lexical order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.nodes))
	for id := range r.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Descriptors returns the descriptors of all registered nodes, ordered by ID
// so listings are stable.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.nodes))
	for id := range r.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	items := make([]Descriptor, 0, len(ids))
	for _, id := range ids {
		items = append(items, r.nodes[id].Descriptor())
	}
	return items
}
