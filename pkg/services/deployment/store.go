// Package deployment owns the mutable collection of user-placed
// edge-container nodes. It is the only mutable state in the system; the
// estimation core reads Node values and never touches this store.
package deployment

import (
	"fmt"
	"sync"

	"github.com/de-tools/placement-atlas/pkg/models/domain"
)

type Store struct {
	mu    sync.RWMutex
	nodes map[string]domain.Node
	order []string
}

func NewStore() *Store {
	return &Store{nodes: make(map[string]domain.Node)}
}

// Add appends placed nodes, keeping insertion order for listings.
func (s *Store) Add(nodes ...domain.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range nodes {
		if _, exists := s.nodes[n.ID]; !exists {
			s.order = append(s.order, n.ID)
		}
		s.nodes[n.ID] = n
	}
}

// Remove deletes one placed node by id.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nodes[id]; !ok {
		return fmt.Errorf("unknown placed node: %s", id)
	}
	delete(s.nodes, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear removes every placed node and reports how many were dropped.
func (s *Store) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.nodes)
	s.nodes = make(map[string]domain.Node)
	s.order = nil
	return n
}

// List snapshots the placed nodes in insertion order.
func (s *Store) List() []domain.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Node, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.nodes[id])
	}
	return out
}

// Get returns a placed node by id.
func (s *Store) Get(id string) (domain.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	return n, ok
}
