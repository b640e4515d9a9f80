package graph

import (
	"errors"
	"fmt"

	"github.com/QiguangJiang/StatGraph/util"
)

// DefaultCapacity is the number of distinct arbitration IDs a window graph
// can hold unless configured otherwise
const DefaultCapacity = 200

// ErrCapacityExceeded is returned when a window holds more distinct IDs
// than the graph capacity allows
var ErrCapacityExceeded = errors.New("distinct ID capacity exceeded")

// CapacityError reports the ID which did not fit into the graph
type CapacityError struct {
	Capacity int
	ID       string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: cannot add ID %q, graph holds at most %d distinct IDs",
		ErrCapacityExceeded.Error(), e.ID, e.Capacity)
}

// Unwrap allows errors.Is(err, ErrCapacityExceeded)
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

type (
	// IndexMap assigns dense, zero-based indexes to IDs in first-seen order
	IndexMap struct {
		capacity int
		indexes  map[string]int
		ids      []string
	}

	// Graph is the directed, weighted transition graph of one window.
	// Cell (i, j) of the adjacency matrix counts how often the node with
	// index i was directly followed by the node with index j.
	Graph struct {
		nodes   *IndexMap
		size    int
		weights []int
	}
)

// NewIndexMap creates an empty index map holding at most capacity IDs
func NewIndexMap(capacity int) *IndexMap {
	return &IndexMap{
		capacity: capacity,
		indexes:  make(map[string]int),
	}
}

// Index returns the index of id and whether it has been assigned
func (m *IndexMap) Index(id string) (int, bool) {
	idx, ok := m.indexes[id]
	return idx, ok
}

// Add returns the index of id, assigning the next free index if id is new
func (m *IndexMap) Add(id string) (int, error) {
	if idx, ok := m.indexes[id]; ok {
		return idx, nil
	}
	if len(m.ids) >= m.capacity {
		return 0, &CapacityError{Capacity: m.capacity, ID: id}
	}
	idx := len(m.ids)
	m.indexes[id] = idx
	m.ids = append(m.ids, id)
	return idx, nil
}

// Len returns the number of assigned IDs
func (m *IndexMap) Len() int {
	return len(m.ids)
}

// IDs returns the assigned IDs ordered by index
func (m *IndexMap) IDs() []string {
	return m.ids
}

// New creates an empty graph. The adjacency matrix is sized for
// min(capacity, maxNodes) nodes; a window of n records never holds more
// than n distinct IDs.
func New(capacity int, maxNodes int) *Graph {
	size := util.Min(capacity, maxNodes)
	if size < 0 {
		size = 0
	}
	return &Graph{
		nodes:   NewIndexMap(size),
		size:    size,
		weights: make([]int, size*size),
	}
}

// Build creates the transition graph of a window of arbitration IDs
func Build(ids []string, capacity int) (*Graph, error) {
	g := New(capacity, len(ids))
	if len(ids) == 0 {
		return g, nil
	}

	if _, err := g.AddNode(ids[0]); err != nil {
		return nil, err
	}

	for i := 1; i < len(ids); i++ {
		if err := g.AddTransition(ids[i-1], ids[i]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// AddNode registers an ID and returns its index
func (g *Graph) AddNode(id string) (int, error) {
	return g.nodes.Add(id)
}

// AddTransition records one occurrence of prev being directly followed by cur
func (g *Graph) AddTransition(prev string, cur string) error {
	from, err := g.AddNode(prev)
	if err != nil {
		return err
	}
	to, err := g.AddNode(cur)
	if err != nil {
		return err
	}
	g.weights[from*g.size+to]++
	return nil
}

// Weight returns how often prev was directly followed by cur
func (g *Graph) Weight(prev string, cur string) int {
	from, ok := g.nodes.Index(prev)
	if !ok {
		return 0
	}
	to, ok := g.nodes.Index(cur)
	if !ok {
		return 0
	}
	return g.weights[from*g.size+to]
}

// Nodes returns the index map of the graph
func (g *Graph) Nodes() *IndexMap {
	return g.nodes
}

// NodeCount returns the number of distinct IDs in the graph
func (g *Graph) NodeCount() int {
	return g.nodes.Len()
}

// EdgeCount returns the number of distinct ordered transitions
func (g *Graph) EdgeCount() int {
	edges := 0
	for _, w := range g.weights {
		if w > 0 {
			edges++
		}
	}
	return edges
}
