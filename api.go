package avl

import (
	"io"

	"github.com/rs/zerolog"
)

// Item is a single key/value pair stored in the tree.
type Item struct {
	Key   int
	Value any
}

// Tree is an ordered map from int keys to arbitrary values, backed by a
// height-balanced binary search tree. Values are opaque to the tree and
// are never inspected or compared.
//
// Set and Delete return the receiver so that calls can be chained.
type Tree interface {
	Set(key int, value any) Tree
	Delete(key int) Tree
	Get(key int) (any, bool)
	GetOr(key int, fallback any) any
	Find(key int) bool
	Items() []Item
	Min() (Item, bool)
	Max() (Item, bool)
	Size() int
	Height() int
	Iterator() Iterator
	Check() error
	Dump(w io.Writer)
}

// Iterator walks the tree in ascending key order. It is invalidated by
// Set or Delete on the underlying tree.
type Iterator interface {
	HasNext() bool
	Next() (Item, error)
}

// Option configures a tree at construction time.
type Option func(*tree)

// WithLogger attaches a logger; structural changes are reported at debug
// level. Without this option the tree does not log.
func WithLogger(log zerolog.Logger) Option {
	return func(t *tree) { t.log = log }
}

// WithMetrics attaches a collector set which the tree keeps current as it
// mutates.
func WithMetrics(m *Metrics) Option {
	return func(t *tree) { t.metrics = m }
}

// New creates an empty tree.
func New(opts ...Option) Tree {
	t := &tree{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewWith creates a tree holding a single key/value pair.
func NewWith(key int, value any, opts ...Option) Tree {
	return New(opts...).Set(key, value)
}
