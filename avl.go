package avl

import (
	"errors"

	"github.com/rs/zerolog"
)

var (
	// ErrNoMoreItems is returned by Iterator.Next after the last item.
	ErrNoMoreItems = errors.New("no more items in the tree")

	// ErrInvariant is wrapped by every failure reported by Check.
	ErrInvariant = errors.New("avl invariant violated")
)

type (
	tree struct {
		root    *node
		size    int
		log     zerolog.Logger
		metrics *Metrics
	}

	// node is one occupied position in the tree. An empty position is a
	// nil *node; the height helper treats nil as height 0, so rotation
	// and rebalancing code never branches on child presence.
	node struct {
		key    int
		value  any
		height int
		left   *node
		right  *node
	}

	// iterator keeps the not-yet-visited ancestors of the current
	// position, leftmost descent first.
	iterator struct {
		stack []*node
	}
)
