package avl

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the collectors a tree keeps current when attached via
// WithMetrics. Sharing one Metrics between several trees makes the gauges
// reflect whichever tree mutated last, so attach a fresh set per tree.
type Metrics struct {
	Sets       prometheus.Counter
	Deletes    prometheus.Counter
	Rotations  prometheus.Counter
	TreeSize   prometheus.Gauge
	TreeHeight prometheus.Gauge
}

// NewMetrics creates the collector set and registers it with reg unless
// reg is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Sets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "avl_sets_total",
			Help: "Number of set operations, including in-place updates.",
		}),
		Deletes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "avl_deletes_total",
			Help: "Number of delete operations, including absent-key no-ops.",
		}),
		Rotations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "avl_rotations_total",
			Help: "Number of single rotations performed while rebalancing.",
		}),
		TreeSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "avl_tree_size",
			Help: "Number of keys currently stored.",
		}),
		TreeHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "avl_tree_height",
			Help: "Current height of the tree.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Sets, m.Deletes, m.Rotations, m.TreeSize, m.TreeHeight)
	}
	return m
}
