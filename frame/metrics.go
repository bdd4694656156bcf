package frame

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors updated after every step.
type Metrics struct {
	Steps        prometheus.Counter
	NodesSpawned prometheus.Counter
	NodesRemoved prometheus.Counter
	Nodes        prometheus.Gauge
	Edges        prometheus.Gauge
	TreeEdges    prometheus.Gauge
	StepDuration prometheus.Histogram
}

// NewMetrics creates the driver collectors and registers them on reg.
// A nil reg leaves them unregistered, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "driftgraph",
			Name:      "steps_total",
			Help:      "Total number of completed simulation steps",
		}),
		NodesSpawned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "driftgraph",
			Name:      "nodes_spawned_total",
			Help:      "Total number of nodes created by replenishment",
		}),
		NodesRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "driftgraph",
			Name:      "nodes_removed_total",
			Help:      "Total number of nodes removed after fading out",
		}),
		Nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "driftgraph",
			Name:      "nodes",
			Help:      "Live nodes in the latest frame",
		}),
		Edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "driftgraph",
			Name:      "edges",
			Help:      "Live edges in the latest frame",
		}),
		TreeEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "driftgraph",
			Name:      "tree_edges",
			Help:      "Spanning-tree edges in the latest ideal set",
		}),
		StepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "driftgraph",
			Name:      "step_duration_seconds",
			Help:      "Wall time of one simulation step",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
		}),
	}
	if reg == nil {
		return m, nil
	}

	for _, c := range []prometheus.Collector{
		m.Steps, m.NodesSpawned, m.NodesRemoved,
		m.Nodes, m.Edges, m.TreeEdges, m.StepDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observe(s stepStats) {
	if m == nil {
		return
	}
	m.Steps.Inc()
	m.NodesSpawned.Add(float64(s.spawned))
	m.NodesRemoved.Add(float64(s.removed))
	m.Nodes.Set(float64(s.nodes))
	m.Edges.Set(float64(s.edges))
	m.TreeEdges.Set(float64(s.treeEdges))
	m.StepDuration.Observe(s.elapsed.Seconds())
}
