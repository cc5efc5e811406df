package cache

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts cache lookups and backend failures.
type Metrics struct {
	hits   prometheus.Counter
	misses prometheus.Counter
	errors *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them on reg when it is not nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storekeeper",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Cache lookups answered from the cache.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storekeeper",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Cache lookups that fell through to the database.",
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storekeeper",
			Subsystem: "cache",
			Name:      "errors_total",
			Help:      "Cache backend or decode failures by operation.",
		}, []string{"op"}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.hits, m.misses, m.errors} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}
