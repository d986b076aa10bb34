package datamap

import "github.com/prometheus/client_golang/prometheus"

// MetricHooks counts the observed operations using Prometheus counters
type MetricHooks[K comparable, V any] struct {
	gets    prometheus.Counter
	sets    *prometheus.CounterVec
	deletes prometheus.Counter
	clears  prometheus.Counter
}

var _ Hooks[int, any] = (*MetricHooks[int, any])(nil)

// NewMetricHooks creates new metric hooks whose counters are named datamap_<subsystem>_*
func NewMetricHooks[K comparable, V any](subsystem string) *MetricHooks[K, V] {
	return &MetricHooks[K, V]{
		gets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "datamap",
			Subsystem: subsystem,
			Name:      "gets_total",
			Help:      "Reads and presence checks of map entries",
		}),
		sets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "datamap",
			Subsystem: subsystem,
			Name:      "sets_total",
			Help:      "Writes of map entries, partitioned into inserts and overwrites",
		}, []string{"kind"}),
		deletes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "datamap",
			Subsystem: subsystem,
			Name:      "deletes_total",
			Help:      "Observed deletions of map entries",
		}),
		clears: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "datamap",
			Subsystem: subsystem,
			Name:      "clears_total",
			Help:      "Clears of the whole map",
		}),
	}
}

// Register registers the counters with the given registerer
func (hooks *MetricHooks[K, V]) Register(registerer prometheus.Registerer) error {
	for _, collector := range []prometheus.Collector{hooks.gets, hooks.sets, hooks.deletes, hooks.clears} {
		if err := registerer.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

func (hooks *MetricHooks[K, V]) OnGet(K, Storage[K, V]) {
	hooks.gets.Inc()
}

func (hooks *MetricHooks[K, V]) OnSet(_ K, _, _ V, existed bool, _ Storage[K, V]) {
	if existed {
		hooks.sets.WithLabelValues("overwrite").Inc()
	} else {
		hooks.sets.WithLabelValues("insert").Inc()
	}
}

func (hooks *MetricHooks[K, V]) OnDelete(K, Storage[K, V]) {
	hooks.deletes.Inc()
}

func (hooks *MetricHooks[K, V]) OnClear(Storage[K, V]) {
	hooks.clears.Inc()
}
