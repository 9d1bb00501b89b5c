// Package metrics exports engine activity as prometheus series.
package metrics

import (
	"net/http"

	"github.com/bethropolis/stepsort/internal/event"
	"github.com/bethropolis/stepsort/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the stepsort series and the registry they live in.
type Collector struct {
	registry *prometheus.Registry

	comparisons *prometheus.CounterVec
	swaps       *prometheus.CounterVec
	passes      *prometheus.CounterVec
	sorts       *prometheus.CounterVec
	undos       prometheus.Counter
	resets      prometheus.Counter
	depth       prometheus.Gauge
	perSort     *prometheus.HistogramVec
}

// New creates a Collector with its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stepsort_comparisons_total",
			Help: "Comparisons highlighted by the step engine.",
		}, []string{"algorithm"}),
		swaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stepsort_swaps_total",
			Help: "Swaps performed by the step engine.",
		}, []string{"algorithm"}),
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stepsort_passes_total",
			Help: "Passes completed.",
		}, []string{"algorithm"}),
		sorts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stepsort_sorts_completed_total",
			Help: "Runs that reached the sorted state.",
		}, []string{"algorithm"}),
		undos: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stepsort_undos_total",
			Help: "Successful undo operations.",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stepsort_resets_total",
			Help: "Engine resets, including reconfiguration and algorithm changes.",
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stepsort_history_depth",
			Help: "Snapshots remaining after the last undo or reset.",
		}),
		perSort: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stepsort_sort_comparisons",
			Help:    "Comparisons needed per completed run.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"algorithm"}),
	}
	c.registry.MustRegister(c.comparisons, c.swaps, c.passes, c.sorts, c.undos, c.resets, c.depth, c.perSort)
	return c
}

// Registry exposes the underlying registry, mainly for tests.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Attach subscribes the collector to engine events.
func (c *Collector) Attach(em *event.Manager) {
	em.SubscribeMany(c.handle,
		event.TypeComparison,
		event.TypeSwap,
		event.TypePassComplete,
		event.TypeSortComplete,
		event.TypeUndo,
		event.TypeReset,
	)
}

func (c *Collector) handle(e event.Event) bool {
	switch data := e.Data.(type) {
	case event.ComparisonData:
		c.comparisons.WithLabelValues(data.Algorithm.String()).Inc()
	case event.SwapData:
		c.swaps.WithLabelValues(data.Algorithm.String()).Inc()
	case event.PassCompleteData:
		c.passes.WithLabelValues(data.Algorithm.String()).Inc()
	case event.SortCompleteData:
		c.sorts.WithLabelValues(data.Algorithm.String()).Inc()
		c.perSort.WithLabelValues(data.Algorithm.String()).Observe(float64(data.Comparisons))
	case event.UndoData:
		c.undos.Inc()
		c.depth.Set(float64(data.Depth))
	case event.ResetData:
		c.resets.Inc()
		c.depth.Set(0)
	default:
		logger.DebugTagf("metrics", "Ignoring %v with payload %T", e.Type, e.Data)
		return false
	}
	return true
}

// Handler serves the registry in the prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve starts the /metrics endpoint on addr in the background. The
// returned server is shut down by the caller.
func (c *Collector) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Infof("Serving metrics on %s/metrics", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("Metrics server stopped: %v", err)
		}
	}()
	return srv
}
