package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/periodix/pkg/observability"
)

// Metrics exports scene and frame loop activity to Prometheus. It is both a
// frame hook for every scene loop and, through [Metrics.ForScene], the
// transition hook of each scene.
type Metrics struct {
	registry *prometheus.Registry

	transitions *prometheus.CounterVec
	cancelled   prometheus.Counter
	settled     *prometheus.HistogramVec
	ticks       prometheus.Counter
	active      *prometheus.GaugeVec
	scenes      prometheus.Gauge
	frames      prometheus.Counter
	frameTime   prometheus.Histogram
}

// NewMetrics registers the periodix collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "periodix_transitions_started_total",
				Help: "Total number of transitions started, by target layout",
			},
			[]string{"layout"},
		),
		cancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "periodix_tweens_cancelled_total",
			Help: "Total number of tweens discarded by a newer transition",
		}),
		settled: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "periodix_transition_settle_seconds",
				Help:    "Simulated time from transition start until every tween finished",
				Buckets: []float64{0.5, 1, 2, 3, 4, 6, 8},
			},
			[]string{"layout"},
		),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "periodix_ticks_total",
			Help: "Total number of scene clock steps",
		}),
		active: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "periodix_active_tweens",
				Help: "Tweens still running after the last tick, by scene",
			},
			[]string{"scene"},
		),
		scenes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "periodix_scenes",
			Help: "Number of live scenes",
		}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "periodix_frames_total",
			Help: "Total number of frame loop steps",
		}),
		frameTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "periodix_frame_seconds",
			Help:    "Wall-clock time spent running frame subscribers",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
	}
	m.registry.MustRegister(
		m.transitions, m.cancelled, m.settled, m.ticks,
		m.active, m.scenes, m.frames, m.frameTime,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ForScene returns transition hooks that label per-scene series with id.
func (m *Metrics) ForScene(id string) observability.TransitionHooks {
	return sceneMetrics{m: m, id: id}
}

func (m *Metrics) sceneAdded() { m.scenes.Inc() }

func (m *Metrics) sceneRemoved(id string) {
	m.scenes.Dec()
	m.active.DeleteLabelValues(id)
}

// OnFrame implements observability.FrameHooks.
func (m *Metrics) OnFrame(_ time.Duration, _ int, took time.Duration) {
	m.frames.Inc()
	m.frameTime.Observe(took.Seconds())
}

// OnLoopStop implements observability.FrameHooks.
func (m *Metrics) OnLoopStop(int) {}

type sceneMetrics struct {
	m  *Metrics
	id string
}

func (s sceneMetrics) OnTransitionStart(layout string, _ int, _ time.Duration) {
	s.m.transitions.WithLabelValues(layout).Inc()
}

func (s sceneMetrics) OnTransitionCancel(_ string, cancelled int) {
	s.m.cancelled.Add(float64(cancelled))
}

func (s sceneMetrics) OnTransitionSettled(layout string, elapsed time.Duration) {
	s.m.settled.WithLabelValues(layout).Observe(elapsed.Seconds())
}

func (s sceneMetrics) OnTick(_ time.Duration, active int) {
	s.m.ticks.Inc()
	s.m.active.WithLabelValues(s.id).Set(float64(active))
}
