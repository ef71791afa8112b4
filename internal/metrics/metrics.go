// metrics содержит Prometheus-коллекторы загрузок ленты.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pribylovaa/go-photo-feed/internal/models"
)

const namespace = "photofeed"

// Metrics реализует service.Recorder.
type Metrics struct {
	fetchTotal    *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	pageSize      prometheus.Histogram
	feedPosts     prometheus.Gauge
	feedOffset    prometheus.Gauge
	inFlight      prometheus.Gauge
}

// New создаёт коллекторы и регистрирует их в reg.
// reg == nil — регистрация в prometheus.DefaultRegisterer (его отдаёт promhttp.Handler).
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		fetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_total",
			Help:      "Completed page fetches by trigger and outcome.",
		}, []string{"trigger", "outcome"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Upstream page fetch latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"trigger"}),
		pageSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_page_posts",
			Help:      "Posts per successfully fetched page.",
			Buckets:   []float64{0, 1, 5, 10, 15, 20, 50},
		}),
		feedPosts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "feed_posts",
			Help:      "Posts currently held in the feed.",
		}),
		feedOffset: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "feed_offset",
			Help:      "Offset of the next load-more request.",
		}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "load_more_in_flight",
			Help:      "1 while a load-more request is in flight.",
		}),
	}

	reg.MustRegister(m.fetchTotal, m.fetchDuration, m.pageSize, m.feedPosts, m.feedOffset, m.inFlight)

	return m
}

// ObserveFetch учитывает завершённую загрузку.
func (m *Metrics) ObserveFetch(trigger models.Trigger, outcome string, dur time.Duration, pageLen int) {
	t := trigger.String()

	m.fetchTotal.WithLabelValues(t, outcome).Inc()
	m.fetchDuration.WithLabelValues(t).Observe(dur.Seconds())

	if outcome == models.OutcomeOK {
		m.pageSize.Observe(float64(pageLen))
	}
}

// SetFeed выставляет gauges по снимку ленты.
func (m *Metrics) SetFeed(state models.FeedState) {
	m.feedPosts.Set(float64(len(state.Posts)))
	m.feedOffset.Set(float64(state.Offset))

	if state.InFlight {
		m.inFlight.Set(1)
	} else {
		m.inFlight.Set(0)
	}
}
