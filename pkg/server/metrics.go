package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "wordfreq"

	resultOK    = "ok"
	resultEmpty = "empty"
	resultBlank = "blank"
)

type metrics struct {
	analyzeTotal    *prometheus.CounterVec
	cacheHits       prometheus.Counter
	wordsTotal      prometheus.Counter
	analyzeDuration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		analyzeTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analyze_total",
				Help:      "Counter of analyze calls by result",
			}, []string{"result"}),
		cacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_hits_total",
				Help:      "Counter of reports served from the cache",
			}),
		wordsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "words_total",
				Help:      "Counter of words counted by fresh analyses",
			}),
		analyzeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "analyze_duration_seconds",
				Help:      "Latency of fresh analyses",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
			}),
	}
	reg.MustRegister(m.analyzeTotal, m.cacheHits, m.wordsTotal, m.analyzeDuration)
	return m
}
