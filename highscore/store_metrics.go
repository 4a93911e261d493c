package highscore

import (
	"context"
	"io"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentStore wraps all store methods to instrument the underlying calls.
func InstrumentStore(s Store) Store { return &metrics{s} }

var (
	storeCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "highscore",
			Name:      "calls",
			Help:      "Calls processed by the high score store.",
		},
		[]string{"method"},
	)
	storeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "highscore",
			Name:      "errors_total",
			Help:      "Failed high score store calls, not found included.",
		},
		[]string{"method"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(storeCalls.WithLabelValues(method))
	return t.ObserveDuration
}

func countError(method string, err error) {
	if err != nil {
		storeErrors.WithLabelValues(method).Inc()
	}
}

func init() {
	prometheus.MustRegister(storeCalls, storeErrors)
}

type metrics struct{ s Store }

func (m *metrics) Load(ctx context.Context, slot string) (int, error) {
	defer instrument("Load")()
	score, err := m.s.Load(ctx, slot)
	countError("Load", err)
	return score, err
}

func (m *metrics) Save(ctx context.Context, slot string, score int) error {
	defer instrument("Save")()
	err := m.s.Save(ctx, slot, score)
	countError("Save", err)
	return err
}

// Close closes the wrapped store when it holds resources.
func (m *metrics) Close() error {
	if c, ok := m.s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
