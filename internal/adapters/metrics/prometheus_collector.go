// Package metrics exports the simulation to Prometheus. Nothing is recorded
// until InitRegistry is called, so every collector is safe to build when
// metrics are disabled.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/andrescamacho/outpost-go/internal/application/simulation"
)

const (
	namespace = "outpost"
	subsystem = "simulation"
)

// Registry holds every outpost collector; nil while metrics are disabled
var Registry *prometheus.Registry

var (
	recorderMu     sync.RWMutex
	globalRecorder EventRecorder
)

// EventRecorder turns world events into metrics
type EventRecorder interface {
	RecordEvent(e simulation.Event)
}

// InitRegistry creates the registry with the Go runtime and process collectors
func InitRegistry() {
	Registry = prometheus.NewRegistry()
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// GetRegistry returns the registry, or nil when metrics are disabled
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled reports whether InitRegistry ran
func IsEnabled() bool {
	return Registry != nil
}

// registerAll registers cs, doing nothing while metrics are disabled
func registerAll(cs ...prometheus.Collector) error {
	if Registry == nil {
		return nil
	}
	for _, c := range cs {
		if err := Registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// SetGlobalEventRecorder routes RecordEvent to recorder; nil disables it
func SetGlobalEventRecorder(recorder EventRecorder) {
	recorderMu.Lock()
	globalRecorder = recorder
	recorderMu.Unlock()
}

// RecordEvent forwards e to the global recorder, if any
func RecordEvent(e simulation.Event) {
	recorderMu.RLock()
	recorder := globalRecorder
	recorderMu.RUnlock()

	if recorder != nil {
		recorder.RecordEvent(e)
	}
}
