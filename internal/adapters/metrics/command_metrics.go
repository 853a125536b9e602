package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// requestLabels are shared by the duration histogram and the counter
var requestLabels = []string{"command", "kind", "status"}

// CommandMetricsCollector measures commands and queries sent through the mediator
type CommandMetricsCollector struct {
	commandDuration *prometheus.HistogramVec
	commandsTotal   *prometheus.CounterVec
}

// NewCommandMetricsCollector builds the collector; Register exposes it
func NewCommandMetricsCollector() *CommandMetricsCollector {
	return &CommandMetricsCollector{
		// Handlers run in-process under the runner lock, so most land below a millisecond
		commandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "command_duration_seconds",
			Help:      "Time spent handling a command or query, including waiting for the world lock",
			Buckets:   prometheus.ExponentialBucketsRange(0.0001, 5, 10),
		}, requestLabels),

		commandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "commands_total",
			Help:      "Commands and queries handled, by name, kind and outcome",
		}, requestLabels),
	}
}

func (c *CommandMetricsCollector) Register() error {
	return registerAll(c.commandDuration, c.commandsTotal)
}

// RecordCommandExecution records one handled request
func (c *CommandMetricsCollector) RecordCommandExecution(name string, seconds float64, success bool) {
	status := "error"
	if success {
		status = "success"
	}
	labels := prometheus.Labels{"command": name, "kind": requestKind(name), "status": status}

	c.commandDuration.With(labels).Observe(seconds)
	c.commandsTotal.With(labels).Inc()
}

// requestKind splits queries from commands by the naming convention
func requestKind(name string) string {
	if strings.HasSuffix(name, "Query") {
		return "query"
	}
	return "command"
}
