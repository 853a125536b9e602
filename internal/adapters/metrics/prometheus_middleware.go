package metrics

import (
	"context"
	"reflect"
	"time"

	"github.com/andrescamacho/outpost-go/internal/application/mediator"
)

// PrometheusMiddleware times every command and query sent through the mediator.
// A nil collector turns it into a pass-through.
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		start := time.Now()
		response, err := next(ctx, request)
		collector.RecordCommandExecution(extractCommandName(request), time.Since(start).Seconds(), err == nil)

		return response, err
	}
}

// extractCommandName returns the bare type name: *commands.DepositItemCommand
// becomes DepositItemCommand
func extractCommandName(request mediator.Request) string {
	if request == nil {
		return "UnknownCommand"
	}

	t := reflect.TypeOf(request)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
