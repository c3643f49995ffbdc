package commands

import "context"

// Telemetry receives one event per successful mutation. Event names follow
// "console.<resource>.<action>" (console.banner.save, console.order.advance)
// so log pipelines can group by resource; failed executions emit nothing.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

// normalizeTelemetry lets constructors accept a nil recorder, so callers that
// don't care about events can pass nil instead of wiring a noop themselves.
func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return noopTelemetry{}
	}
	return t
}
