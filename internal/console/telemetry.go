package console

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Telemetry records console events for observability.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return noopTelemetry{}
	}
	return t
}

// LogTelemetry emits events through a logrus logger.
type LogTelemetry struct {
	Logger *logrus.Logger
}

// Record writes the event and payload as a structured log line.
func (t LogTelemetry) Record(_ context.Context, event string, payload map[string]any) {
	if t.Logger == nil {
		return
	}
	t.Logger.WithFields(logrus.Fields(payload)).Info(event)
}
