// AngelaMos | 2026
// telemetry_test.go

package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/aurex-pk/aurex-api/internal/config"
)

func TestSetSpanTenant(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	ctx, span := tp.Tracer("test").Start(context.Background(), "GET /api/invoices")
	SetSpanTenant(ctx, 4, 12, "owner")
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Subset(t, ended[0].Attributes(), []attribute.KeyValue{
		attribute.Int64("aurex.user.id", 4),
		attribute.Int64("aurex.company.id", 12),
		attribute.String("aurex.user.role", "owner"),
	})
}

func TestNewTelemetryDisabledIsNoop(t *testing.T) {
	tel, err := NewTelemetry(context.Background(), config.OtelConfig{ServiceName: "aurex-api"}, config.AppConfig{})
	require.NoError(t, err)
	require.NotNil(t, tel.Tracer)
	assert.NoError(t, tel.Shutdown(context.Background()))
}
