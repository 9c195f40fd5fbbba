package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"todox/internal/tabs"
	"todox/internal/tasks"
)

func newRecordingProvider(t *testing.T) (*Provider, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	p := NewProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })
	return p, sr
}

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestInstrumentTasks(t *testing.T) {
	p, sr := newRecordingProvider(t)
	l := tasks.New(tasks.DefaultSeed...)
	stop := InstrumentTasks(p, l)

	l.Add("Walk dog")
	l.Add("   ")
	l.Delete(1)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, SpanTaskAdd, spans[0].Name())
	assert.Equal(t, int64(3), attrMap(spans[0].Attributes())["todox.task.count"].AsInt64())

	assert.Equal(t, SpanTaskDelete, spans[1].Name())
	attrs := attrMap(spans[1].Attributes())
	assert.Equal(t, []int64{1}, attrs["todox.task.positions"].AsInt64Slice())
	assert.Equal(t, int64(2), attrs["todox.task.count"].AsInt64())

	stop()
	l.Add("ignored")
	assert.Len(t, sr.Ended(), 2)
}

func TestInstrumentTabs(t *testing.T) {
	p, sr := newRecordingProvider(t)
	s, err := tabs.New(3, tabs.WithExitTab(tabs.DismissFunc(func() {})))
	require.NoError(t, err)
	stop := InstrumentTabs(p, s)

	s.Select(1)
	s.Select(3)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, SpanTabSelect, spans[0].Name())
	assert.Equal(t, "switched", attrMap(spans[0].Attributes())["todox.tab.outcome"].AsString())
	assert.Equal(t, "dismissed", attrMap(spans[1].Attributes())["todox.tab.outcome"].AsString())

	stop()
	s.Select(0)
	assert.Len(t, sr.Ended(), 2)
}

func TestNewOTLPProvider_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	p, err := NewOTLPProvider(context.Background())
	require.NoError(t, err)
	require.NotNil(t, p.Tracer())
	assert.NoError(t, p.Shutdown(context.Background()))
}
