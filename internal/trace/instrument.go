// Package trace turns task and tab mutations into OpenTelemetry spans.
package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"todox/internal/tabs"
	"todox/internal/tasks"
)

// Span names.
const (
	SpanTaskAdd    = "todox.task.add"
	SpanTaskDelete = "todox.task.delete"
	SpanTabSelect  = "todox.tab.select"
)

// InstrumentTasks records a span for every mutation of l.
// The returned func stops recording.
func InstrumentTasks(p *Provider, l *tasks.List) func() {
	return l.Subscribe(func(ev tasks.Event) {
		switch ev.Kind {
		case tasks.EventAdded:
			emit(p.tracer, SpanTaskAdd,
				attribute.Int("todox.task.text_len", len(ev.Text)),
				attribute.Int("todox.task.count", len(ev.Items)),
			)
		case tasks.EventDeleted:
			emit(p.tracer, SpanTaskDelete,
				attribute.IntSlice("todox.task.positions", ev.Positions),
				attribute.Int("todox.task.count", len(ev.Items)),
			)
		}
	})
}

// InstrumentTabs records a span for every tab selection.
// The returned func stops recording.
func InstrumentTabs(p *Provider, s *tabs.Selection) func() {
	return s.Subscribe(func(c tabs.Change) {
		emit(p.tracer, SpanTabSelect,
			attribute.Int("todox.tab.from", c.From),
			attribute.Int("todox.tab.to", c.To),
			attribute.String("todox.tab.outcome", c.Outcome.String()),
		)
	})
}

func emit(tr oteltrace.Tracer, name string, attrs ...attribute.KeyValue) {
	_, span := tr.Start(context.Background(), name, oteltrace.WithAttributes(attrs...))
	span.End()
}
