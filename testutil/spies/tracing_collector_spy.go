package spies

import (
	"context"
	"maps"
	"sync"

	"github.com/shelfwise/circulation/eventstore"
)

// SpanContextSpy is the span handed out by TracingCollectorSpy.
type SpanContextSpy struct {
	mu         sync.Mutex
	status     string
	attributes map[string]string
}

func (c *SpanContextSpy) SetStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status = status
}

func (c *SpanContextSpy) AddAttribute(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.attributes == nil {
		c.attributes = make(map[string]string)
	}

	c.attributes[key] = value
}

// SpanRecord is one span from start to finish. Status is empty until the span is finished.
type SpanRecord struct {
	Name            string
	StartAttributes map[string]string
	Status          string
	EndAttributes   map[string]string
	span            *SpanContextSpy
}

type TracingCollectorSpy struct {
	mu      sync.Mutex
	records []SpanRecord
}

func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{}
}

func (s *TracingCollectorSpy) StartSpan(
	ctx context.Context,
	name string,
	attrs map[string]string,
) (context.Context, eventstore.SpanContext) {

	s.mu.Lock()
	defer s.mu.Unlock()

	span := &SpanContextSpy{}
	s.records = append(s.records, SpanRecord{Name: name, StartAttributes: maps.Clone(attrs), span: span})

	return ctx, span
}

func (s *TracingCollectorSpy) FinishSpan(spanCtx eventstore.SpanContext, status string, attrs map[string]string) {
	span, ok := spanCtx.(*SpanContextSpy)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].span == span {
			s.records[i].Status = status
			s.records[i].EndAttributes = maps.Clone(attrs)

			return
		}
	}
}

func (s *TracingCollectorSpy) SpanRecords() []SpanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpanRecord(nil), s.records...)
}

// FinishedSpan returns the first finished span with the given name.
func (s *TracingCollectorSpy) FinishedSpan(name string) (SpanRecord, bool) {
	for _, record := range s.SpanRecords() {
		if record.Name == name && record.Status != "" {
			return record, true
		}
	}

	return SpanRecord{}, false
}
