package eval

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// OTelOptions configures OpenTelemetry integration for an evaluation session.
type OTelOptions struct {
	// Tracer creates one span per scored turn. May be nil.
	Tracer trace.Tracer

	// MeterProvider creates the turn-score instruments. May be nil.
	MeterProvider metric.MeterProvider
}

// turnRecorder emits spans and metrics for scored turns. A nil or partially
// configured recorder degrades gracefully: missing tracer or meter halves
// are simply skipped.
type turnRecorder struct {
	tracer trace.Tracer

	// instruments, nil when no meter provider was configured
	scoreHistogram metric.Int64Histogram
	turnCounter    metric.Int64Counter
	failCounter    metric.Int64Counter
}

// newRecorder initializes the recorder's instruments from the options.
func newRecorder(opts OTelOptions) (*turnRecorder, error) {
	r := &turnRecorder{tracer: opts.Tracer}

	if opts.MeterProvider == nil {
		return r, nil
	}

	meter := opts.MeterProvider.Meter("github.com/homebench-ai/sdk/eval")
	var err error

	r.scoreHistogram, err = meter.Int64Histogram(
		"turn.score",
		metric.WithDescription("Binary turn score: 1 pass, 0 fail"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create score histogram: %w", err)
	}

	r.turnCounter, err = meter.Int64Counter(
		"turn.count",
		metric.WithDescription("Number of turns evaluated"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create turn counter: %w", err)
	}

	r.failCounter, err = meter.Int64Counter(
		"turn.failures",
		metric.WithDescription("Number of failed turns"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create failure counter: %w", err)
	}

	return r, nil
}

// RecordTurn creates a span and records metrics for one scored turn.
// Failures here are absorbed: observability must never change an evaluation
// outcome.
func (r *turnRecorder) RecordTurn(ctx context.Context, entry HistoryEntry) {
	if r == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("session.id", entry.SessionID),
		attribute.Int("turn.index", entry.Index),
		attribute.String("turn.dimension", entry.Metadata.Dimension.String()),
		attribute.String("turn.difficulty", entry.Metadata.Difficulty.String()),
	}

	if r.tracer != nil {
		_, span := r.tracer.Start(ctx, "eval.turn")
		span.SetAttributes(attrs...)
		span.SetAttributes(
			attribute.Int("turn.score", entry.Result.Score),
			attribute.Bool("turn.sequence_match", entry.Result.SequenceMatch),
			attribute.String("turn.state_match", entry.Result.StateMatch.String()),
			attribute.Int("turn.error_count", len(entry.Result.Errors)),
		)
		if entry.Result.Passed() {
			span.SetStatus(codes.Ok, entry.Result.Message)
		} else {
			span.SetStatus(codes.Error, entry.Result.Message)
		}
		span.End()
	}

	opts := metric.WithAttributes(attrs...)
	if r.scoreHistogram != nil {
		r.scoreHistogram.Record(ctx, int64(entry.Result.Score), opts)
	}
	if r.turnCounter != nil {
		r.turnCounter.Add(ctx, 1, opts)
	}
	if r.failCounter != nil && !entry.Result.Passed() {
		r.failCounter.Add(ctx, 1, opts)
	}
}
