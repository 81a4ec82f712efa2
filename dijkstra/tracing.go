// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name used when no tracer is configured.
const TracerName = "github.com/katalvlaran/shortpath/dijkstra"

// SpanName is the name of the span recorded around each computation.
const SpanName = "dijkstra.ShortestPath"

// Computation outcomes, shared by span attributes and metric labels.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

func outcome(found bool, err error) string {
	switch {
	case err != nil:
		return OutcomeError
	case found:
		return OutcomeFound
	default:
		return OutcomeUnreachable
	}
}

// startSpan opens the computation span. A nil tracer falls back to the
// global provider, which is a no-op until the application installs one.
func startSpan(ctx context.Context, tracer trace.Tracer, start, end int) trace.Span {
	if tracer == nil {
		tracer = otel.Tracer(TracerName)
	}
	_, span := tracer.Start(ctx, SpanName, trace.WithAttributes(
		attribute.Int("shortpath.start", start),
		attribute.Int("shortpath.end", end),
	))

	return span
}

// endSpan records the outcome of the computation and ends the span.
func endSpan[T any](span trace.Span, g Graph[T], res Result[T], err error) {
	defer span.End()

	if g != nil {
		span.SetAttributes(attribute.Int("shortpath.nodes", g.NodeCount()))
	}
	span.SetAttributes(attribute.String("shortpath.outcome", outcome(res.Found(), err)))

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
		return
	}

	span.SetAttributes(
		attribute.Float64("shortpath.cost", res.Cost),
		attribute.Int("shortpath.path_len", len(res.Path)),
		attribute.Int("shortpath.finalized", res.Stats.Finalized),
		attribute.Int("shortpath.pruned", res.Stats.Pruned),
		attribute.Int("shortpath.relaxations", res.Stats.Relaxations),
	)
}
