// Package tracing provides a shared OTel tracer helper.
//
// When no TracerProvider is registered (tests, local dev without OTel) the global
// no-op provider is used and all calls are inert.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "bigeen-website"

// Start creates a new span as a child of the span in ctx. Callers must End it.
//
//	ctx, span := tracing.Start(ctx, "contact.submit",
//	    attribute.String("bigeen.mode", string(mode)),
//	)
//	defer span.End()
func Start(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))
}
