package executor

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
)

// startSpan opens one span per Execute* entry point, the same
// "one span per node, never per sub-step" granularity analyzer.startSpan
// uses for Analyze* entry points.
func startSpan(ctx context.Context, name string) (opentracing.Span, context.Context) {
	return opentracing.StartSpanFromContext(ctx, name)
}
