package analyzer

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
)

// startSpan opens one span per analyze/execute entry point, the same
// granularity the teacher's sql/plan nodes use (one span per node/rule,
// never per sub-expression) — consistent with this analyzer being
// single-threaded per statement with no forked children (spec.md §5).
func startSpan(ctx context.Context, name string) (opentracing.Span, context.Context) {
	return opentracing.StartSpanFromContext(ctx, name)
}
