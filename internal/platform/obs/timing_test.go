package obs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
)

func TestStartCarriesParentTrace(t *testing.T) {
	parent := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1, 2, 3},
		SpanID:     trace.SpanID{4, 5, 6},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), parent)

	child, done := Start(ctx, "op")
	err := errors.New("boom")
	done(&err)

	assert.Equal(t, parent.TraceID(), trace.SpanContextFromContext(child).TraceID())
}

func TestTimeAcceptsNilError(t *testing.T) {
	done := Time(WithRequestID(context.Background(), "r1"), "op")
	assert.NotPanics(t, func() { done(nil) })
}
