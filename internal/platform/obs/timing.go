package obs

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("globetrotter")

// Start opens a span for op and returns the context carrying it, so calls
// made with that context become child spans. Use as
//
//	ctx, done := obs.Start(ctx, "op")
//	defer done(&err)
func Start(ctx context.Context, name string) (context.Context, func(errp *error)) {
	start := time.Now()

	reqID := RequestID(ctx)
	ctx, span := tracer.Start(ctx, name, trace.WithAttributes(attribute.String("req_id", reqID)))

	return ctx, func(errp *error) {
		defer span.End()
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			span.RecordError(*errp)
			span.SetStatus(codes.Error, (*errp).Error())
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}

// Time is Start for leaf operations that make no further traced calls. Use as
//
//	defer obs.Time(ctx, "op")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	_, done := Start(ctx, name)
	return done
}
