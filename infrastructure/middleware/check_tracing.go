package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ahrav/go-overtime/internal/domain"
	"github.com/ahrav/go-overtime/internal/ports"
)

var (
	_ ports.Check         = (*tracedCheck)(nil)
	_ ports.RecoveryAware = (*tracedCheck)(nil)
)

// tracedCheck emits an OpenTelemetry span per poll for debugging and
// performance analysis of long-running verifications.
type tracedCheck struct {
	next   ports.Check
	tracer trace.Tracer
}

// TracingCheckMiddleware creates middleware that wraps every poll of the
// check in a span carrying the check name and observed data size.
func TracingCheckMiddleware(serviceName string) CheckMiddleware {
	tracer := otel.Tracer(serviceName)
	return func(next ports.Check) ports.Check {
		return &tracedCheck{
			next:   next,
			tracer: tracer,
		}
	}
}

// Name returns the wrapped check's name.
func (t *tracedCheck) Name() string { return t.next.Name() }

// Verify forwards the poll within a trace span, recording failures on it.
func (t *tracedCheck) Verify(ctx context.Context, data *domain.Data) error {
	ctx, span := t.tracer.Start(ctx, "check.verify",
		trace.WithAttributes(
			attribute.String("check.name", t.next.Name()),
			attribute.Int("data.interactions", data.Len()),
		),
	)
	defer span.End()

	err := t.next.Verify(ctx, data)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// RecoverableOnFailure forwards the wrapped check's classification.
func (t *tracedCheck) RecoverableOnFailure() bool { return recoverableOnFailure(t.next) }
