package followgraphapi

import (
	"context"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

// WithRequestID returns a copy of ctx that carries id.
func WithRequestID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the request ID attached to ctx, if any.
func RequestID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ctxKey{}).(uuid.UUID)
	return id, ok
}

// RequestLogger annotates logger with the request ID carried by ctx.
func RequestLogger(ctx context.Context, logger *logrus.Entry) *logrus.Entry {
	if id, ok := RequestID(ctx); ok {
		return logger.WithField("request_id", id.String())
	}
	return logger
}
