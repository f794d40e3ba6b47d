package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type traceIDKey struct{}

// WithTraceID stores the request trace ID so log lines emitted deeper in the
// call chain can be correlated with the HTTP request.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return traceID
	}

	return ""
}

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogBalanceUpdate(ctx context.Context, accountID uuid.UUID, delta, newBalance string, transactionID uuid.UUID) {
	al.logger.InfoContext(ctx, "balance update",
		slog.String("event_type", "balance_update"),
		slog.String("account_id", accountID.String()),
		slog.String("delta", delta),
		slog.String("new_balance", newBalance),
		slog.String("transaction_id", transactionID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogTransactionMutation(ctx context.Context, action string, transactionID, userID uuid.UUID) {
	al.logger.InfoContext(ctx, "transaction mutation",
		slog.String("event_type", "transaction_"+action),
		slog.String("transaction_id", transactionID.String()),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogStaleAccountReference(ctx context.Context, accountID, transactionID uuid.UUID) {
	al.logger.WarnContext(ctx, "stale account reference",
		slog.String("event_type", "stale_account_reference"),
		slog.String("account_id", accountID.String()),
		slog.String("transaction_id", transactionID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogBalanceDrift(ctx context.Context, accountID uuid.UUID, cached, computed string) {
	al.logger.ErrorContext(ctx, "balance drift detected",
		slog.String("event_type", "balance_drift"),
		slog.String("account_id", accountID.String()),
		slog.String("cached_balance", cached),
		slog.String("computed_balance", computed),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogAuthenticationEvent(ctx context.Context, eventType string, userID *uuid.UUID, reason string) {
	attrs := []any{
		slog.String("event_type", eventType),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	}
	if userID != nil {
		attrs = append(attrs, slog.String("user_id", userID.String()))
	}
	if reason != "" {
		attrs = append(attrs, slog.String("reason", reason))
	}

	al.logger.InfoContext(ctx, "authentication event", attrs...)
}

func (al *AuditLogger) LogUserDataDeleted(ctx context.Context, userID uuid.UUID) {
	al.logger.WarnContext(ctx, "user data deleted",
		slog.String("event_type", "user_data_deleted"),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	)
}
