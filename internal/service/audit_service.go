package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront/internal/events"
)

// AuditService writes an audit log line for account and order events.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger.Named("audit"),
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventUserRegistered, a.handleUserRegistered)
	a.dispatcher.Subscribe(events.EventSessionOpened, a.handleSessionOpened)
	a.dispatcher.Subscribe(events.EventSessionClosed, a.handleSessionClosed)
	a.dispatcher.Subscribe(events.EventLoginFailed, a.handleLoginFailed)
	a.dispatcher.Subscribe(events.EventOrderPlaced, a.handleOrderPlaced)
}

func (a *AuditService) handleUserRegistered(_ context.Context, event events.Event) error {
	a.logger.Info("UserRegistered", zap.String("user_id", event.UserID), zap.Time("at", event.Timestamp))
	return nil
}

func (a *AuditService) handleSessionOpened(_ context.Context, event events.Event) error {
	fields := []zap.Field{zap.String("user_id", event.UserID), zap.Time("at", event.Timestamp)}
	if p, ok := event.Payload.(events.SessionOpenedPayload); ok {
		fields = append(fields, zap.Time("expires_at", p.ExpiresAt))
	}
	a.logger.Info("SessionOpened", fields...)
	return nil
}

func (a *AuditService) handleSessionClosed(_ context.Context, event events.Event) error {
	a.logger.Info("SessionClosed", zap.String("user_id", event.UserID), zap.Time("at", event.Timestamp))
	return nil
}

func (a *AuditService) handleLoginFailed(_ context.Context, event events.Event) error {
	p, _ := event.Payload.(events.LoginFailedPayload)
	a.logger.Warn("LoginFailed",
		zap.String("email", p.Email),
		zap.String("reason", p.Reason),
		zap.Time("at", event.Timestamp))
	return nil
}

func (a *AuditService) handleOrderPlaced(_ context.Context, event events.Event) error {
	p, _ := event.Payload.(events.OrderPlacedPayload)
	a.logger.Info("OrderPlaced",
		zap.String("user_id", event.UserID),
		zap.Int64("order_id", p.OrderID),
		zap.Any("total_cost", p.TotalCost))
	return nil
}
