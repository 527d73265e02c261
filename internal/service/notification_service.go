package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/account-service/internal/config"
	"github.com/spec-kit/account-service/internal/events"
)

// NotificationService handles emitting notifications for account events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventProfileUpdated, n.handleProfileUpdated)
}

func (n *NotificationService) handleUserRegistered(_ context.Context, event events.Event) error {
	n.logger.Info("UserRegistered", zap.String("user_id", event.UserID), zap.Any("payload", event.Payload))
	n.sendWelcomeEmailStub(event)
	return nil
}

func (n *NotificationService) handleProfileUpdated(_ context.Context, event events.Event) error {
	n.logger.Info("ProfileUpdated", zap.String("user_id", event.UserID), zap.Any("payload", event.Payload))
	return nil
}

// sendWelcomeEmailStub logs the email that a real mailer would deliver.
func (n *NotificationService) sendWelcomeEmailStub(event events.Event) {
	payload, ok := event.Payload.(events.UserRegisteredPayload)
	if !ok {
		return
	}
	n.logger.Info("welcome email (stub)",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("to", payload.Email),
		zap.String("user_id", event.UserID),
	)
}
