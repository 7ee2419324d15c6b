package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/innovatepam/portal/internal/domain/entities"
	"github.com/innovatepam/portal/internal/infrastructure/logger"
	"github.com/innovatepam/portal/internal/ports"
)

const defaultNotificationLimit = 50

// NotificationService handles user notifications
type NotificationService struct {
	notificationRepo ports.NotificationRepository
	logger           *logger.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo ports.NotificationRepository, logger *logger.Logger) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Notify records a notification for a user.
func (s *NotificationService) Notify(ctx context.Context, userID uuid.UUID, message string, typ entities.NotificationType) error {
	notification := &entities.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Message: message,
		Type:    typ,
		IsRead:  false,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// ListUserNotifications returns the newest notifications for a user.
func (s *NotificationService) ListUserNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}

	notifications, err := s.notificationRepo.GetUserNotifications(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkAllRead marks every unread notification for a user as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := s.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
