package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/innovatepam/portal/internal/domain/entities"
	"github.com/innovatepam/portal/internal/ports"
)

// NotificationRepositoryImpl implements the NotificationRepository interface
type NotificationRepositoryImpl struct {
	db *sqlx.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *sqlx.DB) ports.NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, notification *entities.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, message, type, is_read)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}

	err := r.db.QueryRowContext(ctx, query,
		notification.ID, notification.UserID, notification.Message,
		notification.Type, notification.IsRead,
	).Scan(&notification.CreatedAt)

	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	return nil
}

func (r *NotificationRepositoryImpl) GetUserNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Notification, error) {
	query := `
		SELECT id, user_id, message, type, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	var notifications []*entities.Notification
	err := r.db.SelectContext(ctx, &notifications, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("get user notifications: %w", err)
	}

	return notifications, nil
}

func (r *NotificationRepositoryImpl) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`

	_, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("mark notifications read: %w", err)
	}

	return nil
}
