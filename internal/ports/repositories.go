package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/innovatepam/portal/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter UserFilter) ([]*entities.User, error)
	Count(ctx context.Context) (int64, error)
}

// IdeaRepository defines the interface for idea data operations
type IdeaRepository interface {
	Create(ctx context.Context, idea *entities.Idea) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Idea, error)
	Update(ctx context.Context, idea *entities.Idea) error
	List(ctx context.Context, filter IdeaFilter) ([]*entities.Idea, error)
	GetUserIdeas(ctx context.Context, userID uuid.UUID, filter IdeaFilter) ([]*entities.Idea, error)
	CountByStatus(ctx context.Context, userID *uuid.UUID) (StatusCounts, error)
	DailyCounts(ctx context.Context) ([]DailyCount, error)
}

// TodoRepository defines the interface for todo data operations
type TodoRepository interface {
	Create(ctx context.Context, todo *entities.Todo) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Todo, error)
	Update(ctx context.Context, todo *entities.Todo) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetUserTodos(ctx context.Context, userID uuid.UUID) ([]*entities.Todo, error)
}

// EventRepository defines the interface for calendar event data operations.
// Events carry no update or delete contract; the store is append-only.
type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	GetUserEvents(ctx context.Context, userID uuid.UUID) ([]*entities.Event, error)
}

// NotificationRepository defines the interface for notification data operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.Notification) error
	GetUserNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

// AuthRepository defines the interface for authentication operations
type AuthRepository interface {
	CreateRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	GetRefreshToken(ctx context.Context, tokenHash string) (*RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error
	CleanupExpiredTokens(ctx context.Context) error
}

// Filter types for repository queries

type UserFilter struct {
	Role     *entities.UserRole
	IsActive *bool
	Limit    int
	Offset   int
}

type IdeaFilter struct {
	Status   *entities.IdeaStatus
	Category *string
	Limit    int
	Offset   int
}

// StatusCounts aggregates ideas per review state.
type StatusCounts struct {
	Total    int64 `json:"total" db:"total"`
	Accepted int64 `json:"accepted" db:"accepted"`
	Rejected int64 `json:"rejected" db:"rejected"`
	Pending  int64 `json:"pending" db:"pending"`
}

// DailyCount is the number of ideas submitted on one calendar day.
type DailyCount struct {
	Date  string `json:"date" db:"date"`
	Count int64  `json:"count" db:"count"`
}

// RefreshToken represents a refresh token record
type RefreshToken struct {
	ID        int        `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	TokenHash string     `json:"token_hash" db:"token_hash"`
	ExpiresAt time.Time  `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	RevokedAt *time.Time `json:"revoked_at" db:"revoked_at"`
}

// IsExpired checks if the refresh token is expired
func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// IsRevoked checks if the refresh token is revoked
func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

// IsValid checks if the refresh token is valid
func (rt *RefreshToken) IsValid() bool {
	return !rt.IsExpired() && !rt.IsRevoked()
}
