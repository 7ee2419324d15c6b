package ports

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/innovatepam/portal/internal/domain/entities"
)

// AuthService interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*entities.User, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	ValidateToken(tokenString string) (*Claims, error)
}

// UserService interface for profile operations
type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, req PasswordChangeRequest) error
	ListUsers(ctx context.Context, filter UserFilter) ([]*entities.User, int64, error)
}

// IdeaService interface for idea submission and review operations
type IdeaService interface {
	SubmitIdea(ctx context.Context, userID uuid.UUID, req SubmitIdeaRequest) (*entities.Idea, error)
	GetIdea(ctx context.Context, id, requesterID uuid.UUID, requesterRole entities.UserRole) (*entities.Idea, error)
	ListUserIdeas(ctx context.Context, userID uuid.UUID, filter IdeaFilter) ([]*entities.Idea, error)
	ListAllIdeas(ctx context.Context, filter IdeaFilter) ([]*entities.Idea, error)
	EvaluateIdea(ctx context.Context, ideaID, reviewerID uuid.UUID, req EvaluateIdeaRequest) (*entities.Idea, error)
}

// TodoService interface for todo operations
type TodoService interface {
	CreateTodo(ctx context.Context, ownerID uuid.UUID, ownerRole entities.UserRole, req CreateTodoRequest) (*entities.Todo, error)
	UpdateTodo(ctx context.Context, id, userID uuid.UUID, req UpdateTodoRequest) (*entities.Todo, error)
	DeleteTodo(ctx context.Context, id, userID uuid.UUID) error
	ListUserTodos(ctx context.Context, userID uuid.UUID) ([]*entities.Todo, error)
}

// EventService interface for calendar event operations
type EventService interface {
	CreateEvent(ctx context.Context, userID uuid.UUID, req CreateEventRequest) (*entities.Event, error)
	ListUserEvents(ctx context.Context, userID uuid.UUID) ([]*entities.Event, error)
}

// NotificationService interface for notification operations
type NotificationService interface {
	Notify(ctx context.Context, userID uuid.UUID, message string, typ entities.NotificationType) error
	ListUserNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

// StatsService interface for profile and admin analytics
type StatsService interface {
	UserStats(ctx context.Context, userID uuid.UUID) (*UserStats, error)
	AdminStats(ctx context.Context) (*AdminStats, error)
}

// Request/Response Types

// Auth related types
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	TokenType    string         `json:"token_type"`
	ExpiresIn    int64          `json:"expires_in"`
	User         *entities.User `json:"user"`
}

type Claims struct {
	UserID string            `json:"user_id"`
	Email  string            `json:"email"`
	Role   entities.UserRole `json:"role"`
}

// Idea related types
type SubmitIdeaRequest struct {
	Title            string  `json:"title" validate:"required,min=3,max=100"`
	Description      string  `json:"description" validate:"required,min=10,max=2000"`
	Category         string  `json:"category" validate:"required"`
	Tags             *string `json:"tags"`
	ProblemStatement *string `json:"problem_statement"`
	Solution         *string `json:"solution"`
	Attachment       *Attachment
}

// Attachment is an optional uploaded file accompanying an idea.
type Attachment struct {
	Filename string
	Content  io.Reader
}

type EvaluateIdeaRequest struct {
	Status       entities.IdeaStatus `json:"status" validate:"required,oneof=accepted rejected"`
	AdminComment string              `json:"admin_comment" validate:"required"`
}

// Todo related types
type CreateTodoRequest struct {
	Title       string  `json:"title" validate:"required,max=500"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime   *string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime     *string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Tags        *string `json:"tags"`
	UserID      *string `json:"user_id" validate:"omitempty,uuid"`
}

type UpdateTodoRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=500"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime   *string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime     *string `json:"end_time" validate:"omitempty,datetime=15:04"`
	Tags        *string `json:"tags"`
	Done        *bool   `json:"done"`
}

// Event related types
type CreateEventRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Color       string  `json:"color"`
	Time        *string `json:"time" validate:"omitempty,datetime=15:04"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// Stats related types
type UserStats struct {
	Total       int64   `json:"total"`
	Accepted    int64   `json:"accepted"`
	Rejected    int64   `json:"rejected"`
	Pending     int64   `json:"pending"`
	SuccessRate float64 `json:"success_rate"`
}

type AdminStats struct {
	Total            int64        `json:"total"`
	Accepted         int64        `json:"accepted"`
	Rejected         int64        `json:"rejected"`
	Pending          int64        `json:"pending"`
	AcceptanceRate   float64      `json:"acceptance_rate"`
	DailySubmissions []DailyCount `json:"daily_submissions"`
}

// DetailResponse is the portal's error payload: detail is either a plain
// string or a list of field validation errors.
type DetailResponse struct {
	Detail interface{} `json:"detail"`
}
