package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrPasswordIncorrect    = errors.New("current password is incorrect")
	ErrPasswordUnchanged    = errors.New("new password must differ from the current password")
	ErrIdeaNotFound         = errors.New("idea not found")
	ErrTodoNotFound         = errors.New("todo not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("not enough permissions")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrCommentRequired      = errors.New("admin comment is required")
	ErrEmptyTitle           = errors.New("title must not be empty")
	ErrInvalidDateKey       = errors.New("date must be formatted as YYYY-MM-DD")
)

// UserRole distinguishes admins (review ideas, assign todos) from submitters.
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleSubmitter UserRole = "submitter"
)

// IdeaStatus is the review lifecycle of a submitted idea.
type IdeaStatus string

const (
	IdeaStatusSubmitted IdeaStatus = "submitted"
	IdeaStatusAccepted  IdeaStatus = "accepted"
	IdeaStatusRejected  IdeaStatus = "rejected"
)

// NotificationType categorizes portal notifications.
type NotificationType string

const (
	NotificationTypeEvaluation NotificationType = "evaluation"
	NotificationTypeSystem     NotificationType = "system"
)

// DefaultEventColor is applied when an event is created without a color.
const DefaultEventColor = "#06b6d4"

// DateKeyLayout is the canonical calendar day format used on the wire.
const DateKeyLayout = "2006-01-02"

// User represents a portal account.
type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         UserRole   `json:"role" db:"role"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time `json:"-" db:"deleted_at"`
}

// Idea is a submitted innovation proposal with a review lifecycle.
type Idea struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	UserID           uuid.UUID  `json:"user_id" db:"user_id"`
	Title            string     `json:"title" db:"title"`
	Description      string     `json:"description" db:"description"`
	Category         string     `json:"category" db:"category"`
	Status           IdeaStatus `json:"status" db:"status"`
	Tags             *string    `json:"tags" db:"tags"`
	ProblemStatement *string    `json:"problem_statement" db:"problem_statement"`
	Solution         *string    `json:"solution" db:"solution"`
	FilePath         *string    `json:"file_path" db:"file_path"`
	AdminComment     *string    `json:"admin_comment" db:"admin_comment"`
	ReviewedByID     *uuid.UUID `json:"reviewed_by_id" db:"reviewed_by_id"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
}

// Todo is a user-scoped checklist item optionally scheduled to a calendar day.
type Todo struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	Date        *string   `json:"date" db:"date"`
	StartTime   *string   `json:"start_time" db:"start_time"`
	EndTime     *string   `json:"end_time" db:"end_time"`
	Tags        *string   `json:"tags" db:"tags"`
	Done        bool      `json:"done" db:"done"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Event is a calendar entry independent of ideas and todos.
// Events are immutable once created; see workspace.EventCapabilities.
type Event struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Date        string    `json:"date" db:"date"`
	Time        *string   `json:"time" db:"time"`
	Description *string   `json:"description" db:"description"`
	Color       string    `json:"color" db:"color"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Notification is a short message delivered to a user, e.g. after review.
type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	Message   string           `json:"message" db:"message"`
	Type      NotificationType `json:"type" db:"type"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// Business logic methods for User

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// CanReview reports whether the user may evaluate submitted ideas.
func (u *User) CanReview() bool {
	return u.IsActive && u.Role == UserRoleAdmin
}

// CanAssignTodo reports whether the user may create todos for another user.
func (u *User) CanAssignTodo() bool {
	return u.IsActive && u.Role == UserRoleAdmin
}

// Business logic methods for Idea

// IsEvaluated reports whether the idea has left the submitted state.
func (i *Idea) IsEvaluated() bool {
	return i.Status == IdeaStatusAccepted || i.Status == IdeaStatusRejected
}

// Evaluate moves the idea to an accepted or rejected state. The comment is
// mandatory; reviewers must justify the verdict to the author.
func (i *Idea) Evaluate(status IdeaStatus, comment string, reviewerID uuid.UUID) error {
	if !status.IsVerdict() {
		return ErrInvalidStatus
	}
	if strings.TrimSpace(comment) == "" {
		return ErrCommentRequired
	}

	i.Status = status
	i.AdminComment = &comment
	i.ReviewedByID = &reviewerID
	return nil
}

// CreatedDateKey returns the YYYY-MM-DD portion of the submission timestamp,
// the only part of an idea the calendar consumes.
func (i *Idea) CreatedDateKey() string {
	return i.CreatedAt.Format(DateKeyLayout)
}

// Business logic methods for Todo

// IsScheduled reports whether the todo is pinned to a calendar day.
func (t *Todo) IsScheduled() bool {
	return t.Date != nil && *t.Date != ""
}

// TagList splits the comma-separated tag string into trimmed labels.
func (t *Todo) TagList() []string {
	if t.Tags == nil || strings.TrimSpace(*t.Tags) == "" {
		return nil
	}

	parts := strings.Split(*t.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

// Utility methods

func (ur UserRole) IsValid() bool {
	switch ur {
	case UserRoleAdmin, UserRoleSubmitter:
		return true
	default:
		return false
	}
}

func (is IdeaStatus) IsValid() bool {
	switch is {
	case IdeaStatusSubmitted, IdeaStatusAccepted, IdeaStatusRejected:
		return true
	default:
		return false
	}
}

// IsVerdict reports whether the status is a terminal review outcome.
func (is IdeaStatus) IsVerdict() bool {
	return is == IdeaStatusAccepted || is == IdeaStatusRejected
}

// ValidDateKey reports whether s parses as a canonical YYYY-MM-DD day.
func ValidDateKey(s string) bool {
	_, err := time.Parse(DateKeyLayout, s)
	return err == nil
}
