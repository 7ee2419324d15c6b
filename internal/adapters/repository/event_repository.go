package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/innovatepam/portal/internal/domain/entities"
	"github.com/innovatepam/portal/internal/ports"
)

// EventRepositoryImpl implements the EventRepository interface.
// Calendar events are append-only; there is no UPDATE or DELETE path.
type EventRepositoryImpl struct {
	db *sqlx.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sqlx.DB) ports.EventRepository {
	return &EventRepositoryImpl{db: db}
}

const eventColumns = `id, user_id, title, date, time, description, color, created_at`

func (r *EventRepositoryImpl) Create(ctx context.Context, event *entities.Event) error {
	query := `
		INSERT INTO calendar_events (id, user_id, title, date, time, description, color)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Color == "" {
		event.Color = entities.DefaultEventColor
	}

	err := r.db.QueryRowContext(ctx, query,
		event.ID, event.UserID, event.Title, event.Date,
		event.Time, event.Description, event.Color,
	).Scan(&event.CreatedAt)

	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	return nil
}

func (r *EventRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events WHERE id = $1`

	var event entities.Event
	err := r.db.GetContext(ctx, &event, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}

	return &event, nil
}

func (r *EventRepositoryImpl) GetUserEvents(ctx context.Context, userID uuid.UUID) ([]*entities.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events WHERE user_id = $1 ORDER BY date ASC, created_at ASC`

	var events []*entities.Event
	err := r.db.SelectContext(ctx, &events, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get user events: %w", err)
	}

	return events, nil
}
