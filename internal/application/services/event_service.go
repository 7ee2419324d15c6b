package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/innovatepam/portal/internal/domain/entities"
	"github.com/innovatepam/portal/internal/infrastructure/logger"
	"github.com/innovatepam/portal/internal/ports"
)

// EventService handles calendar event operations. Events cannot be updated
// or deleted once created, so the service surface is create and list only.
type EventService struct {
	eventRepo ports.EventRepository
	logger    *logger.Logger
}

// NewEventService creates a new event service
func NewEventService(eventRepo ports.EventRepository, logger *logger.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// CreateEvent stores a new calendar event for the caller.
func (s *EventService) CreateEvent(ctx context.Context, userID uuid.UUID, req ports.CreateEventRequest) (*entities.Event, error) {
	color := req.Color
	if color == "" {
		color = entities.DefaultEventColor
	}

	event := &entities.Event{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Description: req.Description,
		Color:       color,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.Info("Event created", "event_id", event.ID, "user_id", userID, "date", event.Date)
	return event, nil
}

// ListUserEvents returns the caller's events ordered by date.
func (s *EventService) ListUserEvents(ctx context.Context, userID uuid.UUID) ([]*entities.Event, error) {
	events, err := s.eventRepo.GetUserEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}
