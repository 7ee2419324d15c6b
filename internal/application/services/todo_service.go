package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/innovatepam/portal/internal/domain/entities"
	"github.com/innovatepam/portal/internal/infrastructure/logger"
	"github.com/innovatepam/portal/internal/ports"
)

// TodoService handles todo operations
type TodoService struct {
	todoRepo ports.TodoRepository
	userRepo ports.UserRepository
	notifier ports.NotificationService
	logger   *logger.Logger
}

// NewTodoService creates a new todo service
func NewTodoService(todoRepo ports.TodoRepository, userRepo ports.UserRepository, notifier ports.NotificationService, logger *logger.Logger) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateTodo creates a todo for the caller, or for another user when an admin
// supplies a target user id. Assigned todos notify the assignee.
func (s *TodoService) CreateTodo(ctx context.Context, ownerID uuid.UUID, ownerRole entities.UserRole, req ports.CreateTodoRequest) (*entities.Todo, error) {
	targetID := ownerID
	assigned := false

	if req.UserID != nil && *req.UserID != "" {
		parsed, err := uuid.Parse(*req.UserID)
		if err != nil {
			return nil, fmt.Errorf("invalid user id: %w", err)
		}
		if parsed != ownerID {
			if ownerRole != entities.UserRoleAdmin {
				return nil, entities.ErrForbidden
			}
			if _, err := s.userRepo.GetByID(ctx, parsed); err != nil {
				return nil, err
			}
			targetID = parsed
			assigned = true
		}
	}

	todo := &entities.Todo{
		ID:          uuid.New(),
		UserID:      targetID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Tags:        req.Tags,
		Done:        false,
	}

	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	if assigned {
		message := fmt.Sprintf("You were assigned a task: %s", todo.Title)
		if err := s.notifier.Notify(ctx, targetID, message, entities.NotificationTypeSystem); err != nil {
			s.logger.Warn("Failed to notify assignee", "error", err, "todo_id", todo.ID)
		}
	}

	s.logger.Info("Todo created", "todo_id", todo.ID, "user_id", targetID, "assigned", assigned)
	return todo, nil
}

// UpdateTodo applies a partial update to the caller's own todo. Unset fields
// keep their stored values; Done is a pointer so false is a real update.
func (s *TodoService) UpdateTodo(ctx context.Context, id, userID uuid.UUID, req ports.UpdateTodoRequest) (*entities.Todo, error) {
	todo, err := s.todoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if todo.UserID != userID {
		return nil, entities.ErrTodoNotFound
	}

	if req.Title != nil {
		todo.Title = *req.Title
	}
	if req.Description != nil {
		todo.Description = req.Description
	}
	if req.Date != nil {
		todo.Date = req.Date
	}
	if req.StartTime != nil {
		todo.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		todo.EndTime = req.EndTime
	}
	if req.Tags != nil {
		todo.Tags = req.Tags
	}
	if req.Done != nil {
		todo.Done = *req.Done
	}

	if err := s.todoRepo.Update(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return todo, nil
}

// DeleteTodo removes the caller's own todo.
func (s *TodoService) DeleteTodo(ctx context.Context, id, userID uuid.UUID) error {
	todo, err := s.todoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if todo.UserID != userID {
		return entities.ErrTodoNotFound
	}

	if err := s.todoRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	s.logger.Info("Todo deleted", "todo_id", id, "user_id", userID)
	return nil
}

// ListUserTodos returns the caller's todos in creation order.
func (s *TodoService) ListUserTodos(ctx context.Context, userID uuid.UUID) ([]*entities.Todo, error) {
	todos, err := s.todoRepo.GetUserTodos(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}
