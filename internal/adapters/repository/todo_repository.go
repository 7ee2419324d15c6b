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

// TodoRepositoryImpl implements the TodoRepository interface
type TodoRepositoryImpl struct {
	db *sqlx.DB
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db *sqlx.DB) ports.TodoRepository {
	return &TodoRepositoryImpl{db: db}
}

const todoColumns = `id, user_id, title, description, date, start_time, end_time, tags, done, created_at`

func (r *TodoRepositoryImpl) Create(ctx context.Context, todo *entities.Todo) error {
	query := `
		INSERT INTO todos (id, user_id, title, description, date, start_time, end_time, tags, done)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	if todo.ID == uuid.Nil {
		todo.ID = uuid.New()
	}

	err := r.db.QueryRowContext(ctx, query,
		todo.ID, todo.UserID, todo.Title, todo.Description,
		todo.Date, todo.StartTime, todo.EndTime, todo.Tags, todo.Done,
	).Scan(&todo.CreatedAt)

	if err != nil {
		return fmt.Errorf("create todo: %w", err)
	}

	return nil
}

func (r *TodoRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1`

	var todo entities.Todo
	err := r.db.GetContext(ctx, &todo, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTodoNotFound
		}
		return nil, fmt.Errorf("get todo by id: %w", err)
	}

	return &todo, nil
}

func (r *TodoRepositoryImpl) Update(ctx context.Context, todo *entities.Todo) error {
	query := `
		UPDATE todos
		SET title = $2, description = $3, date = $4, start_time = $5,
			end_time = $6, tags = $7, done = $8
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		todo.ID, todo.Title, todo.Description, todo.Date,
		todo.StartTime, todo.EndTime, todo.Tags, todo.Done,
	)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.ErrTodoNotFound
	}

	return nil
}

func (r *TodoRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM todos WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.ErrTodoNotFound
	}

	return nil
}

func (r *TodoRepositoryImpl) GetUserTodos(ctx context.Context, userID uuid.UUID) ([]*entities.Todo, error) {
	// Creation order; the workspace renders the list as the server returns it.
	query := `SELECT ` + todoColumns + ` FROM todos WHERE user_id = $1 ORDER BY created_at ASC`

	var todos []*entities.Todo
	err := r.db.SelectContext(ctx, &todos, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get user todos: %w", err)
	}

	return todos, nil
}
