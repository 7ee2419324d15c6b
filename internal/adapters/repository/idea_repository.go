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

// IdeaRepositoryImpl implements the IdeaRepository interface
type IdeaRepositoryImpl struct {
	db *sqlx.DB
}

// NewIdeaRepository creates a new idea repository
func NewIdeaRepository(db *sqlx.DB) ports.IdeaRepository {
	return &IdeaRepositoryImpl{db: db}
}

const ideaColumns = `id, user_id, title, description, category, status, tags,
	problem_statement, solution, file_path, admin_comment, reviewed_by_id, created_at`

func (r *IdeaRepositoryImpl) Create(ctx context.Context, idea *entities.Idea) error {
	query := `
		INSERT INTO ideas (id, user_id, title, description, category, status, tags,
			problem_statement, solution, file_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`

	if idea.ID == uuid.Nil {
		idea.ID = uuid.New()
	}
	if idea.Status == "" {
		idea.Status = entities.IdeaStatusSubmitted
	}

	err := r.db.QueryRowContext(ctx, query,
		idea.ID, idea.UserID, idea.Title, idea.Description, idea.Category,
		idea.Status, idea.Tags, idea.ProblemStatement, idea.Solution, idea.FilePath,
	).Scan(&idea.CreatedAt)

	if err != nil {
		return fmt.Errorf("create idea: %w", err)
	}

	return nil
}

func (r *IdeaRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Idea, error) {
	query := `SELECT ` + ideaColumns + ` FROM ideas WHERE id = $1`

	var idea entities.Idea
	err := r.db.GetContext(ctx, &idea, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrIdeaNotFound
		}
		return nil, fmt.Errorf("get idea by id: %w", err)
	}

	return &idea, nil
}

func (r *IdeaRepositoryImpl) Update(ctx context.Context, idea *entities.Idea) error {
	query := `
		UPDATE ideas
		SET title = $2, description = $3, category = $4, status = $5, tags = $6,
			problem_statement = $7, solution = $8, file_path = $9,
			admin_comment = $10, reviewed_by_id = $11
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		idea.ID, idea.Title, idea.Description, idea.Category, idea.Status, idea.Tags,
		idea.ProblemStatement, idea.Solution, idea.FilePath,
		idea.AdminComment, idea.ReviewedByID,
	)
	if err != nil {
		return fmt.Errorf("update idea: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.ErrIdeaNotFound
	}

	return nil
}

func (r *IdeaRepositoryImpl) List(ctx context.Context, filter ports.IdeaFilter) ([]*entities.Idea, error) {
	query := `SELECT ` + ideaColumns + ` FROM ideas WHERE 1=1`
	args := []interface{}{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"
	query = appendPagination(query, &args, filter.Limit, filter.Offset)

	var ideas []*entities.Idea
	err := r.db.SelectContext(ctx, &ideas, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}

	return ideas, nil
}

func (r *IdeaRepositoryImpl) GetUserIdeas(ctx context.Context, userID uuid.UUID, filter ports.IdeaFilter) ([]*entities.Idea, error) {
	query := `SELECT ` + ideaColumns + ` FROM ideas WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"
	query = appendPagination(query, &args, filter.Limit, filter.Offset)

	var ideas []*entities.Idea
	err := r.db.SelectContext(ctx, &ideas, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get user ideas: %w", err)
	}

	return ideas, nil
}

func (r *IdeaRepositoryImpl) CountByStatus(ctx context.Context, userID *uuid.UUID) (ports.StatusCounts, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'accepted') AS accepted,
			COUNT(*) FILTER (WHERE status = 'rejected') AS rejected,
			COUNT(*) FILTER (WHERE status = 'submitted') AS pending
		FROM ideas`
	args := []interface{}{}

	if userID != nil {
		args = append(args, *userID)
		query += " WHERE user_id = $1"
	}

	var counts ports.StatusCounts
	err := r.db.GetContext(ctx, &counts, query, args...)
	if err != nil {
		return ports.StatusCounts{}, fmt.Errorf("count ideas by status: %w", err)
	}

	return counts, nil
}

func (r *IdeaRepositoryImpl) DailyCounts(ctx context.Context) ([]ports.DailyCount, error) {
	query := `
		SELECT to_char(created_at, 'YYYY-MM-DD') AS date, COUNT(*) AS count
		FROM ideas
		GROUP BY 1
		ORDER BY 1`

	var counts []ports.DailyCount
	err := r.db.SelectContext(ctx, &counts, query)
	if err != nil {
		return nil, fmt.Errorf("daily idea counts: %w", err)
	}

	return counts, nil
}

// appendPagination adds LIMIT/OFFSET clauses with a sane default page size.
func appendPagination(query string, args *[]interface{}, limit, offset int) string {
	if limit <= 0 {
		limit = 100
	}
	*args = append(*args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(*args))

	if offset > 0 {
		*args = append(*args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(*args))
	}

	return query
}
