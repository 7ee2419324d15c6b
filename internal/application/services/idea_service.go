package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/innovatepam/portal/internal/domain/entities"
	"github.com/innovatepam/portal/internal/infrastructure/config"
	"github.com/innovatepam/portal/internal/infrastructure/logger"
	"github.com/innovatepam/portal/internal/ports"
)

// IdeaService handles idea submission and review
type IdeaService struct {
	ideaRepo ports.IdeaRepository
	notifier ports.NotificationService
	uploads  config.UploadsConfig
	logger   *logger.Logger
}

// NewIdeaService creates a new idea service
func NewIdeaService(ideaRepo ports.IdeaRepository, notifier ports.NotificationService, uploads config.UploadsConfig, logger *logger.Logger) *IdeaService {
	return &IdeaService{
		ideaRepo: ideaRepo,
		notifier: notifier,
		uploads:  uploads,
		logger:   logger,
	}
}

// SubmitIdea stores a new idea in the submitted state. An optional attachment
// is persisted under the uploads directory with a generated name; the original
// filename only contributes its extension.
func (s *IdeaService) SubmitIdea(ctx context.Context, userID uuid.UUID, req ports.SubmitIdeaRequest) (*entities.Idea, error) {
	idea := &entities.Idea{
		ID:               uuid.New(),
		UserID:           userID,
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Status:           entities.IdeaStatusSubmitted,
		Tags:             req.Tags,
		ProblemStatement: req.ProblemStatement,
		Solution:         req.Solution,
	}

	if req.Attachment != nil {
		path, err := s.saveAttachment(req.Attachment)
		if err != nil {
			return nil, fmt.Errorf("failed to save attachment: %w", err)
		}
		idea.FilePath = &path
	}

	if err := s.ideaRepo.Create(ctx, idea); err != nil {
		if idea.FilePath != nil {
			_ = os.Remove(*idea.FilePath)
		}
		return nil, fmt.Errorf("failed to create idea: %w", err)
	}

	s.logger.Info("Idea submitted", "idea_id", idea.ID, "user_id", userID, "category", idea.Category)
	return idea, nil
}

// GetIdea returns an idea visible to the requester. Submitters may only read
// their own ideas; admins may read any.
func (s *IdeaService) GetIdea(ctx context.Context, id, requesterID uuid.UUID, requesterRole entities.UserRole) (*entities.Idea, error) {
	idea, err := s.ideaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if idea.UserID != requesterID && requesterRole != entities.UserRoleAdmin {
		return nil, entities.ErrIdeaNotFound
	}

	return idea, nil
}

// ListUserIdeas returns the requester's own submissions.
func (s *IdeaService) ListUserIdeas(ctx context.Context, userID uuid.UUID, filter ports.IdeaFilter) ([]*entities.Idea, error) {
	ideas, err := s.ideaRepo.GetUserIdeas(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list user ideas: %w", err)
	}
	return ideas, nil
}

// ListAllIdeas returns every submission; callers must enforce admin access.
func (s *IdeaService) ListAllIdeas(ctx context.Context, filter ports.IdeaFilter) ([]*entities.Idea, error) {
	ideas, err := s.ideaRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	return ideas, nil
}

// EvaluateIdea records an admin verdict and notifies the author.
func (s *IdeaService) EvaluateIdea(ctx context.Context, ideaID, reviewerID uuid.UUID, req ports.EvaluateIdeaRequest) (*entities.Idea, error) {
	idea, err := s.ideaRepo.GetByID(ctx, ideaID)
	if err != nil {
		return nil, err
	}

	if err := idea.Evaluate(req.Status, req.AdminComment, reviewerID); err != nil {
		return nil, err
	}

	if err := s.ideaRepo.Update(ctx, idea); err != nil {
		return nil, fmt.Errorf("failed to update idea: %w", err)
	}

	s.logger.Info("Idea evaluated", "idea_id", idea.ID, "status", idea.Status, "reviewer_id", reviewerID)

	message := fmt.Sprintf("Your idea %q was %s. Comment: %s", idea.Title, idea.Status, req.AdminComment)
	if err := s.notifier.Notify(ctx, idea.UserID, message, entities.NotificationTypeEvaluation); err != nil {
		// The verdict is already committed; a lost notification is logged, not fatal.
		s.logger.Warn("Failed to notify idea author", "error", err, "idea_id", idea.ID)
	}

	return idea, nil
}

func (s *IdeaService) saveAttachment(att *ports.Attachment) (string, error) {
	if err := os.MkdirAll(s.uploads.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	name := uuid.New().String() + filepath.Ext(att.Filename)
	path := filepath.Join(s.uploads.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create attachment file: %w", err)
	}
	defer f.Close()

	reader := io.Reader(att.Content)
	if s.uploads.MaxSizeBytes > 0 {
		reader = io.LimitReader(reader, s.uploads.MaxSizeBytes+1)
	}

	n, err := io.Copy(f, reader)
	if err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write attachment: %w", err)
	}
	if s.uploads.MaxSizeBytes > 0 && n > s.uploads.MaxSizeBytes {
		_ = os.Remove(path)
		return "", fmt.Errorf("attachment exceeds %d bytes", s.uploads.MaxSizeBytes)
	}

	return path, nil
}
