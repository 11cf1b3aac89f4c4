package service

import (
	"context"
	"errors"
	"strings"

	"github.com/tipstream/api/internal/database"
	"github.com/tipstream/api/internal/model"
)

// TipRepository defines the interface for tip storage
type TipRepository interface {
	Create(ctx context.Context, tip *model.Tip) error
	List(ctx context.Context) ([]*model.Tip, error)
	GetByID(ctx context.Context, id string) (*model.Tip, error)
	AddUpVote(ctx context.Context, tipID, userID string) (*model.Tip, error)
	AddDownVote(ctx context.Context, tipID, userID string) (*model.Tip, error)
}

// CommentRepository defines the interface for comment storage
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	ListByTipID(ctx context.Context, tipID string) ([]*model.Comment, error)
}

// TipService handles tip operations and the detailed-tip aggregation
type TipService struct {
	tipRepo     TipRepository
	commentRepo CommentRepository
	userRepo    UserRepository
}

// TipServiceConfig holds configuration for the tip service
type TipServiceConfig struct {
	TipRepo     TipRepository
	CommentRepo CommentRepository
	UserRepo    UserRepository
}

// NewTipService creates a new tip service
func NewTipService(cfg TipServiceConfig) *TipService {
	return &TipService{
		tipRepo:     cfg.TipRepo,
		commentRepo: cfg.CommentRepo,
		userRepo:    cfg.UserRepo,
	}
}

// CreateTipRequest represents an add-tip request
type CreateTipRequest struct {
	Title    string
	Body     string
	Category string
}

// Create validates and persists a new tip owned by ownerID.
func (s *TipService) Create(ctx context.Context, ownerID string, req CreateTipRequest) (*model.Tip, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, ErrBodyRequired
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, ErrCategoryRequired
	}

	tip := &model.Tip{
		Title:    strings.TrimSpace(req.Title),
		Body:     strings.TrimSpace(req.Body),
		Category: strings.TrimSpace(req.Category),
		OwnerID:  ownerID,
	}

	if err := s.tipRepo.Create(ctx, tip); err != nil {
		return nil, err
	}
	return tip, nil
}

// List returns all tips.
func (s *TipService) List(ctx context.Context) ([]*model.Tip, error) {
	return s.tipRepo.List(ctx)
}

// GetDetail assembles the fully-resolved view of a single tip:
// the tip, its owner, its comments, and each comment's owner.
//
// The asymmetry is deliberate: a tip without an identifiable author is
// not meaningful to display, so a missing tip owner fails the whole
// request. A comment thread stays viewable even if an author record was
// deleted, so a missing comment owner degrades to a placeholder.
func (s *TipService) GetDetail(ctx context.Context, tipID string) (*model.TipDetail, error) {
	tip, err := s.tipRepo.GetByID(ctx, tipID)
	if err != nil {
		if errors.Is(err, database.ErrInvalidID) {
			return nil, ErrTipNotFound
		}
		return nil, err
	}
	if tip == nil {
		return nil, ErrTipNotFound
	}

	owner, err := s.userRepo.GetByID(ctx, tip.OwnerID)
	if err != nil && !errors.Is(err, database.ErrInvalidID) {
		return nil, err
	}
	if owner == nil {
		return nil, ErrTipNotFound
	}

	comments, err := s.commentRepo.ListByTipID(ctx, tip.ID)
	if err != nil {
		return nil, err
	}

	// Comment owners are resolved independently; memoize per request so
	// a busy commenter is only looked up once.
	owners := map[string]model.UserSummary{
		owner.ID: owner.Summary(),
	}

	details := make([]model.CommentDetail, 0, len(comments))
	for _, c := range comments {
		summary, ok := owners[c.OwnerID]
		if !ok {
			summary = s.resolveCommentOwner(ctx, c.OwnerID)
			owners[c.OwnerID] = summary
		}
		details = append(details, model.CommentDetail{
			ID:          c.ID,
			Content:     c.Content,
			CreatedAt:   c.CreatedAt,
			Owner:       summary,
			UpVotesBy:   c.UpVotesBy,
			DownVotesBy: c.DownVotesBy,
		})
	}

	return &model.TipDetail{
		ID:          tip.ID,
		Title:       tip.Title,
		Body:        tip.Body,
		Category:    tip.Category,
		CreatedAt:   tip.CreatedAt,
		Owner:       owner.Summary(),
		UpVotesBy:   tip.UpVotesBy,
		DownVotesBy: tip.DownVotesBy,
		Comments:    details,
	}, nil
}

// resolveCommentOwner looks up a comment author, substituting the
// Unknown placeholder when the record is gone or the reference is
// malformed.
func (s *TipService) resolveCommentOwner(ctx context.Context, ownerID string) model.UserSummary {
	user, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil || user == nil {
		return model.UnknownUser()
	}
	return user.Summary()
}

// UpVote records userID's up-vote on a tip and returns the updated tip.
func (s *TipService) UpVote(ctx context.Context, tipID, userID string) (*model.Tip, error) {
	tip, err := s.tipRepo.AddUpVote(ctx, tipID, userID)
	if err != nil {
		if errors.Is(err, database.ErrInvalidID) {
			return nil, ErrTipNotFound
		}
		return nil, err
	}
	if tip == nil {
		return nil, ErrTipNotFound
	}
	return tip, nil
}

// DownVote records userID's down-vote on a tip and returns the updated tip.
func (s *TipService) DownVote(ctx context.Context, tipID, userID string) (*model.Tip, error) {
	tip, err := s.tipRepo.AddDownVote(ctx, tipID, userID)
	if err != nil {
		if errors.Is(err, database.ErrInvalidID) {
			return nil, ErrTipNotFound
		}
		return nil, err
	}
	if tip == nil {
		return nil, ErrTipNotFound
	}
	return tip, nil
}

// AddComment validates and persists a comment on an existing tip.
func (s *TipService) AddComment(ctx context.Context, tipID, ownerID, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	tip, err := s.tipRepo.GetByID(ctx, tipID)
	if err != nil {
		if errors.Is(err, database.ErrInvalidID) {
			return nil, ErrTipNotFound
		}
		return nil, err
	}
	if tip == nil {
		return nil, ErrTipNotFound
	}

	comment := &model.Comment{
		TipID:   tip.ID,
		Content: strings.TrimSpace(content),
		OwnerID: ownerID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
