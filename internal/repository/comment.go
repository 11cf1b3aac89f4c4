package repository

import (
	"context"
	"errors"

	"github.com/tipstream/api/internal/database"
	"github.com/tipstream/api/internal/model"
)

// CommentRepository handles comment data access
type CommentRepository struct {
	db database.Database
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db database.Database) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create persists a new comment with empty vote sets.
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	query := `
		CREATE comment CONTENT {
			tip: $tip,
			content: $content,
			owner: $owner,
			created_at: time::now(),
			up_votes_by: [],
			down_votes_by: []
		}
	`

	vars := map[string]interface{}{
		"tip":     comment.TipID,
		"content": comment.Content,
		"owner":   comment.OwnerID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	records := extractQueryResults(result)
	if len(records) == 0 {
		return errors.New("no result returned from create")
	}
	created, ok := asRecord(records[0])
	if !ok {
		return errors.New("unexpected result format")
	}

	comment.ID = convertSurrealID(created["id"])
	comment.CreatedAt = getTime(created, "created_at")
	comment.UpVotesBy = []string{}
	comment.DownVotesBy = []string{}
	return nil
}

// ListByTipID returns all comments referencing a tip, in insertion order.
func (r *CommentRepository) ListByTipID(ctx context.Context, tipID string) ([]*model.Comment, error) {
	recordID, err := ensureRecordID("tip", tipID)
	if err != nil {
		return nil, err
	}

	query := `SELECT * FROM comment WHERE tip = $tip`
	vars := map[string]interface{}{"tip": recordID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := extractQueryResults(result)
	comments := make([]*model.Comment, 0, len(records))
	for _, rec := range records {
		if data, ok := asRecord(rec); ok {
			comments = append(comments, parseComment(data))
		}
	}
	return comments, nil
}

func parseComment(data map[string]interface{}) *model.Comment {
	return &model.Comment{
		ID:          convertSurrealID(data["id"]),
		TipID:       convertSurrealID(data["tip"]),
		Content:     getString(data, "content"),
		OwnerID:     convertSurrealID(data["owner"]),
		CreatedAt:   getTime(data, "created_at"),
		UpVotesBy:   getStringSlice(data, "up_votes_by"),
		DownVotesBy: getStringSlice(data, "down_votes_by"),
	}
}
