package repository

import (
	"context"
	"errors"

	"github.com/tipstream/api/internal/database"
	"github.com/tipstream/api/internal/model"
)

// TipRepository handles tip data access
type TipRepository struct {
	db database.Database
}

// NewTipRepository creates a new tip repository
func NewTipRepository(db database.Database) *TipRepository {
	return &TipRepository{db: db}
}

// Create persists a new tip with empty vote sets.
func (r *TipRepository) Create(ctx context.Context, tip *model.Tip) error {
	query := `
		CREATE tip CONTENT {
			title: $title,
			body: $body,
			category: $category,
			owner: $owner,
			created_at: time::now(),
			up_votes_by: [],
			down_votes_by: []
		}
	`

	vars := map[string]interface{}{
		"title":    tip.Title,
		"body":     tip.Body,
		"category": tip.Category,
		"owner":    tip.OwnerID,
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

	tip.ID = convertSurrealID(created["id"])
	tip.CreatedAt = getTime(created, "created_at")
	tip.UpVotesBy = []string{}
	tip.DownVotesBy = []string{}
	return nil
}

// List returns all tips, unfiltered and unpaginated.
func (r *TipRepository) List(ctx context.Context) ([]*model.Tip, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM tip`, nil)
	if err != nil {
		return nil, err
	}

	records := extractQueryResults(result)
	tips := make([]*model.Tip, 0, len(records))
	for _, rec := range records {
		if data, ok := asRecord(rec); ok {
			tips = append(tips, parseTip(data))
		}
	}
	return tips, nil
}

// GetByID retrieves a tip by ID. Returns (nil, nil) when absent and
// database.ErrInvalidID when the identifier is malformed.
func (r *TipRepository) GetByID(ctx context.Context, id string) (*model.Tip, error) {
	recordID, err := ensureRecordID("tip", id)
	if err != nil {
		return nil, err
	}

	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": recordID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		if errors.Is(err, database.ErrQuery) {
			return nil, database.ErrInvalidID
		}
		return nil, err
	}

	data, ok := asRecord(result)
	if !ok {
		return nil, nil
	}
	return parseTip(data), nil
}

// AddUpVote records an up-vote, moving the voter out of the down-vote
// set. array::union keeps the sets deduplicated.
func (r *TipRepository) AddUpVote(ctx context.Context, tipID, userID string) (*model.Tip, error) {
	return r.vote(ctx, tipID, userID, `
		UPDATE type::record($id) SET
			up_votes_by = array::union(up_votes_by, [$user]),
			down_votes_by = array::complement(down_votes_by, [$user])
		RETURN AFTER
	`)
}

// AddDownVote records a down-vote, moving the voter out of the up-vote set.
func (r *TipRepository) AddDownVote(ctx context.Context, tipID, userID string) (*model.Tip, error) {
	return r.vote(ctx, tipID, userID, `
		UPDATE type::record($id) SET
			down_votes_by = array::union(down_votes_by, [$user]),
			up_votes_by = array::complement(up_votes_by, [$user])
		RETURN AFTER
	`)
}

func (r *TipRepository) vote(ctx context.Context, tipID, userID, query string) (*model.Tip, error) {
	recordID, err := ensureRecordID("tip", tipID)
	if err != nil {
		return nil, err
	}

	vars := map[string]interface{}{
		"id":   recordID,
		"user": userID,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		if errors.Is(err, database.ErrQuery) {
			return nil, database.ErrInvalidID
		}
		return nil, err
	}

	data, ok := asRecord(result)
	if !ok {
		return nil, nil
	}
	return parseTip(data), nil
}

func parseTip(data map[string]interface{}) *model.Tip {
	return &model.Tip{
		ID:          convertSurrealID(data["id"]),
		Title:       getString(data, "title"),
		Body:        getString(data, "body"),
		Category:    getString(data, "category"),
		OwnerID:     convertSurrealID(data["owner"]),
		CreatedAt:   getTime(data, "created_at"),
		UpVotesBy:   getStringSlice(data, "up_votes_by"),
		DownVotesBy: getStringSlice(data, "down_votes_by"),
	}
}
