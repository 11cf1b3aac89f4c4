package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tipstream/api/internal/database"
	"github.com/tipstream/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user. The unique index on user.email makes the
// duplicate check atomic: a concurrent registration with the same email
// fails here, not in an application-level existence check.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE user CONTENT {
			name: $name,
			email: $email,
			hash: $hash,
			avatar: $avatar,
			created_at: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":   user.Name,
		"email":  user.Email,
		"hash":   user.Hash,
		"avatar": user.Avatar,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
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

	user.ID = convertSurrealID(created["id"])
	user.CreatedAt = getTime(created, "created_at")
	return nil
}

// GetByID retrieves a user by ID. Returns (nil, nil) when absent.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	recordID, err := ensureRecordID("user", id)
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
			// type::record rejected the id
			return nil, database.ErrInvalidID
		}
		return nil, err
	}

	data, ok := asRecord(result)
	if !ok {
		return nil, nil
	}
	return parseUser(data), nil
}

// GetByEmail retrieves a user by email. Returns (nil, nil) when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, ok := asRecord(result)
	if !ok {
		return nil, nil
	}
	return parseUser(data), nil
}

// List returns all users in insertion order.
func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM user`, nil)
	if err != nil {
		return nil, err
	}

	records := extractQueryResults(result)
	users := make([]*model.User, 0, len(records))
	for _, rec := range records {
		if data, ok := asRecord(rec); ok {
			users = append(users, parseUser(data))
		}
	}
	return users, nil
}

func parseUser(data map[string]interface{}) *model.User {
	return &model.User{
		ID:        convertSurrealID(data["id"]),
		Name:      getString(data, "name"),
		Email:     getString(data, "email"),
		Hash:      getString(data, "hash"),
		Avatar:    getString(data, "avatar"),
		CreatedAt: getTime(data, "created_at"),
	}
}
