package model

import "time"

// Tip represents a shared tip. OwnerID is a soft reference to a user
// record: the store does not enforce it, so readers must handle an
// absent owner.
type Tip struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Category    string    `json:"category"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpVotesBy   []string  `json:"upVotesBy"`
	DownVotesBy []string  `json:"downVotesBy"`
}

// TipDetail is the fully-resolved single-tip view: the tip's fields
// with its owner and comments resolved across collections.
type TipDetail struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Body        string          `json:"body"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"createdAt"`
	Owner       UserSummary     `json:"owner"`
	UpVotesBy   []string        `json:"upVotesBy"`
	DownVotesBy []string        `json:"downVotesBy"`
	Comments    []CommentDetail `json:"comments"`
}
