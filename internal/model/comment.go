package model

import "time"

// Comment represents a comment on a tip. TipID and OwnerID are soft
// references resolved at read time.
type Comment struct {
	ID          string    `json:"id"`
	TipID       string    `json:"tipId"`
	Content     string    `json:"content"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpVotesBy   []string  `json:"upVotesBy"`
	DownVotesBy []string  `json:"downVotesBy"`
}

// CommentDetail is a comment with its owner resolved. Owner may be the
// Unknown placeholder when the author record is gone.
type CommentDetail struct {
	ID          string      `json:"id"`
	Content     string      `json:"content"`
	CreatedAt   time.Time   `json:"createdAt"`
	Owner       UserSummary `json:"owner"`
	UpVotesBy   []string    `json:"upVotesBy"`
	DownVotesBy []string    `json:"downVotesBy"`
}
