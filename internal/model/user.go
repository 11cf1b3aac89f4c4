package model

import (
	"fmt"
	"net/url"
	"time"
)

// User represents a registered account.
//
// Hash is never serialized: the json:"-" tag is what guarantees the
// sanitized user responses required by the API (no handler ever has to
// strip the password by hand).
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Hash      string    `json:"-"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserSummary is the owner shape embedded in tip and comment views.
// ID is a pointer so the placeholder owner serializes as {"id": null}.
type UserSummary struct {
	ID     *string `json:"id"`
	Name   string  `json:"name"`
	Avatar string  `json:"avatar"`
}

// Summary returns the embeddable owner view of a user.
func (u *User) Summary() UserSummary {
	id := u.ID
	return UserSummary{
		ID:     &id,
		Name:   u.Name,
		Avatar: u.Avatar,
	}
}

// UnknownUser is the placeholder owner substituted when a comment's
// author record no longer exists. Comments degrade gracefully; the
// thread stays readable even after an author account is deleted.
func UnknownUser() UserSummary {
	return UserSummary{ID: nil, Name: "Unknown", Avatar: ""}
}

// DefaultAvatar builds the generated avatar URL used when registration
// does not supply one.
func DefaultAvatar(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name))
}
