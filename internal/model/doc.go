// Package model defines domain entities and response types for the
// Tipstream API.
//
// Core entities:
//
//   - User: registered account with credentials (hash never serialized)
//   - Tip: shared tip with category and vote sets
//   - Comment: comment on a tip
//   - TipDetail / CommentDetail: read views with owners resolved
//
// Relationships between entities are soft references (string id
// fields). Referential integrity is not enforced by the store; read
// paths must handle an absent referent.
//
// Response is the uniform envelope written by every handler:
//
//	{"status": "success" | "fail" | "error", "message": ..., "data": ...}
package model
