package database

import "context"

// Schema defines the tables and indexes the API relies on. Email
// uniqueness lives here, in the store, so concurrent registrations with
// the same address cannot both succeed: the second CREATE fails on the
// index instead of racing an application-level existence check.
const Schema = `
DEFINE TABLE IF NOT EXISTS user SCHEMALESS;
DEFINE INDEX IF NOT EXISTS user_email_unique ON TABLE user COLUMNS email UNIQUE;

DEFINE TABLE IF NOT EXISTS tip SCHEMALESS;
DEFINE TABLE IF NOT EXISTS comment SCHEMALESS;
`

// ApplySchema executes the schema definitions. Safe to run on every
// startup: all statements are IF NOT EXISTS.
func ApplySchema(ctx context.Context, db Database) error {
	return db.Execute(ctx, Schema, nil)
}
