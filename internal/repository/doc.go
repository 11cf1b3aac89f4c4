// Package repository implements the data access layer for the Tipstream API.
//
// Each repository struct wraps a database.Database and handles one
// collection: user (credentials), tip, and comment. All queries are
// parameterized SurrealQL with $variable syntax; type::record() is used
// for safe ID handling and time::now() for timestamps.
//
// Lookup methods return (nil, nil) for an absent record so callers can
// distinguish "not there" from a store failure. Malformed identifiers
// surface as database.ErrInvalidID.
package repository
