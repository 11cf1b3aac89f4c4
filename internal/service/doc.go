// Package service implements the business logic layer for the
// Tipstream API.
//
// Services define their own repository interfaces so they can be unit
// tested against in-memory mocks, and return sentinel errors from
// errors.go that handlers map onto the response envelope.
//
//   - AuthService: registration, login, sanitized user lookups
//   - TokenService: bearer token issuance and verification
//   - TipService: tip CRUD, voting, comments, and the detailed-tip
//     aggregation that joins tip, owner, comments, and comment owners
package service
