// Package middleware provides HTTP middleware for the Tipstream API:
// request IDs, structured request logging, panic recovery, CORS, gzip
// compression, and the bearer-token auth gate.
package middleware
