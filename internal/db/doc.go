// Package db connects depmap to PostgreSQL.
//
// Connection strings are accepted as PostgreSQL URIs or semicolon separated
// key=value pairs and normalized into a depmap.ConnectionConfig. Connect opens
// a single-connection pgx pool and verifies it with a ping. Connection
// failures are reported once, with a hint for the usual causes, and are never
// retried.
package db
