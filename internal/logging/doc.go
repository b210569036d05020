// Package logging provides concrete implementations of the depmap.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Progress to stdout, warnings and errors to stderr
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
