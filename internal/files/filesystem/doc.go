// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// The layout converter and the identity scanner read their input trees through
// FileSystemProvider, which lets tests describe a Gradle cache or a Maven
// repository in memory. Writes always go to the OS filesystem.
//
// Key interfaces:
//   - FileSystemProvider: Opens directories and files, lists and stats paths
//   - Directory: Represents a directory that can be traversed
//   - File: Represents an individual entry with its metadata
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
