package depmap

import (
	"context"
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	result, err := scanner.ScanRepository(root)
//	if errors.Is(err, depmap.ErrRepositoryNotFound) {
//	    // nothing to scan, which is not the same as zero artifacts
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSourceNotFound indicates the Gradle cache directory does not exist.
	ErrSourceNotFound = errors.New("source cache not found")

	// ErrRepositoryNotFound indicates the Maven repository root does not exist.
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrPathTooShallow indicates a path has fewer segments than the layout requires.
	ErrPathTooShallow = errors.New("path too shallow")

	// ErrEmptyGroup indicates a coordinate would have an empty group id.
	ErrEmptyGroup = errors.New("empty group id")

	// ErrEmptyArtifact indicates a coordinate would have an empty artifact id.
	ErrEmptyArtifact = errors.New("empty artifact id")

	// ErrChecksumMismatch indicates a payload does not match its sidecar checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrSignatureInvalid indicates a payload's .asc signature does not verify against the keyring.
	ErrSignatureInvalid = errors.New("signature verification failed")

	// ErrReferenceTableMissing indicates the imported_artifacts table is absent.
	ErrReferenceTableMissing = errors.New("reference table imported_artifacts not found")

	// ErrConnectionFailed indicates database connection failed.
	ErrConnectionFailed = errors.New("connection failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrSourceNotFound), errors.Is(err, ErrRepositoryNotFound):
		return ExitSourceMissing
	case errors.Is(err, ErrReferenceTableMissing):
		return ExitReferenceTableError
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"accepts ",
		"requires at least",
		"required flag",
		"invalid argument",
	} {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	if strings.Contains(errStr, "failed to connect") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitConnectionError
	}

	return ExitGeneralError
}
