package depmap

import "context"

// LookupStore persists scanned pairs and joins them against the reference mapping.
type LookupStore interface {
	// Replace drops the stored pair set and loads pairs in its place.
	// The replacement is atomic: readers see either the old or the new set.
	Replace(ctx context.Context, pairs []ArtifactPair) error

	// MatchedPackages returns the distinct package names whose reference rows
	// match a stored pair. No ordering is guaranteed.
	// Returns ErrReferenceTableMissing if the reference mapping does not exist.
	MatchedPackages(ctx context.Context) ([]string, error)

	// Resolve returns, for every stored pair, the packages providing it.
	Resolve(ctx context.Context) ([]Resolution, error)

	// Search returns reference rows whose group and artifact start with the given prefixes.
	Search(ctx context.Context, groupPrefix, artifactPrefix string) ([]ReferenceEntry, error)

	// ImportReference creates the reference mapping if needed and upserts entries.
	ImportReference(ctx context.Context, entries []ReferenceEntry) error

	// Close releases the underlying connection.
	Close()
}
