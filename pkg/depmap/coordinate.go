package depmap

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Coordinate identifies one version of a dependency.
//
// It is the contract between the layout converter and the identity scanner:
// the converter writes payloads into RepositoryDir() and the scanner reads
// identities back with CoordinateFromRepositoryPath. Neither side re-derives
// the Maven layout on its own.
type Coordinate struct {
	GroupID    string // dot separated, e.g. "com.google.guava"
	ArtifactID string
	Version    string // taken from the path as is, never validated
}

// Validate checks that the group and artifact ids are non-empty.
func (c Coordinate) Validate() error {
	if c.GroupID == "" {
		return ErrEmptyGroup
	}
	if c.ArtifactID == "" {
		return ErrEmptyArtifact
	}
	return nil
}

// Pair strips the version.
func (c Coordinate) Pair() ArtifactPair {
	return ArtifactPair{GroupID: c.GroupID, ArtifactID: c.ArtifactID}
}

// String renders group:artifact:version.
func (c Coordinate) String() string {
	return fmt.Sprintf("%s:%s:%s", c.GroupID, c.ArtifactID, c.Version)
}

// RepositoryDir returns the Maven layout directory for the coordinate, relative
// to the repository root, using the platform separator:
//
//	com.example / lib / 1.0  ->  com/example/lib/1.0
func (c Coordinate) RepositoryDir() string {
	groupPath := strings.ReplaceAll(c.GroupID, ".", string(filepath.Separator))
	return filepath.Join(groupPath, c.ArtifactID, c.Version)
}

// CoordinateFromRepositoryPath is the inverse of RepositoryDir. The argument is
// a version directory path relative to the repository root. The last segment is
// the version, the one before it the artifact, and everything above is the group.
//
// Returns ErrPathTooShallow when fewer than two segments are present and
// ErrEmptyGroup when the artifact directory sits directly under the root.
func CoordinateFromRepositoryPath(rel string) (Coordinate, error) {
	segments := splitPath(rel)
	if len(segments) < 2 {
		return Coordinate{}, fmt.Errorf("%q has %d segment(s), need at least 2: %w", rel, len(segments), ErrPathTooShallow)
	}

	n := len(segments)
	c := Coordinate{
		GroupID:    strings.Join(segments[:n-2], "."),
		ArtifactID: segments[n-2],
		Version:    segments[n-1],
	}
	if err := c.Validate(); err != nil {
		return Coordinate{}, fmt.Errorf("%q: %w", rel, err)
	}
	return c, nil
}

// splitPath splits a relative path on either separator and drops empty and "." segments.
func splitPath(rel string) []string {
	rel = filepath.ToSlash(rel)
	var segments []string
	for _, s := range strings.Split(rel, "/") {
		if s == "" || s == "." {
			continue
		}
		segments = append(segments, s)
	}
	return segments
}

// ArtifactPair is a coordinate without its version. It is the deduplication key
// for scan results and the primary key of the dependencies table.
type ArtifactPair struct {
	GroupID    string
	ArtifactID string
}

// String renders group:artifact.
func (p ArtifactPair) String() string {
	return p.GroupID + ":" + p.ArtifactID
}

// Less orders pairs by group, then artifact.
func (p ArtifactPair) Less(other ArtifactPair) bool {
	if p.GroupID != other.GroupID {
		return p.GroupID < other.GroupID
	}
	return p.ArtifactID < other.ArtifactID
}

// SortPairs sorts pairs ascending by (group, artifact) in place.
func SortPairs(pairs []ArtifactPair) {
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Less(pairs[j])
	})
}
