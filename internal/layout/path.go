package layout

import (
	"fmt"
	"strings"

	"github.com/vvka-141/depmap/pkg/depmap"
)

// SourceDepth is the number of leading path segments below the cache root that
// identify a coordinate: group, artifact, version.
const SourceDepth = 3

// ParseSourcePath derives a coordinate from a directory path relative to the
// Gradle cache root. Segment 0 is the group, 1 the artifact, 2 the version;
// further segments are ignored.
//
// Returns an error wrapping depmap.ErrPathTooShallow when fewer than
// SourceDepth segments are present.
func ParseSourcePath(rel string) (depmap.Coordinate, error) {
	segments := splitSegments(rel)
	if len(segments) < SourceDepth {
		return depmap.Coordinate{}, fmt.Errorf("%q has %d segment(s), need %d: %w",
			rel, len(segments), SourceDepth, depmap.ErrPathTooShallow)
	}

	c := depmap.Coordinate{
		GroupID:    segments[0],
		ArtifactID: segments[1],
		Version:    segments[2],
	}
	if err := c.Validate(); err != nil {
		return depmap.Coordinate{}, fmt.Errorf("%q: %w", rel, err)
	}
	return c, nil
}

// IsPayload reports whether name marks its directory as a version directory.
func IsPayload(name string) bool {
	return hasAnySuffix(name, depmap.PayloadExtensions)
}

// IsSidecar reports whether name is a checksum or signature file.
func IsSidecar(name string) bool {
	return hasAnySuffix(name, depmap.SidecarSuffixes)
}

func hasAnySuffix(name string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

func splitSegments(rel string) []string {
	rel = strings.ReplaceAll(rel, "\\", "/")
	var segments []string
	for _, s := range strings.Split(rel, "/") {
		if s != "" && s != "." {
			segments = append(segments, s)
		}
	}
	return segments
}
