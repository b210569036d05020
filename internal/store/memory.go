package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/vvka-141/depmap/pkg/depmap"
)

// referenceKey is the uniqueness key of imported_artifacts.
type referenceKey struct {
	group, artifact, version, pkg string
}

// MemoryStore is a process-local LookupStore. Until ImportReference is called
// it behaves like a database without an imported_artifacts table.
type MemoryStore struct {
	mu        sync.Mutex
	pairs     []depmap.ArtifactPair
	reference map[referenceKey]depmap.ReferenceEntry // nil until imported
}

// NewMemoryStore creates an empty store with no reference mapping.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Replace implements depmap.LookupStore.
func (s *MemoryStore) Replace(_ context.Context, pairs []depmap.ArtifactPair) error {
	seen := make(map[depmap.ArtifactPair]struct{}, len(pairs))
	stored := make([]depmap.ArtifactPair, 0, len(pairs))
	for _, p := range pairs {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		stored = append(stored, p)
	}
	depmap.SortPairs(stored)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pairs = stored
	return nil
}

// MatchedPackages implements depmap.LookupStore. Names come back sorted.
func (s *MemoryStore) MatchedPackages(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reference == nil {
		return nil, depmap.ErrReferenceTableMissing
	}

	stored := make(map[depmap.ArtifactPair]struct{}, len(s.pairs))
	for _, p := range s.pairs {
		stored[p] = struct{}{}
	}

	set := make(map[string]struct{})
	for _, e := range s.reference {
		if _, ok := stored[e.Pair()]; ok {
			set[e.PackageName] = struct{}{}
		}
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Resolve implements depmap.LookupStore.
func (s *MemoryStore) Resolve(_ context.Context) ([]depmap.Resolution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reference == nil {
		return nil, depmap.ErrReferenceTableMissing
	}

	byPair := make(map[depmap.ArtifactPair][]depmap.PackageRef)
	for _, e := range s.reference {
		byPair[e.Pair()] = append(byPair[e.Pair()], depmap.PackageRef{Name: e.PackageName, Version: e.PackageVersion})
	}

	var matches []match
	for _, p := range s.pairs {
		pkgs := uniqueRefs(byPair[p])
		if len(pkgs) == 0 {
			matches = append(matches, match{pair: p})
			continue
		}
		for _, ref := range pkgs {
			matches = append(matches, match{pair: p, pkg: ref})
		}
	}
	return groupMatches(matches), nil
}

// Search implements depmap.LookupStore.
func (s *MemoryStore) Search(_ context.Context, groupPrefix, artifactPrefix string) ([]depmap.ReferenceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reference == nil {
		return nil, depmap.ErrReferenceTableMissing
	}

	var found []depmap.ReferenceEntry
	for _, e := range s.reference {
		if strings.HasPrefix(e.GroupID, groupPrefix) && strings.HasPrefix(e.ArtifactID, artifactPrefix) {
			found = append(found, e)
		}
	}
	sort.Slice(found, func(i, j int) bool {
		a, b := found[i], found[j]
		if a.GroupID != b.GroupID {
			return a.GroupID < b.GroupID
		}
		if a.ArtifactID != b.ArtifactID {
			return a.ArtifactID < b.ArtifactID
		}
		if a.Version != b.Version {
			return a.Version < b.Version
		}
		return a.PackageName < b.PackageName
	})
	return found, nil
}

// ImportReference implements depmap.LookupStore.
func (s *MemoryStore) ImportReference(_ context.Context, entries []depmap.ReferenceEntry) error {
	if err := validateEntries(entries); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reference == nil {
		s.reference = make(map[referenceKey]depmap.ReferenceEntry, len(entries))
	}
	for _, e := range entries {
		s.reference[referenceKey{e.GroupID, e.ArtifactID, e.Version, e.PackageName}] = e
	}
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() {}

// uniqueRefs sorts refs by name then version and drops duplicates.
func uniqueRefs(refs []depmap.PackageRef) []depmap.PackageRef {
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Name != refs[j].Name {
			return refs[i].Name < refs[j].Name
		}
		return refs[i].Version < refs[j].Version
	})
	var out []depmap.PackageRef
	for _, r := range refs {
		if len(out) > 0 && out[len(out)-1] == r {
			continue
		}
		out = append(out, r)
	}
	return out
}

var _ depmap.LookupStore = (*MemoryStore)(nil)
