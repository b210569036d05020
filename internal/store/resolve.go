package store

import (
	"errors"
	"fmt"

	"github.com/vvka-141/depmap/pkg/depmap"
)

// match is one (pair, package) row of a left join. An empty package name
// means the pair has no reference entry.
type match struct {
	pair depmap.ArtifactPair
	pkg  depmap.PackageRef
}

// groupMatches folds rows ordered by pair into one Resolution per pair.
func groupMatches(matches []match) []depmap.Resolution {
	resolutions := make([]depmap.Resolution, 0, len(matches))
	for _, m := range matches {
		pkg := m.pkg
		if pkg.Name == "" {
			pkg = depmap.PackageRef{Name: depmap.NotYetPackaged}
		}

		n := len(resolutions)
		if n > 0 && resolutions[n-1].Pair == m.pair {
			resolutions[n-1].Packages = append(resolutions[n-1].Packages, pkg)
			continue
		}
		resolutions = append(resolutions, depmap.Resolution{
			Pair:     m.pair,
			Packages: []depmap.PackageRef{pkg},
		})
	}
	return resolutions
}

// validateEntries reports every invalid entry, indexed from zero.
func validateEntries(entries []depmap.ReferenceEntry) error {
	var errs []error
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("entry %d (%s): %w", i, e.Pair(), err))
		}
	}
	return errors.Join(errs...)
}
