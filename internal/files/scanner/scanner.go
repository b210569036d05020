package scanner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/depmap/internal/files/filesystem"
	"github.com/vvka-141/depmap/pkg/depmap"
)

// Scanner discovers artifact pairs in a Maven repository tree.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	logger     depmap.Logger
}

// NewScanner creates a scanner over the OS filesystem.
// Panics if logger is nil.
func NewScanner(logger depmap.Logger) *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), logger)
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider or logger is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, logger depmap.Logger) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// ScanRepository walks root and returns every (group, artifact) pair that has
// at least one descriptor, sorted and without duplicates.
//
// A missing root yields depmap.ErrRepositoryNotFound and a zero result. An
// existing root with no descriptors yields an empty, non-nil Pairs slice.
func (s *Scanner) ScanRepository(root string) (depmap.ScanResult, error) {
	info, err := s.fsProvider.Stat(root)
	if err != nil || !info.IsDir() {
		s.logger.Error("Maven repository not found: %s", root)
		return depmap.ScanResult{}, fmt.Errorf("%s: %w", root, depmap.ErrRepositoryNotFound)
	}

	dir, err := s.fsProvider.Open(root)
	if err != nil {
		return depmap.ScanResult{}, fmt.Errorf("%s: %w", root, depmap.ErrRepositoryNotFound)
	}

	seen := make(map[depmap.ArtifactPair]struct{})
	result := depmap.ScanResult{Pairs: []depmap.ArtifactPair{}}

	err = dir.Walk(func(file filesystem.File, walkErr error) error {
		if walkErr != nil {
			path := root
			if file != nil {
				path = file.Path()
			}
			s.logger.Warn("Cannot read %s: %v", path, walkErr)
			return nil
		}
		if file.Info().IsDir() || !isDescriptor(file.Info().Name()) {
			return nil
		}

		coord, err := CoordinateOf(file.RelativePath())
		if err != nil {
			s.logger.Warn("Skipping descriptor %s: %v", file.Path(), err)
			result.Rejected = append(result.Rejected, depmap.Rejection{Path: file.Path(), Err: err})
			return nil
		}

		pair := coord.Pair()
		if _, ok := seen[pair]; ok {
			return nil
		}
		seen[pair] = struct{}{}
		result.Pairs = append(result.Pairs, pair)
		s.logger.Verbose("Found %s", pair)
		return nil
	})
	if err != nil {
		return depmap.ScanResult{}, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	depmap.SortPairs(result.Pairs)
	return result, nil
}

// CoordinateOf derives the coordinate of a descriptor from its path relative
// to the repository root. The descriptor's directory is the version directory.
func CoordinateOf(descriptorRel string) (depmap.Coordinate, error) {
	versionDir := filepath.Dir(filepath.FromSlash(descriptorRel))
	if versionDir == "." {
		return depmap.Coordinate{}, fmt.Errorf("%q sits at the repository root: %w", descriptorRel, depmap.ErrPathTooShallow)
	}
	return depmap.CoordinateFromRepositoryPath(versionDir)
}

func isDescriptor(name string) bool {
	return strings.HasSuffix(name, depmap.DescriptorExtension) && len(name) > len(depmap.DescriptorExtension)
}
