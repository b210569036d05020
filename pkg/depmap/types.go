package depmap

import (
	"errors"
	"fmt"
)

// ConvertConfig contains all parameters needed for a layout conversion.
type ConvertConfig struct {
	// SourcePath is the Gradle files-2.1 directory
	SourcePath string

	// DestinationPath is the Maven repository root; created if absent
	DestinationPath string

	// VerifyChecksums compares payloads against their .sha1/.md5 sidecars and
	// the Gradle hash directory they live in
	VerifyChecksums bool

	// KeyringPath is an OpenPGP public keyring; when set, payloads with an .asc
	// sidecar must carry a signature from one of its keys
	KeyringPath string
}

// Validate checks that both paths are set.
func (c *ConvertConfig) Validate() error {
	var errs []error

	if c.SourcePath == "" {
		errs = append(errs, fmt.Errorf("SourcePath is required: %w", ErrInvalidConfig))
	}
	if c.DestinationPath == "" {
		errs = append(errs, fmt.Errorf("DestinationPath is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// SourceEntry is one qualifying directory in the Gradle cache: it directly
// contains at least one payload file. It lives only for the duration of the walk.
type SourceEntry struct {
	Path     string   // absolute directory path
	RelPath  string   // relative to the cache root
	Files    []string // every file name that is not a sidecar
	Sidecars []string // .sha1, .md5, .asc file names
}

// ConvertStatus is the outcome of converting one source directory.
type ConvertStatus int

const (
	StatusConverted ConvertStatus = iota // payloads copied
	StatusSkipped                        // directory does not match the layout
	StatusFailed                         // an I/O or verification error occurred
)

// String returns a human-readable name for the status.
func (s ConvertStatus) String() string {
	switch s {
	case StatusConverted:
		return "converted"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// ConvertOutcome records what happened to a single qualifying source directory.
type ConvertOutcome struct {
	SourceDir  string
	Coordinate Coordinate // zero when Status is StatusSkipped
	Status     ConvertStatus
	Copied     []string // file names written to the destination
	Err        error    // reason for skip or failure
}

// ConvertReport aggregates outcomes of a conversion run.
type ConvertReport struct {
	Outcomes []ConvertOutcome
}

// Count returns how many outcomes have the given status.
func (r ConvertReport) Count(status ConvertStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// CopiedFiles returns the total number of files written.
func (r ConvertReport) CopiedFiles() int {
	n := 0
	for _, o := range r.Outcomes {
		n += len(o.Copied)
	}
	return n
}

// Rejection is a descriptor file the scanner could not turn into a pair.
type Rejection struct {
	Path string
	Err  error
}

// ScanResult is the output of scanning a Maven repository.
type ScanResult struct {
	// Pairs is sorted by (group, artifact) and free of duplicates.
	// Non-nil whenever the repository root exists.
	Pairs []ArtifactPair

	// Rejected lists descriptors whose location did not parse.
	Rejected []Rejection
}

// ReferenceEntry is one row of the imported_artifacts reference table,
// mapping a Maven coordinate to the distribution package that ships it.
type ReferenceEntry struct {
	GroupID        string `yaml:"group_id"`
	ArtifactID     string `yaml:"artifact_id"`
	Version        string `yaml:"version"`
	PackageName    string `yaml:"package_name"`
	PackageVersion string `yaml:"package_version"`
}

// Pair returns the entry's (group, artifact) key.
func (e ReferenceEntry) Pair() ArtifactPair {
	return ArtifactPair{GroupID: e.GroupID, ArtifactID: e.ArtifactID}
}

// Validate requires the join columns and the package name.
func (e ReferenceEntry) Validate() error {
	var errs []error
	if e.GroupID == "" {
		errs = append(errs, ErrEmptyGroup)
	}
	if e.ArtifactID == "" {
		errs = append(errs, ErrEmptyArtifact)
	}
	if e.PackageName == "" {
		errs = append(errs, fmt.Errorf("package_name is required: %w", ErrInvalidConfig))
	}
	return errors.Join(errs...)
}

// PackageRef names a package and the version the reference table recorded for it.
type PackageRef struct {
	Name    string
	Version string
}

// Resolution lists the packages providing one scanned pair. Pairs with no match
// carry a single PackageRef named NotYetPackaged.
type Resolution struct {
	Pair     ArtifactPair
	Packages []PackageRef
}
