package checksum

import (
	"crypto/md5"  //nolint:gosec // G501: Maven sidecars are MD5, not used for security
	"crypto/sha1" //nolint:gosec // G505: Maven and Gradle identify files by SHA-1
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vvka-141/depmap/internal/files/filesystem"
	"github.com/vvka-141/depmap/pkg/depmap"
)

// Digests holds the hex encoded checksums of one file.
type Digests struct {
	SHA1 string
	MD5  string
}

// Calculate reads r to the end and returns its SHA-1 and MD5.
func Calculate(r io.Reader) (Digests, error) {
	sha := sha1.New() //nolint:gosec
	sum := md5.New()  //nolint:gosec
	if _, err := io.Copy(io.MultiWriter(sha, sum), r); err != nil {
		return Digests{}, fmt.Errorf("failed to hash content: %w", err)
	}
	return Digests{
		SHA1: hex.EncodeToString(sha.Sum(nil)),
		MD5:  hex.EncodeToString(sum.Sum(nil)),
	}, nil
}

// ParseSidecar extracts the digest from sidecar file content.
func ParseSidecar(content []byte) string {
	fields := strings.Fields(string(content))
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// IsGradleHashDir reports whether name looks like a files-2.1 hash directory.
func IsGradleHashDir(name string) bool {
	if len(name) < 30 || len(name) > 40 {
		return false
	}
	for _, r := range name {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// Verifier checks payloads read through a FileSystemProvider.
type Verifier struct {
	fsProvider filesystem.FileSystemProvider
}

// NewVerifier creates a Verifier.
// Panics if fsProvider is nil.
func NewVerifier(fsProvider filesystem.FileSystemProvider) *Verifier {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Verifier{fsProvider: fsProvider}
}

// Verify checks dir/name against whichever of its .sha1 and .md5 sidecars appear
// in sidecars, and against dir's own name when it is a Gradle hash directory.
// A file with nothing to check against passes.
func (v *Verifier) Verify(dir, name string, sidecars []string) error {
	expected := map[string]string{}
	for _, suffix := range []string{depmap.SuffixSHA1, depmap.SuffixMD5} {
		if !contains(sidecars, name+suffix) {
			continue
		}
		content, err := v.fsProvider.ReadFile(filepath.Join(dir, name+suffix))
		if err != nil {
			return fmt.Errorf("failed to read %s%s: %w", name, suffix, err)
		}
		if digest := ParseSidecar(content); digest != "" {
			expected[suffix] = digest
		}
	}

	hashDir := filepath.Base(dir)
	checkDir := IsGradleHashDir(hashDir)
	if len(expected) == 0 && !checkDir {
		return nil
	}

	f, err := v.fsProvider.OpenFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	//nolint:errcheck // read-only
	defer f.Close()

	actual, err := Calculate(f)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if want, ok := expected[depmap.SuffixSHA1]; ok && want != actual.SHA1 {
		return fmt.Errorf("%s: sha1 expected %s, got %s: %w", name, want, actual.SHA1, depmap.ErrChecksumMismatch)
	}
	if want, ok := expected[depmap.SuffixMD5]; ok && want != actual.MD5 {
		return fmt.Errorf("%s: md5 expected %s, got %s: %w", name, want, actual.MD5, depmap.ErrChecksumMismatch)
	}
	if checkDir && strings.TrimLeft(hashDir, "0") != strings.TrimLeft(actual.SHA1, "0") {
		return fmt.Errorf("%s: stored under %s but sha1 is %s: %w", name, hashDir, actual.SHA1, depmap.ErrChecksumMismatch)
	}
	return nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
