package checksum

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/depmap/internal/files/filesystem"
	"github.com/vvka-141/depmap/pkg/depmap"
)

const (
	helloSHA1 = "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"
	helloMD5  = "5d41402abc4b2a76b9719d911017c592"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		sha1    string
		md5     string
	}{
		{"empty", "", "da39a3ee5e6b4b0d3255bfef95601890afd80709", "d41d8cd98f00b204e9800998ecf8427e"},
		{"hello", "hello", helloSHA1, helloMD5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Calculate(strings.NewReader(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.sha1, d.SHA1)
			assert.Equal(t, tt.md5, d.MD5)
		})
	}
}

func TestParseSidecar(t *testing.T) {
	assert.Equal(t, helloSHA1, ParseSidecar([]byte(helloSHA1+"\n")))
	assert.Equal(t, helloSHA1, ParseSidecar([]byte(strings.ToUpper(helloSHA1)+"  lib.jar\n")))
	assert.Equal(t, "", ParseSidecar([]byte("  \n")))
}

func TestIsGradleHashDir(t *testing.T) {
	assert.True(t, IsGradleHashDir(helloSHA1))
	assert.True(t, IsGradleHashDir(helloSHA1[2:]))
	assert.False(t, IsGradleHashDir("1.0"))
	assert.False(t, IsGradleHashDir(strings.Repeat("z", 40)))
}

func newVerifier() (*Verifier, *filesystem.MemoryFileSystem) {
	fs := filesystem.NewMemoryFileSystem("/cache")
	return NewVerifier(fs), fs
}

func TestVerifier_NoSidecarsPasses(t *testing.T) {
	v, fs := newVerifier()
	fs.AddFile("g/a/1.0/lib.jar", "hello")

	assert.NoError(t, v.Verify("/cache/g/a/1.0", "lib.jar", nil))
}

func TestVerifier_MatchingSidecars(t *testing.T) {
	v, fs := newVerifier()
	fs.AddFile("g/a/1.0/lib.jar", "hello")
	fs.AddFile("g/a/1.0/lib.jar.sha1", helloSHA1)
	fs.AddFile("g/a/1.0/lib.jar.md5", helloMD5+"  lib.jar")

	err := v.Verify("/cache/g/a/1.0", "lib.jar", []string{"lib.jar.sha1", "lib.jar.md5"})
	assert.NoError(t, err)
}

func TestVerifier_SHA1Mismatch(t *testing.T) {
	v, fs := newVerifier()
	fs.AddFile("g/a/1.0/lib.jar", "tampered")
	fs.AddFile("g/a/1.0/lib.jar.sha1", helloSHA1)

	err := v.Verify("/cache/g/a/1.0", "lib.jar", []string{"lib.jar.sha1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, depmap.ErrChecksumMismatch))
}

func TestVerifier_MD5Mismatch(t *testing.T) {
	v, fs := newVerifier()
	fs.AddFile("g/a/1.0/lib.jar", "hello")
	fs.AddFile("g/a/1.0/lib.jar.md5", strings.Repeat("0", 32))

	err := v.Verify("/cache/g/a/1.0", "lib.jar", []string{"lib.jar.md5"})
	assert.ErrorIs(t, err, depmap.ErrChecksumMismatch)
}

func TestVerifier_GradleHashDirectory(t *testing.T) {
	v, fs := newVerifier()
	fs.AddFile("g/a/1.0/"+helloSHA1+"/lib.jar", "hello")
	fs.AddFile("g/a/1.0/"+helloSHA1+"/other.jar", "not hello")

	assert.NoError(t, v.Verify("/cache/g/a/1.0/"+helloSHA1, "lib.jar", nil))
	assert.ErrorIs(t, v.Verify("/cache/g/a/1.0/"+helloSHA1, "other.jar", nil), depmap.ErrChecksumMismatch)
}

func TestVerifier_UnreadableSidecar(t *testing.T) {
	v, fs := newVerifier()
	fs.AddFile("g/a/1.0/lib.jar", "hello")
	fs.AddFile("g/a/1.0/lib.jar.sha1", helloSHA1)
	fs.FailOn("g/a/1.0/lib.jar.sha1", errors.New("permission denied"))

	err := v.Verify("/cache/g/a/1.0", "lib.jar", []string{"lib.jar.sha1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestNewVerifier_NilProvider(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for nil provider")
		}
	}()
	NewVerifier(nil)
}
