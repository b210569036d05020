package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/depmap/pkg/depmap"
)

func TestMatched(t *testing.T) {
	var buf bytes.Buffer
	names := []string{"pkg2", "pkg1"}

	require.NoError(t, New(&buf, false).Matched(names))

	assert.Equal(t, "--- Matched Packages ---\npkg1,\npkg2,\n------------------------\n", buf.String())
	assert.Equal(t, []string{"pkg2", "pkg1"}, names, "input must not be reordered")
}

func TestMatched_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, false).Matched(nil))

	assert.Equal(t, "--- Matched Packages ---\nNo matching packages found.\n------------------------\n", buf.String())
}

func TestRulerWidth(t *testing.T) {
	assert.Len(t, Ruler, 24)
	assert.Len(t, MatchedHeader, 24)
}

func TestMatched_StyledKeepsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, true).Matched([]string{"pkg1"}))

	out := buf.String()
	assert.Contains(t, out, "Matched Packages")
	assert.Contains(t, out, "pkg1")
	assert.Contains(t, out, ",\n")
}

func TestResolutions(t *testing.T) {
	var buf bytes.Buffer
	err := New(&buf, false).Resolutions([]depmap.Resolution{
		{
			Pair:     depmap.ArtifactPair{GroupID: "com.google.guava", ArtifactID: "guava"},
			Packages: []depmap.PackageRef{{Name: "libguava-java", Version: "32.1.2-1"}},
		},
		{
			Pair:     depmap.ArtifactPair{GroupID: "com.example", ArtifactID: "internal"},
			Packages: []depmap.PackageRef{{Name: depmap.NotYetPackaged}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "--- Dependency Details ---\n"+
		"com.google.guava:guava -> libguava-java (32.1.2-1)\n"+
		"com.example:internal -> not-yet-packaged\n"+
		"------------------------\n", buf.String())
}

func TestPairs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, false).Pairs([]depmap.ArtifactPair{
		{GroupID: "com.example", ArtifactID: "lib"},
		{GroupID: "junit", ArtifactID: "junit"},
	}))
	assert.Equal(t, "com.example:lib\njunit:junit\n", buf.String())
}

func TestReferences(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, false).References([]depmap.ReferenceEntry{
		{GroupID: "junit", ArtifactID: "junit", PackageName: "junit4"},
		{GroupID: "com.a", ArtifactID: "x", Version: "1.0", PackageName: "pkg1", PackageVersion: "1.0-1"},
	}))
	assert.Equal(t, "junit:junit  junit4\ncom.a:x:1.0  pkg1 1.0-1\n", buf.String())
}

func TestReferences_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, false).References(nil))
	assert.Equal(t, "No reference entries found.\n", buf.String())
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	r := depmap.ConvertReport{Outcomes: []depmap.ConvertOutcome{
		{Status: depmap.StatusConverted, Copied: []string{"a.jar", "a.pom"}},
		{Status: depmap.StatusSkipped},
		{Status: depmap.StatusFailed, Copied: []string{"b.pom"}},
	}}
	require.NoError(t, New(&buf, false).Summary(r))
	assert.Equal(t, "Converted 1 version directories (3 files), skipped 1, failed 1\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestMatched_WriteError(t *testing.T) {
	err := New(failingWriter{}, false).Matched([]string{"pkg1"})
	assert.Error(t, err)
}

func TestColorEnabled_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(nil))
}

func TestColorEnabled_DepmapNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("DEPMAP_NO_COLOR", "1")
	assert.False(t, ColorEnabled(nil))
}
