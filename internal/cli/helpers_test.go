package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/depmap/internal/workspace"
	"github.com/vvka-141/depmap/pkg/depmap"
)

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeCommandContext(t, context.Background(), args...)
}

func executeCommandContext(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(t)
	// cobra hands the first context it sees to a subcommand and keeps it
	resetContexts(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	_, err := rootCmd.ExecuteContextC(ctx)
	return out.String(), errOut.String(), err
}

func resetContexts(cmd *cobra.Command) {
	cmd.SetContext(nil) //nolint:staticcheck // cleared so ExecuteContextC sets it again
	for _, sub := range cmd.Commands() {
		resetContexts(sub)
	}
}

func resetFlags(t *testing.T) {
	t.Helper()

	checkFlags = checkFlagValues{}
	convertFlags = convertFlagValues{}
	searchFlags = searchFlagValues{}
	referenceFlags = referenceFlagValues{}
	require.NoError(t, rootCmd.PersistentFlags().Set("verbose", "false"))

	t.Setenv(envConnection, "")
	t.Setenv(envDatabase, "")
}

// isolateWorkspace makes check runs create their workspace under a directory
// the test can inspect afterwards.
func isolateWorkspace(t *testing.T) string {
	t.Helper()

	parent := t.TempDir()
	original := newWorkspace
	newWorkspace = func() (*workspace.Workspace, error) {
		return workspace.NewIn(parent, "depmap")
	}
	t.Cleanup(func() { newWorkspace = original })
	return parent
}

func requireEmptyDir(t *testing.T, dir string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries, "workspace was not removed")
}

// writeGradleHome lays out a small files-2.1 cache:
//
//	com.example/lib/1.0/<hash>/lib-1.0.jar, lib-1.0.pom, lib-1.0.jar.sha1
//	com.example/util/2.0/<hash>/util-2.0.pom
func writeGradleHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	cache := filepath.Join(home, filepath.FromSlash(depmap.GradleCacheSubdir))
	files := map[string]string{
		"com.example/lib/1.0/0123456789abcdef0123456789abcdef01234567/lib-1.0.jar":      "jar",
		"com.example/lib/1.0/0123456789abcdef0123456789abcdef01234567/lib-1.0.jar.sha1": "0000",
		"com.example/lib/1.0/89abcdef0123456789abcdef0123456789abcdef/lib-1.0.pom":      "<project/>",
		"com.example/util/2.0/fedcba9876543210fedcba9876543210fedcba98/util-2.0.pom":    "<project/>",
	}
	for rel, content := range files {
		path := filepath.Join(cache, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return home
}

func writeReference(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "artifacts.yaml")
	content := `artifacts:
  - group_id: com.example
    artifact_id: lib
    version: "1.0"
    package_name: libexample-java
    package_version: 1.0-1
  - group_id: org.other
    artifact_id: thing
    package_name: libthing-java
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
