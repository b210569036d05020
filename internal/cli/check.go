package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vvka-141/depmap/internal/files/scanner"
	"github.com/vvka-141/depmap/internal/layout"
	"github.com/vvka-141/depmap/internal/workspace"
	"github.com/vvka-141/depmap/pkg/depmap"
)

var checkCmd = &cobra.Command{
	Use:   "check <gradle_home>",
	Short: "List the packages a Gradle cache depends on",
	Long: `Check converts the Gradle module cache under <gradle_home> into a temporary
Maven repository, collects its (group, artifact) pairs, stores them in the
dependencies table and prints the packages imported_artifacts maps them to.

The cache is read from <gradle_home>/` + depmap.GradleCacheSubdir + `.
The temporary repository is removed when the command exits.

Database:
  Precedence: --connection > $DEPMAP_DATABASE_URL > $DATABASE_URL > depmap.yaml.
  Without a database, --reference matches against a YAML reference file in memory.

Examples:
  # Match against the database
  depmap check ~/.gradle --connection postgresql://ci@localhost/deps

  # Match against a reference file, no database needed
  depmap check ~/.gradle --reference artifacts.yaml

  # Only trust signed artifacts from known keys
  depmap check ~/.gradle --keyring trusted-keys.asc

  # Also show which package provides each dependency
  depmap check ~/.gradle --details`,
	Args:              requireArgs("~/.gradle", "gradle_home"),
	ValidArgsFunction: completeDirectories,
	RunE:              runCheck,
}

type checkFlagValues struct {
	storeFlags
	verify  bool
	keyring string
	details bool
}

var checkFlags checkFlagValues

// newWorkspace creates the scratch repository for one check run.
var newWorkspace = func() (*workspace.Workspace, error) {
	return workspace.New("depmap")
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkFlags.connection, "connection", "",
		"PostgreSQL connection string (URI or key=value format)\n"+
			"Alternative: $DEPMAP_DATABASE_URL or $DATABASE_URL")
	checkCmd.Flags().StringVar(&checkFlags.reference, "reference", "",
		"YAML reference mapping to import into imported_artifacts before matching")
	checkCmd.Flags().BoolVar(&checkFlags.verify, "verify", false,
		"Verify payloads against their .sha1/.md5 sidecars and Gradle hash directories")
	checkCmd.Flags().StringVar(&checkFlags.keyring, "keyring", "",
		"OpenPGP public keyring; payloads with an .asc sidecar must be signed by one of its keys")
	checkCmd.Flags().BoolVar(&checkFlags.details, "details", false,
		"Also list every dependency with its package (not-yet-packaged when unmatched)")

	_ = checkCmd.RegisterFlagCompletionFunc("reference", completeYAMLFiles)
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	ctx := commandContext(cmd)

	projectCfg, err := loadProjectConfig(".")
	if err != nil {
		return err
	}
	verify := checkFlags.verify || (projectCfg != nil && projectCfg.Verify)

	ws, err := newWorkspace()
	if err != nil {
		return err
	}
	defer func() {
		if err := ws.Close(); err != nil {
			logger.Warn("%v", err)
		}
	}()
	logger.Verbose("Workspace: %s", ws.Path())

	source := filepath.Join(args[0], filepath.FromSlash(depmap.GradleCacheSubdir))
	conversion, err := layout.NewConverter(logger).Convert(ctx, depmap.ConvertConfig{
		SourcePath:      source,
		DestinationPath: ws.Path(),
		VerifyChecksums: verify,
		KeyringPath:     checkFlags.keyring,
	})
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("Interrupted, removing %s", ws.Path())
		}
		return err
	}
	out := newReportWriter(cmd)
	if getVerboseFlag(cmd) {
		if err := out.Summary(conversion); err != nil {
			return err
		}
	}

	scan, err := scanner.NewScanner(logger).ScanRepository(ws.Path())
	if err != nil {
		return err
	}
	logger.Verbose("Found %d distinct artifacts", len(scan.Pairs))
	if err := ctx.Err(); err != nil {
		return err
	}

	st, err := openStore(ctx, checkFlags.storeFlags, projectCfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Replace(ctx, scan.Pairs); err != nil {
		return fmt.Errorf("failed to store dependencies: %w", err)
	}

	names, err := st.MatchedPackages(ctx)
	if err != nil {
		return err
	}
	if err := out.Matched(names); err != nil {
		return err
	}

	if checkFlags.details {
		resolutions, err := st.Resolve(ctx)
		if err != nil {
			return err
		}
		return out.Resolutions(resolutions)
	}
	return nil
}
