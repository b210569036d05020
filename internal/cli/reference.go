package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vvka-141/depmap/internal/db"
	"github.com/vvka-141/depmap/internal/store"
	"github.com/vvka-141/depmap/pkg/depmap"
)

var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Manage the imported_artifacts reference table",
}

var referenceLoadCmd = &cobra.Command{
	Use:   "load <file.yaml>",
	Short: "Import a YAML reference mapping into imported_artifacts",
	Long: `Load creates imported_artifacts if it does not exist and upserts every entry
of the given file. Rows are keyed by (group_id, artifact_id, version,
package_name); a repeated key updates package_version.

File format:
  artifacts:
    - group_id: com.google.guava
      artifact_id: guava
      version: 32.1.2-jre
      package_name: libguava-java
      package_version: 32.1.2-1

Example:
  depmap reference load artifacts.yaml --connection postgresql://ci@localhost/deps`,
	Args:              requireArgs("artifacts.yaml", "file.yaml"),
	ValidArgsFunction: completeYAMLFiles,
	RunE:              runReferenceLoad,
}

type referenceFlagValues struct {
	connection string
}

var referenceFlags referenceFlagValues

func init() {
	rootCmd.AddCommand(referenceCmd)
	referenceCmd.AddCommand(referenceLoadCmd)

	referenceLoadCmd.Flags().StringVar(&referenceFlags.connection, "connection", "",
		"PostgreSQL connection string (URI or key=value format)\n"+
			"Alternative: $DEPMAP_DATABASE_URL or $DATABASE_URL")
}

func runReferenceLoad(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	ctx := commandContext(cmd)

	projectCfg, err := loadProjectConfig(".")
	if err != nil {
		return err
	}

	// the entries are checked before any connection is made
	entries, err := store.LoadReferenceFile(args[0])
	if err != nil {
		return err
	}

	connString, source := resolveConnectionString(referenceFlags.connection, projectCfg)
	if connString == "" {
		return fmt.Errorf("reference load needs a database; use --connection or $%s: %w",
			envConnection, depmap.ErrInvalidConfig)
	}
	connConfig, err := db.ParseConnectionString(connString)
	if err != nil {
		return fmt.Errorf("connection from %s: %w", source, err)
	}
	pool, err := db.Connect(ctx, connConfig, logger)
	if err != nil {
		return err
	}
	st := store.NewPostgresStore(pool, logger)
	defer st.Close()

	if err := st.ImportReference(ctx, entries); err != nil {
		return err
	}
	logger.Info("Imported %d entries into %s", len(entries), depmap.ReferenceTable)
	return nil
}
