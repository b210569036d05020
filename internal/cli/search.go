package cli

import (
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search imported_artifacts by group and artifact prefix",
	Long: `Search prints the reference rows whose group_id and artifact_id start with
the given prefixes. Both prefixes default to empty, which lists everything.

Examples:
  depmap search --group org.apache.commons
  depmap search --group com.google --artifact guava --reference artifacts.yaml`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

type searchFlagValues struct {
	storeFlags
	group    string
	artifact string
}

var searchFlags searchFlagValues

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&searchFlags.group, "group", "g", "", "Group id prefix")
	searchCmd.Flags().StringVarP(&searchFlags.artifact, "artifact", "a", "", "Artifact id prefix")
	searchCmd.Flags().StringVar(&searchFlags.connection, "connection", "",
		"PostgreSQL connection string (URI or key=value format)\n"+
			"Alternative: $DEPMAP_DATABASE_URL or $DATABASE_URL")
	searchCmd.Flags().StringVar(&searchFlags.reference, "reference", "",
		"YAML reference mapping to search instead of, or import before searching, the database")

	_ = searchCmd.RegisterFlagCompletionFunc("reference", completeYAMLFiles)
}

func runSearch(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	ctx := commandContext(cmd)

	projectCfg, err := loadProjectConfig(".")
	if err != nil {
		return err
	}

	st, err := openStore(ctx, searchFlags.storeFlags, projectCfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := st.Search(ctx, searchFlags.group, searchFlags.artifact)
	if err != nil {
		return err
	}

	out := newReportWriter(cmd)
	return out.References(entries)
}
