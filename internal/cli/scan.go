package cli

import (
	"github.com/spf13/cobra"
	"github.com/vvka-141/depmap/internal/files/scanner"
)

var scanCmd = &cobra.Command{
	Use:   "scan <maven_repository>",
	Short: "List the group:artifact pairs in a Maven repository",
	Long: `Scan walks a Maven repository, finds every .pom descriptor and prints the
distinct group:artifact pairs, sorted.

Example:
  depmap scan ~/.m2/repository`,
	Args:              requireArgs("~/.m2/repository", "maven_repository"),
	ValidArgsFunction: completeDirectories,
	RunE:              runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	result, err := scanner.NewScanner(logger).ScanRepository(args[0])
	if err != nil {
		return err
	}
	if len(result.Rejected) > 0 {
		logger.Verbose("%d descriptors could not be attributed to a group", len(result.Rejected))
	}

	out := newReportWriter(cmd)
	return out.Pairs(result.Pairs)
}
