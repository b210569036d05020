package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vvka-141/depmap/internal/logging"
	"github.com/vvka-141/depmap/internal/report"
	"github.com/vvka-141/depmap/pkg/depmap"
)

var rootCmd = &cobra.Command{
	Use:   "depmap",
	Short: "Map a Gradle dependency cache to distribution packages",
	Long: `depmap converts a Gradle dependency cache into a Maven repository layout,
collects the (group, artifact) pairs it contains, and joins them against the
imported_artifacts reference table to list the packages a build depends on.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Database connection failed
  14 - Gradle cache or Maven repository not found
  15 - Reference table imported_artifacts missing
  130 - Interrupted (SIGINT or SIGTERM)`,
	SilenceUsage: true,
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context so that deferred cleanup still runs.
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag reads the persistent verbose flag from cmd or its parents.
func getVerboseFlag(cmd *cobra.Command) bool {
	flag := cmd.Flag("verbose")
	if flag == nil {
		return false
	}
	verbose, err := strconv.ParseBool(flag.Value.String())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// newLogger binds a console logger to the command's output streams.
func newLogger(cmd *cobra.Command) depmap.Logger {
	return logging.NewConsoleLoggerWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr(), getVerboseFlag(cmd))
}

// commandContext returns the command's context, which is nil when a run
// function is called directly.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// newReportWriter styles output only when it goes to a terminal stdout.
func newReportWriter(cmd *cobra.Command) *report.Writer {
	if out := cmd.OutOrStdout(); out != os.Stdout {
		return report.New(out, false)
	}
	return report.NewStdout()
}
