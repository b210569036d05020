package cli

import (
	"github.com/spf13/cobra"
	"github.com/vvka-141/depmap/internal/layout"
	"github.com/vvka-141/depmap/pkg/depmap"
)

var convertCmd = &cobra.Command{
	Use:   "convert <source> <destination>",
	Short: "Convert a Gradle files-2.1 cache into a Maven repository",
	Long: `Convert copies every version directory of a Gradle module cache into a Maven
repository layout at <destination>. Checksum and signature sidecars are not
copied. Existing files are overwritten, so re-running is safe.

<source> is the files-2.1 directory itself, e.g.
~/.gradle/` + depmap.GradleCacheSubdir + `.

Examples:
  depmap convert ~/.gradle/caches/modules-2/files-2.1 ./m2
  depmap convert ~/.gradle/caches/modules-2/files-2.1 ./m2 --verify
  depmap convert ~/.gradle/caches/modules-2/files-2.1 ./m2 --keyring trusted-keys.asc`,
	Args:              requireArgs("~/.gradle/caches/modules-2/files-2.1 ./m2", "source", "destination"),
	ValidArgsFunction: completeDirectories,
	RunE:              runConvert,
}

type convertFlagValues struct {
	verify  bool
	keyring string
}

var convertFlags convertFlagValues

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVar(&convertFlags.verify, "verify", false,
		"Verify payloads against their .sha1/.md5 sidecars and Gradle hash directories")
	convertCmd.Flags().StringVar(&convertFlags.keyring, "keyring", "",
		"OpenPGP public keyring; payloads with an .asc sidecar must be signed by one of its keys")
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	conversion, err := layout.NewConverter(logger).Convert(commandContext(cmd), depmap.ConvertConfig{
		SourcePath:      args[0],
		DestinationPath: args[1],
		VerifyChecksums: convertFlags.verify,
		KeyringPath:     convertFlags.keyring,
	})
	if err != nil {
		return err
	}

	out := newReportWriter(cmd)
	return out.Summary(conversion)
}
