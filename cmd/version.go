package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/ecoamazonia/guardioes/internal/catalog"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build details",
	Run: func(cmd *cobra.Command, args []string) {
		if short, _ := cmd.Flags().GetBool("short"); short {
			fmt.Println(version)
			return
		}
		fmt.Printf("ecoamazonia %s\n", version)
		fmt.Printf("  go        %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		if rev := vcsRevision(); rev != "" {
			fmt.Printf("  commit    %s\n", rev)
		}
		fmt.Printf("  guardians %d built in\n", catalog.Default().Len())
	},
}

// vcsRevision returns the short commit the binary was built from, if the
// toolchain stamped one.
func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value[:min(12, len(s.Value))]
		}
	}
	return ""
}

func init() {
	versionCmd.Flags().Bool("short", false, "Print only the version")
}
