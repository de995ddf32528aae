package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var version = "0.1.0" // set at build time with -ldflags "-X .../cmd.version=..."

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the Helios version and build details",
	Run: func(cmd *cobra.Command, args []string) {
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return
		}
		info, _ := debug.ReadBuildInfo()
		writeVersion(cmd.OutOrStdout(), version, info)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version number")
	rootCmd.AddCommand(versionCmd)
}

// writeVersion prints the version followed by the toolchain and VCS details
// embedded by the Go linker. info may be nil for binaries built without module
// support.
func writeVersion(w io.Writer, v string, info *debug.BuildInfo) {
	fmt.Fprintf(w, "Helios v%s\n", v)
	if info == nil {
		return
	}

	fmt.Fprintf(w, "  go:       %s\n", info.GoVersion)
	if info.Main.Path != "" {
		fmt.Fprintf(w, "  module:   %s %s\n", info.Main.Path, info.Main.Version)
	}

	settings := map[string]string{}
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	if rev := settings["vcs.revision"]; rev != "" {
		if len(rev) > 12 {
			rev = rev[:12]
		}
		if settings["vcs.modified"] == "true" {
			rev += " (modified)"
		}
		fmt.Fprintf(w, "  commit:   %s\n", rev)
	}
	if at := settings["vcs.time"]; at != "" {
		fmt.Fprintf(w, "  built:    %s\n", at)
	}
}
