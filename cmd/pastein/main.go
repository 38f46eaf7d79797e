// pastein: clipboard paste detection and classification.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.gausoft.dev/pastein/internal/logging"
	"go.gausoft.dev/pastein/internal/platform"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "pastein",
		Short: "Detect and classify clipboard paste content",
		Long: `pastein watches paste activity and normalises whatever the clipboard
holds — plain text, one or more images, or nothing usable — into a single
typed payload, delivered once per paste action.

Use "pastein watch" to follow live activity, "pastein read" for a one-shot
classification of the current clipboard, and "pastein clean" to remove
temp files left behind by file-backed image delivery.

Config file search order (first found wins):
  /etc/pastein/pastein.toml
  $HOME/.config/pastein/pastein.toml
  path supplied via --config

All flags can be set via PASTEIN_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newWatchCmd(),
		newReadCmd(),
		newCleanCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and platform information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("pastein %s (%s)\n", Version, platform.Version())
		},
	}
}

// resolveLogging sets up the global slog logger after flags are parsed.
func resolveLogging(interactive bool, formatStr, levelStr string) {
	format := logging.ParseFormat(formatStr)
	level := logging.ParseLevel(levelStr)
	if levelStr == "" {
		if interactive {
			level = logging.ParseLevel("debug")
		} else {
			level = logging.ParseLevel("info")
		}
	}
	logging.Setup(format, level, nil)
}
