package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.gausoft.dev/pastein/internal/wrapper"
)

func newCleanCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove temp files left by file-backed image delivery",
		Long: `Deletes every file created by prior file-backed conversions in the
target directory. Only files carrying the pipeline's reserved name
prefix are touched; anything else in a shared temp dir is left alone.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			setupLogging(v)
			wrapper.ClearTemporaryArtifacts(v.GetString("temp-dir"))
			return nil
		},
	}

	cmd.Flags().String("temp-dir", "", "directory to clean (default: OS temp dir)")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}
