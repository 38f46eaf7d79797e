package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.gausoft.dev/pastein/internal/channel"
	"go.gausoft.dev/pastein/internal/clip"
	"go.gausoft.dev/pastein/internal/payload"
)

func newReadCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Classify the current clipboard once and print the result",
		Long: `Reads the clipboard immediately, classifies it, and prints the payload.

Text payloads go to stdout verbatim (like pbpaste). Image payloads print
a summary line per item; use --raw to write the first image's bytes to
stdout instead:

  pastein read --raw > screenshot.png`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runRead(v) },
	}

	cmd.Flags().Bool("raw", false, "write raw image bytes to stdout")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runRead(v *viper.Viper) error {
	setupLogging(v)

	backend := clip.New()
	defer backend.Close()

	ch := channel.New(channel.Config{
		Transport: clip.AsTransport(backend),
		Fallback:  clip.TextFallback{},
	})

	switch p := ch.GetCurrentPayload().(type) {
	case payload.Text:
		_, err := os.Stdout.WriteString(p.Text)
		return err
	case payload.Image:
		if v.GetBool("raw") {
			_, err := os.Stdout.Write(p.Items[0].Data)
			return err
		}
		for _, it := range p.Items {
			fmt.Printf("image %s (%d bytes)\n", it.MIME, len(it.Data))
		}
		return nil
	default:
		fmt.Println("unsupported")
		return nil
	}
}
