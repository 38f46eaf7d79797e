package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.gausoft.dev/pastein/internal/channel"
	"go.gausoft.dev/pastein/internal/clip"
	"go.gausoft.dev/pastein/internal/payload"
	"go.gausoft.dev/pastein/internal/transport"
	"go.gausoft.dev/pastein/internal/wrapper"
)

func newWatchCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow clipboard activity and log classified payloads",
		Long: `Runs the paste pipeline against the live system clipboard and logs
every classified payload until interrupted.

Without a host UI there is no real paste gesture to hook, so each
clipboard change is treated as a paste action — a diagnostic
approximation of what an embedding input field would observe.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runWatch(v) },
	}

	f := cmd.Flags()
	f.StringSlice("accept", nil, "payload kinds to deliver: text,image (default: all)")
	f.Bool("file-backed", false, "deliver images as temp file paths instead of raw bytes")
	f.String("temp-dir", "", "directory for file-backed images (default: OS temp dir)")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runWatch(v *viper.Viper) error {
	setupLogging(v)

	filter, err := filterFrom(v.GetStringSlice("accept"))
	if err != nil {
		return err
	}

	backend := clip.New()
	defer backend.Close()
	slog.Info("watching clipboard", "backend", backend.Name())

	ch := channel.New(channel.Config{
		Transport: clip.AsTransport(backend),
		Fallback:  clip.TextFallback{},
		Attach:    watchAttach(backend),
	})

	w := wrapper.New(logPayload, wrapper.Options{
		Filter:     filter,
		FileBacked: v.GetBool("file-backed"),
		TempDir:    v.GetString("temp-dir"),
	})
	w.Mount(ch)
	defer func() {
		w.Dispose()
		ch.Dispose()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	slog.Info("shutting down")
	return nil
}

// watchAttach turns the backend's change notifications into paste
// pushes: each signal triggers a fresh read, never a pre-fetched one.
func watchAttach(backend clip.Backend) channel.AttachFunc {
	return func(notify transport.PasteFunc) func() {
		done := make(chan struct{})
		go func() {
			for {
				select {
				case <-done:
					return
				case <-backend.Watch():
					notify(backend.Read())
				}
			}
		}()
		return func() { close(done) }
	}
}

// logPayload is the consumer callback: one log line per delivery.
func logPayload(p payload.Payload) {
	switch pl := p.(type) {
	case payload.Text:
		preview := pl.Text
		if len(preview) > 120 {
			preview = preview[:120] + "…"
		}
		slog.Info("paste", "kind", "text", "chars", len(pl.Text), "preview", preview)
	case payload.Image:
		for _, it := range pl.Items {
			slog.Info("paste", "kind", "image", "mime", it.MIME, "size_bytes", len(it.Data))
		}
	case payload.FileImage:
		for i, uri := range pl.URIs {
			slog.Info("paste", "kind", "image", "mime", pl.MIMETypes[i], "file", uri)
		}
	case payload.Unsupported:
		slog.Info("paste", "kind", "unsupported")
	default:
		fmt.Fprintln(os.Stderr, "unhandled payload variant")
	}
}
