package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.gausoft.dev/pastein/internal/logging"
	"go.gausoft.dev/pastein/internal/payload"
)

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and PASTEIN_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → PASTEIN_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("pastein")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/pastein/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(fmt.Sprintf("%s/.config/pastein", home))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("PASTEIN")
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// addLoggingFlags adds the standard logging flags to a command.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().String("log-format", "auto", "log format: auto|text|json")
	cmd.Flags().String("log-level", "", "log level: debug|info|warn|error (default: info, debug on a TTY)")
}

// addConfigFlag adds the --config flag to a command.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to config file (overrides auto-discovery)")
}

// setupLogging reads logging flags from viper and configures slog.
func setupLogging(v *viper.Viper) {
	interactive := logging.IsTTY(os.Stderr)
	resolveLogging(interactive, v.GetString("log-format"), v.GetString("log-level"))
}

// filterFrom turns the --accept values into a payload filter.
// No values means accept everything.
func filterFrom(accept []string) (*payload.Filter, error) {
	if len(accept) == 0 {
		return payload.AllTypes(), nil
	}
	kinds := make([]payload.Kind, 0, len(accept))
	for _, a := range accept {
		switch a {
		case "text":
			kinds = append(kinds, payload.KindText)
		case "image":
			kinds = append(kinds, payload.KindImage)
		default:
			return nil, fmt.Errorf("unknown payload kind %q (want text or image)", a)
		}
	}
	return payload.Types(kinds...), nil
}
