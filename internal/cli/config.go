package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ahbiggie/Bigeen-web/internal/config"
)

const redacted = "<redacted>"

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long:  "Loads the environment the way serve does and prints the result. Secrets are redacted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(redact(*cfg)); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func redact(cfg config.Config) config.Config {
	if cfg.Mailgun.APIKey != "" {
		cfg.Mailgun.APIKey = redacted
	}
	if cfg.Session.HashKey != "" {
		cfg.Session.HashKey = redacted
	}
	return cfg
}
