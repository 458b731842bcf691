package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fx.New(appOptions()...).Run()
		},
	}
}
