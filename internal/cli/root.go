// Package cli implements the bigeen command.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:   "bigeen",
		Short: "Bigeen marketing website",
		Long: `Serves the Bigeen marketing site: the home, about, contact and roadmap pages,
and the contact form that forwards submissions to a form relay or Mailgun.`,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			loadEnvFiles(envFiles)
		},
	}

	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env", ".env.local"},
		"dotenv files to load; later files override earlier ones")

	root.AddCommand(
		newServeCommand(),
		newRoutesCommand(),
		newConfigCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCommand().Execute()
}

// loadEnvFiles loads the first file without overriding the process
// environment and overlays the rest.
func loadEnvFiles(files []string) {
	for i, f := range files {
		if i == 0 {
			_ = godotenv.Load(f)
			continue
		}
		_ = godotenv.Overload(f)
	}
}
