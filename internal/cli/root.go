package cli

import (
	"github.com/pablasso/tempo/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "tempo",
	Short:   "Personal assistant for planning what to do next",
	Long:    `Tempo keeps a todo list with dependencies between tasks and projects them onto a timeline: what you are doing now, what you could pick up, and what is blocked.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(groomCmd)
	rootCmd.AddCommand(demoCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
