package cli

import (
	"fmt"

	"github.com/pablasso/tempo/internal/demo"
	"github.com/pablasso/tempo/internal/display"
	"github.com/pablasso/tempo/internal/workflow"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print the timeline for a sample week",
	Long: `Seed a workflow with a sample set of tasks, including a small
dependency chain, and print the resulting timeline. Useful for seeing
what the timeline projection looks like without entering any tasks.`,
	RunE: runDemoCmd,
}

func runDemoCmd(cmd *cobra.Command, args []string) error {
	w := workflow.New()
	demo.Seed(w)

	fmt.Fprint(cmd.OutOrStdout(), display.Render(w.Timeline()))
	return nil
}
