package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pablasso/tempo/internal/groom"
	"github.com/spf13/cobra"
)

var groomCmd = &cobra.Command{
	Use:   "groom [file]",
	Short: "Clean up a raw todo list",
	Long: `Groom a messy todo list into clear, actionable tasks.

Reads the list from FILE, or from stdin when no file is given. With
HF_API_KEY set the list is groomed by a language model; without it a
local cleanup pass runs instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGroom,
}

func runGroom(cmd *cobra.Command, args []string) error {
	var raw []byte
	var err error

	if len(args) == 1 {
		raw, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read todo list: %w", err)
		}
	} else {
		raw, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	cfg, err := groom.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	status, err := cfg.Validate()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), status)

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	service := groom.NewService(cfg, logger)

	result, err := service.Groom(cmd.Context(), string(raw))
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), result)
	return nil
}

func printResult(w io.Writer, result *groom.Result) {
	fmt.Fprintln(w, result.FormattedTasks())

	if len(result.Suggestions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Suggestions:")
		for _, s := range result.Suggestions {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}

	if len(result.RemovedItems) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Removed: %s\n", strings.Join(result.RemovedItems, ", "))
	}

	if result.ProcessingNotes != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, result.ProcessingNotes)
	}
}
