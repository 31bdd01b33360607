package cmd

import (
	"github.com/spf13/cobra"

	"paramclean/internal/tui"
)

// previewCmd shows the pending edits and applies them on confirmation.
var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Review the pending edits interactively before writing",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		processor := newProcessor()
		plan, err := processor.Plan(cmd.Context(), targetPath(args))
		if err != nil {
			return err
		}
		return tui.Run(plan, processor)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
