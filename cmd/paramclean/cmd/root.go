package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"paramclean/internal/core"
	"paramclean/internal/logging"
	"paramclean/internal/report"
)

var (
	dryRun  bool
	format  string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "paramclean [file]",
	Short: "Remove redundant description parameters from the Excel knowledge-point service",
	Long: `paramclean deletes the "文本题目描述" DisplayName parameter lines from the generated
ExcelKnowledgeService.cs, drops the comma left dangling on the previous entry, renames the
"目标图表" display name to "目标工作簿" and writes the file back in place.

The file defaults to ` + core.DefaultTarget + `.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := report.ParseFormat(format)
		if err != nil {
			return err
		}

		processor := newProcessor()
		path := targetPath(args)

		var summary *report.Summary
		if dryRun {
			summary, err = processor.DryRun(cmd.Context(), path)
		} else {
			summary, err = processor.Cleanup(cmd.Context(), path)
		}
		if err != nil {
			return err
		}
		return report.Write(cmd.OutOrStdout(), *summary, f)
	},
}

func newProcessor() *core.Processor {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return core.NewProcessor(core.NewAFSStore(), logging.New(level))
}

func targetPath(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return core.DefaultTarget
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing the file")
	rootCmd.Flags().StringVar(&format, "format", string(report.FormatText), "Summary format: text or yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every edit to stderr")
}
