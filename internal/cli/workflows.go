package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var workflowsDir string

func init() {
	workflowsCmd.Flags().StringVar(&workflowsDir, "dir", "", "Project root (default from config)")
	rootCmd.AddCommand(workflowsCmd)
}

var workflowsCmd = &cobra.Command{
	Use:   "workflows",
	Short: "Convert BMAD workflows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openProject(workflowsDir, "")
		if err != nil {
			return err
		}
		report, err := p.installer.SetupWorkflows(cmd.Context())
		if err != nil {
			return fmt.Errorf("converting workflows: %w", err)
		}

		converted := report.Converted()
		if len(report.Outcomes) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No workflows found.")
			return nil
		}
		for _, name := range converted {
			fmt.Fprintf(cmd.OutOrStdout(), "  [ OK ] %s\n", name)
		}
		for _, o := range report.Outcomes {
			if o.Err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "  [FAIL] %s: %v\n", o.ID, o.Err)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d of %d workflow(s) converted\n", len(converted), len(report.Outcomes))
		return nil
	},
}
