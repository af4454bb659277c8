package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lucaschallamel/BMAD-METHOD/internal/branding"
	"github.com/lucaschallamel/BMAD-METHOD/internal/warp"
)

var (
	setupAgent    string
	setupDir      string
	setupRegistry string
)

func init() {
	setupCmd.Flags().StringVar(&setupAgent, "agent", "", "Convert only this agent id")
	setupCmd.Flags().StringVar(&setupDir, "dir", "", "Project root containing "+branding.SourceDir()+" (default from config)")
	setupCmd.Flags().StringVar(&setupRegistry, "registry", "", "Mapping registry file (default embedded)")
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install the complete WARP integration",
	Long: `Create the .warp/ tree and convert every BMAD agent and workflow, then write
the rules, prompts, example notebook and environment file.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	p, err := openProject(setupDir, setupRegistry)
	if err != nil {
		return err
	}

	report, err := p.installer.Setup(cmd.Context(), p.loader, warp.Options{Agent: setupAgent})
	if err != nil {
		return fmt.Errorf("setting up WARP integration: %w", err)
	}

	printSetupSummary(cmd.OutOrStdout(), p.installer.Root(), report)
	return nil
}

func printSetupSummary(w io.Writer, root string, r *warp.SetupReport) {
	fmt.Fprintf(w, "WARP integration setup complete in %s\n", root)
	fmt.Fprintf(w, "  Registry:   %s\n", r.RegistrySource)
	fmt.Fprintf(w, "  Agents:     %d recorded, %d skipped, %d failed\n",
		r.Agents.Count(warp.StateRecorded), r.Agents.Count(warp.StateSkipped), r.Agents.Count(warp.StateFailed))
	fmt.Fprintf(w, "  Workflows:  %d converted\n", len(r.Workflows.Converted()))
	fmt.Fprintf(w, "  Files:      %d written\n", len(r.Files))
	fmt.Fprintln(w, "Your BMAD agents are now available in WARP's agentic framework.")
}
