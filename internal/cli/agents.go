package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lucaschallamel/BMAD-METHOD/internal/warp"
)

var (
	agentsDir      string
	agentsRegistry string
)

func init() {
	agentsCmd.Flags().StringVar(&agentsDir, "dir", "", "Project root (default from config)")
	agentsCmd.Flags().StringVar(&agentsRegistry, "registry", "", "Mapping registry file (default embedded)")
	rootCmd.AddCommand(agentsCmd)
}

var agentsCmd = &cobra.Command{
	Use:   "agents [id...]",
	Short: "Convert agents and rewrite the agent manifest",
	Long: `Convert the named agents, or every agent found in the project when no id is
given, and write .warp/agents/manifest.yaml for the agents recorded in this run.`,
	RunE: runAgents,
}

func runAgents(cmd *cobra.Command, args []string) error {
	p, err := openProject(agentsDir, agentsRegistry)
	if err != nil {
		return err
	}
	reg, err := p.loader.Load()
	if err != nil {
		return err
	}

	ids := args
	if len(ids) == 0 {
		if ids, err = p.installer.AgentIDs(); err != nil {
			return err
		}
	}

	report, err := p.installer.SetupAgents(cmd.Context(), ids, reg)
	if err != nil {
		return fmt.Errorf("converting agents: %w", err)
	}
	return printAgentTable(cmd.OutOrStdout(), report)
}

func printAgentTable(w io.Writer, r *warp.AgentReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "AGENT\tSTATE\tTYPE\tPATH")
	for _, o := range r.Outcomes {
		entry, ok := r.Manifest.Agents[o.ID]
		typ, path := "-", "-"
		if ok {
			typ, path = entry.Type, entry.Path
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", o.ID, o.State, typ, path)
	}
	return tw.Flush()
}

// sortedKeys returns the keys of m in order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
