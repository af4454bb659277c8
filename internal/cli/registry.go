package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/lucaschallamel/BMAD-METHOD/internal/config"
	"github.com/lucaschallamel/BMAD-METHOD/internal/mapping"
)

func init() {
	registryCmd.AddCommand(registryValidateCmd)
	registryCmd.AddCommand(registryShowCmd)
	rootCmd.AddCommand(registryCmd)
}

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Inspect the agent mapping registry",
}

var registryValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a registry file against the registry schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRegistryValidate(cmd.OutOrStdout(), afero.NewOsFs(), args[0])
	},
}

var registryShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "List the agent mapping rules of a registry",
	Long:  `List the mapping rules of the registry at path, the configured registry, or the embedded one.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Get(config.KeyRegistry)
		if len(args) == 1 {
			path = args[0]
		}
		reg, err := mapping.NewLoader(afero.NewOsFs(), path).Load()
		if err != nil {
			return err
		}
		return printRegistry(cmd.OutOrStdout(), reg)
	},
}

func runRegistryValidate(w io.Writer, fs afero.Fs, path string) error {
	fmt.Fprintf(w, "Registry validation: %s\n", path)

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("reading registry: %w", err)
	}
	result, err := mapping.Validate(data)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("registry validation failed: %w", err)
	}

	if result.Valid {
		fmt.Fprintln(w, "  [ OK ] Valid registry")
		return nil
	}

	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
	return errors.New("registry has validation issues")
}

func printRegistry(w io.Writer, reg *mapping.Registry) error {
	fmt.Fprintf(w, "Source: %s\n", reg.Source())
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "AGENT\tWARP TYPE\tCAPABILITIES\tENVIRONMENT")
	for _, id := range reg.AgentIDs() {
		o := reg.Lookup(id)
		env := "-"
		if len(o.Environment) > 0 {
			env = strings.Join(sortedKeys(o.Environment), ",")
		}
		caps := "-"
		if len(o.Capabilities) > 0 {
			caps = strings.Join(o.Capabilities, ",")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", id, o.TypeOr("-"), caps, env)
	}
	return tw.Flush()
}
