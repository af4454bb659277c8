package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lucaschallamel/BMAD-METHOD/internal/branding"
)

var (
	statusDir  string
	statusJSON bool
)

func init() {
	statusCmd.Flags().StringVar(&statusDir, "dir", "", "Project root (default from config)")
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the installed WARP integration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openProject(statusDir, "")
		if err != nil {
			return err
		}
		st, err := p.installer.Status(cmd.Context())
		if err != nil {
			return fmt.Errorf("reading install status: %w", err)
		}

		out := cmd.OutOrStdout()
		if statusJSON {
			data, err := json.MarshalIndent(st, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		}

		if !st.Installed {
			fmt.Fprintf(out, "WARP integration not installed. Run '%s setup'.\n", branding.CLIName())
			return nil
		}
		installed := st.InstalledVersion
		if installed == "" {
			installed = "-"
		}
		fmt.Fprintf(out, "Installed version: %s\n", installed)
		fmt.Fprintf(out, "Current version:   %s\n", st.CurrentVersion)
		fmt.Fprintf(out, "Agents (%d):       %s\n", len(st.Agents), strings.Join(st.Agents, ", "))
		if st.Outdated {
			fmt.Fprintf(out, "Integration is outdated. Run '%s setup' to refresh it.\n", branding.CLIName())
		}
		return nil
	},
}
