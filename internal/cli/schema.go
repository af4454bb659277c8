package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucaschallamel/BMAD-METHOD/internal/schemagen"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:       "schema <agent|workflow|manifest>",
	Short:     "Print the JSON Schema of a generated document",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: schemagen.Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := schemagen.Generate(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	},
}
