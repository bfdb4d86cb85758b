package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-facet/facet/pkg/config"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file.json>",
	Short: "Normalize a configuration file",
	Long: `Rewrites a configuration file in canonical form: stable key order,
two-space indentation and the full builder_keys vocabulary spelled
out. Without -w the result goes to standard output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		doc, err := config.Load(path)
		if err != nil {
			return err
		}
		if fmtWrite {
			return config.Save(path, doc)
		}
		data, err := config.Encode(doc)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result back to the file")
	rootCmd.AddCommand(fmtCmd)
}
