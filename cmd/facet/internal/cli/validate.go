package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-facet/facet/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.json>",
	Short: "Check a configuration file against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		result, err := config.Validate(data)
		if err != nil {
			return err
		}
		if !result.Valid {
			for _, issue := range result.Issues {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s: %s\n", path, issue.Path, issue.Message)
			}
			return fmt.Errorf("%s: %d schema violation(s)", path, len(result.Issues))
		}

		// Schema-valid documents can still fail structural decoding,
		// e.g. a record without a name under renamed keys.
		if _, err := config.Decode(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
