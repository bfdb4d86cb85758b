package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-facet/facet/cmd/facet/internal/project"
)

var initName string

const starterLayout = `{
  "format_version": "1.0.0",
  "configuration_data": [
    {
      "type": "window",
      "name": "main_window",
      "properties": {
        "visible_text": "%s",
        "size_and_position": "640x480+40+40"
      },
      "children": [
        {
          "type": "text_line",
          "name": "greeting",
          "properties": {"visible_text": "Hello from %s"}
        },
        {
          "type": "entry",
          "name": "value_entry",
          "properties": {
            "parameter_name": "value",
            "visible_text": "Value",
            "on_new_row": true
          }
        },
        {
          "type": "button",
          "name": "print_button",
          "properties": {
            "visible_text": "Print",
            "action": "print",
            "on_new_row": true
          }
        }
      ]
    }
  ]
}
`

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Scaffold a facet project in a directory",
	Long: `Creates facet.yaml and a starter layout.json in the target
directory (default: the current directory). Existing files are left
untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		name := initName
		if name == "" {
			if resolved, err := project.Resolve(dir); err == nil {
				name = resolved.AppName
			}
		}
		if name == "" {
			abs, err := filepath.Abs(dir)
			if err != nil {
				return err
			}
			name = filepath.Base(abs)
		}

		projectFile := filepath.Join(dir, "facet.yaml")
		projectBody := fmt.Sprintf("app:\n  name: %s\nlayout:\n  path: layout.json\n  format_version: \"1.0.0\"\n", name)
		if err := writeIfAbsent(cmd, projectFile, projectBody); err != nil {
			return err
		}

		layoutFile := filepath.Join(dir, "layout.json")
		layoutBody := fmt.Sprintf(starterLayout, name, name)
		return writeIfAbsent(cmd, layoutFile, layoutBody)
	},
}

func writeIfAbsent(cmd *cobra.Command, path, body string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s already exists, skipping\n", path)
		return nil
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
	return nil
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "application name for the scaffold")
	rootCmd.AddCommand(initCmd)
}
