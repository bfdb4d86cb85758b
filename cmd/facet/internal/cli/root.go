// Package cli implements the facet command line: validating,
// formatting, previewing and scaffolding declarative interface
// configurations.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/go-facet/facet/cmd/facet/internal/userconfig"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   "facet",
	Short: "Facet builds desktop interfaces from declarative JSON",
	Long: `Facet turns a JSON description of windows, menus, entries and
buttons into a live interface. This tool works on the description
files themselves: validate them, normalize them, preview the tree
they would build, and scaffold new projects.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		userconfig.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
