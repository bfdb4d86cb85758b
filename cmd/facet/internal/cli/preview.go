package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-facet/facet/pkg/config"
	"github.com/go-facet/facet/pkg/element"
	"github.com/go-facet/facet/pkg/gui"
)

var previewAll bool

var previewCmd = &cobra.Command{
	Use:   "preview <file.json>",
	Short: "Build a configuration headlessly and print the resulting tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := config.Load(args[0])
		if err != nil {
			return err
		}

		g := gui.New(gui.Options{Keys: &doc.Keys, Diagnostics: io.Discard})
		g.SetConfigData(doc.Records)
		if err := g.Build(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, rec := range g.Elements() {
			printOutline(out, rec, 0)
		}

		values := g.ParameterValues(previewAll)
		if len(values) == 0 {
			return nil
		}
		names := make([]string, 0, len(values))
		for name := range values {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintln(out)
		for _, name := range names {
			fmt.Fprintf(out, "%s = %v\n", name, values[name])
		}
		return nil
	},
}

// placed is the slice of a widget's surface the outline reports.
type placed interface {
	Row() int
	Col() int
	Visible() bool
}

func printOutline(out io.Writer, rec *element.Record, depth int) {
	line := fmt.Sprintf("%s%s %q", strings.Repeat("  ", depth), rec.Type, rec.Name)
	if w, ok := rec.Widget.(placed); ok {
		line += fmt.Sprintf(" [%d,%d]", w.Row(), w.Col())
		if !w.Visible() {
			line += " hidden"
		}
	}
	fmt.Fprintln(out, line)
	for _, child := range rec.Children {
		printOutline(out, child, depth+1)
	}
}

func init() {
	previewCmd.Flags().BoolVar(&previewAll, "all", false, "print inactive parameters too")
	rootCmd.AddCommand(previewCmd)
}
