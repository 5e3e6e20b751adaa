package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTemplatesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available project templates",
		Long: `List the templates available to seed a new project from, read from the
configured API or the local templates directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := app.Catalog.Catalog()
			if err != nil {
				cmd.PrintErrf("Error: %v\n", err)
				return NewExitError(1)
			}

			out := cmd.OutOrStdout()
			if len(catalog.Entries) == 0 {
				fmt.Fprintln(out, "No templates available. Start with: specwiz new")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tVERSION\tDESCRIPTION")
			for _, e := range catalog.Entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Version, e.Description)
			}
			return w.Flush()
		},
	}
}
