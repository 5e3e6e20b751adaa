package cli

import (
	"github.com/spf13/cobra"

	"specwiz/internal/templates"
	"specwiz/internal/tui"
)

func newNewCommand(app *App) *cobra.Command {
	var templateID string
	var answersPath string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new project",
		Long: `Create a new project through the interactive wizard.

With --answers, the wizard runs non-interactively from a YAML answers file
instead. With --template, the wizard starts with the given template already
loading.

Example:
  specwiz new
  specwiz new --template saas-starter
  specwiz new --answers project.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creator == nil {
				cmd.PrintErrln("Error: no API base URL configured; set api.base_url or SPECWIZ_API_URL")
				return NewExitError(1)
			}
			if answersPath != "" {
				return runAnswers(cmd.Context(), app, answersPath, templateID, cmd.OutOrStdout())
			}

			catalog, err := app.Catalog.Catalog()
			if err != nil {
				cmd.PrintErrf("Warning: could not list templates: %v\n", err)
				catalog = &templates.Catalog{}
			}

			if err := tui.Run(tui.Deps{
				Store:           app.Store,
				Creator:         app.Creator,
				Identity:        app.Identity,
				Catalog:         catalog.Entries,
				ExitPath:        app.Config.Wizard.ExitPath,
				InitialTemplate: templateID,
			}); err != nil {
				cmd.PrintErrf("Error: %v\n", err)
				return NewExitError(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&templateID, "template", "t", "", "template id to start from")
	cmd.Flags().StringVarP(&answersPath, "answers", "a", "", "YAML answers file for a non-interactive run")
	return cmd
}
