package cli

import (
	"fmt"

	"github.com/alexanderramin/caseflow/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Create cases and answers from a YAML or JSON bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Import == nil {
				return fmt.Errorf("import is not available in this build")
			}
			res, err := app.Import.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d cases, %d questionnaires, %d answers\n",
				len(res.Cases), res.FormCount, res.AnswerCount)
			if res.Recommendations > 0 {
				fmt.Fprintf(out, "Stored %d rights recommendations\n", res.Recommendations)
			}
			fmt.Fprint(out, formatter.FormatCaseList(res.Cases, app.now()))
			return nil
		},
	}
}
