package cli

import (
	"fmt"

	"github.com/alexanderramin/caseflow/internal/cli/formatter"
	"github.com/alexanderramin/caseflow/internal/contract"
	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/questionnaire"
	"github.com/spf13/cobra"
)

func newQuestionsCmd(app *App) *cobra.Command {
	var caseArg string

	cmd := &cobra.Command{
		Use:   "questions <domain>",
		Short: "List a questionnaire, or the questions currently visible for a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := domain.ParseFormDomain(args[0])
			if err != nil {
				return err
			}

			if caseArg == "" {
				r, err := questionnaire.ForDomain(d)
				if err != nil {
					return err
				}
				qs := r.Questions()
				views := make([]contract.QuestionView, len(qs))
				for i, q := range qs {
					views[i] = contract.NewQuestionView(q, nil)
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuestions(d, views))
				return nil
			}

			id, err := resolveCaseID(cmd.Context(), app, caseArg)
			if err != nil {
				return err
			}
			view, err := app.Intake.Form(cmd.Context(), id, d)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatForm(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&caseArg, "case", "", "Show visible questions and answers for this case")

	return cmd
}

func newAnswerCmd(app *App) *cobra.Command {
	var asList, clearAnswer bool

	cmd := &cobra.Command{
		Use:   "answer <case> <domain> <field> [value]",
		Short: "Record or clear one answer",
		Long: "Record one answer. Numbers are stored as typed; use --list for a\n" +
			"comma-separated multi-select value and --clear to remove an answer.",
		Args: func(cmd *cobra.Command, args []string) error {
			if clearAnswer {
				return cobra.ExactArgs(3)(cmd, args)
			}
			return cobra.ExactArgs(4)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, d, err := resolveCaseAndDomain(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}

			value := domain.None()
			if !clearAnswer {
				value = domain.ParseInput(args[3], asList)
			}

			resp, err := app.Intake.Answer(ctx, contract.AnswerRequest{
				CaseID: id,
				Domain: d,
				Field:  args[2],
				Value:  value,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAnswer(args[2], resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asList, "list", false, "Treat the value as a comma-separated list")
	cmd.Flags().BoolVar(&clearAnswer, "clear", false, "Remove the answer")
	cmd.MarkFlagsMutuallyExclusive("list", "clear")

	return cmd
}

func newSubmitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "submit <case> <domain>",
		Short: "Mark a questionnaire as submitted",
		Long: "Mark a questionnaire as submitted. Submitting the rights questionnaire\n" +
			"also evaluates and stores the recommended rights.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, d, err := resolveCaseAndDomain(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			resp, err := app.Intake.Submit(ctx, id, d)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Submitted %s questionnaire (%d of %d visible answered)\n",
				formatter.DomainBadge(d), resp.Form.AnsweredCount(), len(resp.Form.Visible))
			if d == domain.DomainRights {
				fmt.Fprint(out, "\n"+formatter.FormatRecommendations(resp.Recommendations))
			}
			return nil
		},
	}
}
