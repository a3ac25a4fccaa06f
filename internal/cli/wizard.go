package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/caseflow/internal/cli/formatter"
	"github.com/alexanderramin/caseflow/internal/contract"
	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// caseflowHuhTheme returns a huh theme using the formatter palette.
func caseflowHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardAnswer is what a prompt collected for one question.
type wizardAnswer struct {
	text  string
	items []string
}

// value converts the prompt result to an answer for q. The second result
// is false when the user left the prompt empty, which keeps any previous
// answer untouched.
func (a wizardAnswer) value(q contract.QuestionView) (domain.Value, bool) {
	if q.Kind == domain.InputMultiSelect {
		if len(a.items) == 0 {
			return domain.None(), false
		}
		return domain.List(a.items...), true
	}
	if strings.TrimSpace(a.text) == "" {
		return domain.None(), false
	}
	return domain.Text(strings.TrimSpace(a.text)), true
}

// nextQuestion picks the first visible question not yet asked. Visibility
// is re-read after every answer so newly revealed questions are asked in
// registry order.
func nextQuestion(view *contract.FormView, asked map[string]bool) (contract.QuestionView, bool) {
	for _, q := range view.Visible {
		if !asked[q.Field] {
			return q, true
		}
	}
	return contract.QuestionView{}, false
}

// wizardPrompt builds the huh form for one question, pre-filled with its
// current answer.
func wizardPrompt(q contract.QuestionView, ans *wizardAnswer) *huh.Form {
	title := q.Label
	desc := formatter.SectionTitle(q.Section)
	if q.Condition != "" {
		desc += " · shown because " + q.Condition
	}

	var field huh.Field
	switch {
	case q.Kind == domain.InputMultiSelect:
		ans.items = q.Answer.Items()
		field = huh.NewMultiSelect[string]().
			Title(title).
			Description(desc).
			Options(huh.NewOptions(q.Options...)...).
			Value(&ans.items)
	case q.Kind.Enumerable() && len(q.Options) > 0:
		ans.text = q.Answer.String()
		opts := append([]huh.Option[string]{huh.NewOption("(skip)", "")}, huh.NewOptions(q.Options...)...)
		field = huh.NewSelect[string]().
			Title(title).
			Description(desc).
			Options(opts...).
			Value(&ans.text)
	case q.Kind == domain.InputTextarea:
		ans.text = q.Answer.String()
		field = huh.NewText().
			Title(title).
			Description(desc).
			Value(&ans.text)
	default:
		ans.text = q.Answer.String()
		input := huh.NewInput().
			Title(title).
			Description(desc).
			Value(&ans.text)
		if q.Kind == domain.InputDate {
			input = input.Placeholder("YYYY-MM-DD")
		}
		field = input
	}

	return huh.NewForm(huh.NewGroup(field)).WithTheme(caseflowHuhTheme()).WithShowHelp(false)
}

func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(caseflowHuhTheme()).WithShowHelp(false)
}

func newIntakeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "intake <case> <domain>",
		Short: "Fill in a questionnaire interactively",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("intake needs an interactive terminal; use `caseflow answer` instead")
			}
			ctx := cmd.Context()
			id, d, err := resolveCaseAndDomain(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			view, err := app.Intake.Form(ctx, id, d)
			if err != nil {
				return err
			}

			asked := map[string]bool{}
			for {
				q, ok := nextQuestion(view, asked)
				if !ok {
					break
				}
				asked[q.Field] = true

				var ans wizardAnswer
				if err := wizardPrompt(q, &ans).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(out, formatter.Dim("Stopped. Answers so far are saved."))
						return nil
					}
					return err
				}

				v, changed := ans.value(q)
				if !changed || v.Equal(q.Answer) {
					continue
				}
				resp, err := app.Intake.Answer(ctx, contract.AnswerRequest{CaseID: id, Domain: d, Field: q.Field, Value: v})
				if err != nil {
					return err
				}
				view = &resp.Form
			}

			fmt.Fprint(out, formatter.FormatForm(view))

			submit := false
			if err := wizardConfirm("Submit this questionnaire now?", &submit).Run(); err != nil && !errors.Is(err, huh.ErrUserAborted) {
				return err
			}
			if !submit {
				return nil
			}
			resp, err := app.Intake.Submit(ctx, id, d)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Submitted %s questionnaire\n", formatter.DomainBadge(d))
			if d == domain.DomainRights {
				fmt.Fprint(out, "\n"+formatter.FormatRecommendations(resp.Recommendations))
			}
			return nil
		},
	}
}
