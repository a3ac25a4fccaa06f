package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/caseflow/internal/cli/formatter"
	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/repository"
	"github.com/spf13/cobra"
)

func newCaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "case",
		Short: "Manage cases",
	}

	cmd.AddCommand(
		newCaseAddCmd(app),
		newCaseListCmd(app),
		newCaseShowCmd(app),
		newCaseUpdateCmd(app),
		newCaseCloseCmd(app),
		newCaseRemoveCmd(app),
	)

	return cmd
}

// caseFields binds the editable case fields to flags shared by add and update.
type caseFields struct {
	first, last, idNumber, dob, phone, email, address string
	summary, concerns, goals                         string
}

func (f *caseFields) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.first, "first", "", "First name")
	fl.StringVar(&f.last, "last", "", "Last name")
	fl.StringVar(&f.idNumber, "id-number", "", "National ID number")
	fl.StringVar(&f.dob, "dob", "", "Date of birth (YYYY-MM-DD)")
	fl.StringVar(&f.phone, "phone", "", "Phone number")
	fl.StringVar(&f.email, "email", "", "Email address")
	fl.StringVar(&f.address, "address", "", "Home address")
	fl.StringVar(&f.summary, "summary", "", "Case summary")
	fl.StringVar(&f.concerns, "concerns", "", "Main concerns")
	fl.StringVar(&f.goals, "goals", "", "Client goals")
}

// apply copies the flags the user set onto c.
func (f *caseFields) apply(cmd *cobra.Command, c *domain.Case) error {
	set := func(name string, dst *string, v string) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	set("first", &c.FirstName, f.first)
	set("last", &c.LastName, f.last)
	set("id-number", &c.IDNumber, f.idNumber)
	set("phone", &c.Phone, f.phone)
	set("email", &c.Email, f.email)
	set("address", &c.Address, f.address)
	set("summary", &c.CaseSummary, f.summary)
	set("concerns", &c.MainConcerns, f.concerns)
	set("goals", &c.Goals, f.goals)

	if cmd.Flags().Changed("dob") {
		if f.dob == "" {
			c.DateOfBirth = nil
			return nil
		}
		t, err := time.Parse("2006-01-02", f.dob)
		if err != nil {
			return fmt.Errorf("invalid date of birth %q: %w", f.dob, err)
		}
		c.DateOfBirth = &t
	}
	return nil
}

func newCaseAddCmd(app *App) *cobra.Command {
	var fields caseFields

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Open a new case",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Case{}
			if err := fields.apply(cmd, c); err != nil {
				return err
			}
			if err := app.Cases.Create(cmd.Context(), c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Opened case %s [%s]\n", c.FullName(), c.DisplayID())
			return nil
		},
	}
	fields.bind(cmd)

	return cmd
}

func newCaseListCmd(app *App) *cobra.Command {
	var all, closed bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := repository.CaseFilter{IncludeArchived: all}
			if closed {
				filter.Status = domain.CaseClosed
			}
			cases, err := app.Cases.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCaseList(cases, app.now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived cases")
	cmd.Flags().BoolVar(&closed, "closed", false, "Only closed cases")

	return cmd
}

func newCaseShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <case>",
		Short: "Show case details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCaseID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Cases.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCaseDetail(c))
			return nil
		},
	}
}

func newCaseUpdateCmd(app *App) *cobra.Command {
	var fields caseFields

	cmd := &cobra.Command{
		Use:   "update <case>",
		Short: "Update case details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveCaseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Cases.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if err := fields.apply(cmd, c); err != nil {
				return err
			}
			if err := app.Cases.Update(ctx, c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated case %s\n", c.FullName())
			return nil
		},
	}
	fields.bind(cmd)

	return cmd
}

func newCaseCloseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "close <case>",
		Short: "Close a case; its questionnaires become read-only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCaseID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Cases.Close(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Closed case %s\n", id[:min(8, len(id))])
			return nil
		},
	}
}

func newCaseRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <case>",
		Short: "Delete a closed case and all of its answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCaseID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Cases.Delete(cmd.Context(), id, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted case %s\n", id[:min(8, len(id))])
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete even if the case is still active")

	return cmd
}
