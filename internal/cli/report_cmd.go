package cli

import (
	"fmt"

	"github.com/alexanderramin/caseflow/internal/cli/formatter"
	"github.com/alexanderramin/caseflow/internal/contract"
	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/spf13/cobra"
)

func newRecommendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend <case>",
		Short: "Show the rights recommended at the last rights submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCaseID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			recs, err := app.Recommendations.List(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecommendations(recs))
			return nil
		},
	}
}

func newGoalsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "goals <case>",
		Short: "Show career goals suggested by the current career answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCaseID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			goals, err := app.Recommendations.Goals(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoals(goals))
			return nil
		},
	}
}

func newProgressCmd(app *App) *cobra.Command {
	var (
		vp  domain.Viewpoint
		all bool
	)

	cmd := &cobra.Command{
		Use:   "progress <case>",
		Short: "Show how complete a case is from a professional viewpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCaseID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}

			req := contract.NewProgressRequest(id)
			req.Viewpoint = vp
			req.All = all
			now := app.now()
			req.Now = &now

			resp, err := app.Progress.Progress(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProgress(resp))
			return nil
		},
	}

	cmd.Flags().Var(newViewpointValue(app.defaultViewpoint(), &vp), "viewpoint", viewpointUsage())
	cmd.Flags().BoolVar(&all, "all", false, "Score under every viewpoint")
	cmd.MarkFlagsMutuallyExclusive("viewpoint", "all")

	return cmd
}
