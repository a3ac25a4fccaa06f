package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Cases           service.CaseService
	Intake          service.IntakeService
	Recommendations service.RecommendationService
	Progress        service.ProgressService
	Import          service.ImportService

	// DefaultViewpoint is used when --viewpoint is not given.
	DefaultViewpoint domain.Viewpoint

	// IsInteractive reports whether a terminal is attached. The intake
	// wizard and the live board need one.
	IsInteractive func() bool

	// Serve runs the REST API on addr until ctx is cancelled. Nil disables
	// the serve command.
	Serve func(ctx context.Context, addr string) error

	// Now is overridable for tests.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) defaultViewpoint() domain.Viewpoint {
	if a.DefaultViewpoint.Valid() {
		return a.DefaultViewpoint
	}
	return domain.ViewpointGeneral
}

// NewRootCmd creates the top-level "caseflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "caseflow",
		Short:         "Case intake questionnaires, rights screening and completion tracking",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCaseCmd(app),
		newQuestionsCmd(app),
		newAnswerCmd(app),
		newIntakeCmd(app),
		newSubmitCmd(app),
		newRecommendCmd(app),
		newGoalsCmd(app),
		newProgressCmd(app),
		newBoardCmd(app),
		newImportCmd(app),
		newServeCmd(app),
	)

	return root
}
