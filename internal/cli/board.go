package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/caseflow/internal/cli/formatter"
	"github.com/alexanderramin/caseflow/internal/contract"
	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type boardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Detail  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultBoardKeys() boardKeyMap {
	return boardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next viewpoint")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev viewpoint")),
		Detail:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "sections")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Detail, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Detail}, {k.Next, k.Prev, k.Refresh, k.Quit}}
}

// boardLoadedMsg carries a freshly computed board for viewpoint.
type boardLoadedMsg struct {
	viewpoint domain.Viewpoint
	resp      *contract.BoardResponse
	err       error
}

// boardModel is the live progress board: one row per open case, scored
// under a viewpoint the user can cycle through.
type boardModel struct {
	ctx             context.Context
	progress        service.ProgressService
	viewpoint       domain.Viewpoint
	includeArchived bool

	board   *contract.BoardResponse
	cursor  int
	detail  bool
	loading bool
	err     error

	keys boardKeyMap
	help help.Model
}

func newBoardModel(ctx context.Context, progress service.ProgressService, vp domain.Viewpoint, includeArchived bool) *boardModel {
	return &boardModel{
		ctx:             ctx,
		progress:        progress,
		viewpoint:       vp,
		includeArchived: includeArchived,
		loading:         true,
		keys:            defaultBoardKeys(),
		help:            help.New(),
	}
}

func (m *boardModel) Init() tea.Cmd {
	return m.load()
}

func (m *boardModel) load() tea.Cmd {
	ctx, svc := m.ctx, m.progress
	req := contract.BoardRequest{Viewpoint: m.viewpoint, IncludeArchived: m.includeArchived}
	return func() tea.Msg {
		resp, err := svc.Board(ctx, req)
		return boardLoadedMsg{viewpoint: req.Viewpoint, resp: resp, err: err}
	}
}

// cycle moves the viewpoint by step through domain.Viewpoints.
func (m *boardModel) cycle(step int) tea.Cmd {
	n := len(domain.Viewpoints)
	i := slices.Index(domain.Viewpoints, m.viewpoint)
	m.viewpoint = domain.Viewpoints[((i+step)%n+n)%n]
	m.loading = true
	return m.load()
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		// A load superseded by a later viewpoint change.
		if msg.viewpoint != m.viewpoint {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.board = msg.resp
			if m.cursor >= len(m.board.Rows) {
				m.cursor = max(len(m.board.Rows)-1, 0)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.board != nil && m.cursor < len(m.board.Rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Detail):
			m.detail = !m.detail
		case key.Matches(msg, m.keys.Next):
			return m, m.cycle(1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.cycle(-1)
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.load()
		}
	}
	return m, nil
}

func (m *boardModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Board: "+formatter.ViewpointLabel(m.viewpoint)) + "\n\n")

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case m.board == nil:
		b.WriteString(formatter.Dim("Loading...") + "\n")
	case len(m.board.Rows) == 0:
		b.WriteString(formatter.Dim("No open cases.") + "\n")
	default:
		for i, row := range m.board.Rows {
			cursor := "  "
			name := row.CaseName
			if i == m.cursor {
				cursor = formatter.StyleHeader.Render("▸ ")
				name = formatter.Bold(name)
			}
			req := " "
			if row.RequiredComplete {
				req = formatter.StyleGreen.Render("✔")
			}
			fmt.Fprintf(&b, "%s%s %-24s %s %s\n",
				cursor, formatter.TruncID(row.CaseID), name,
				formatter.RenderProgress(row.OverallPercentage, 16), req)
		}
		if m.detail && m.cursor < len(m.board.Rows) {
			b.WriteString("\n" + formatter.FormatResult(m.board.Rows[m.cursor].Result))
		}
	}

	if m.loading && m.board != nil {
		b.WriteString(formatter.Dim("refreshing...") + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func newBoardCmd(app *App) *cobra.Command {
	var (
		vp       domain.Viewpoint
		archived bool
	)

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show completion of every open case",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if app.interactive() {
				p := tea.NewProgram(newBoardModel(ctx, app.Progress, vp, archived), tea.WithAltScreen(), tea.WithContext(ctx))
				_, err := p.Run()
				return err
			}

			resp, err := app.Progress.Board(ctx, contract.BoardRequest{Viewpoint: vp, IncludeArchived: archived})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBoard(resp))
			return nil
		},
	}

	cmd.Flags().Var(newViewpointValue(app.defaultViewpoint(), &vp), "viewpoint", viewpointUsage())
	cmd.Flags().BoolVar(&archived, "archived", false, "Include archived cases")

	return cmd
}
