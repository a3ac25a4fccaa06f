// Package teatest drives bubbletea models synchronously in tests: every
// Cmd returned by Update is executed inline and its message fed back,
// so assertions run against a settled model without a tea.Program.
package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainDepth bounds Cmd chains that keep producing messages.
const maxDrainDepth = 50

type Driver struct {
	t     *testing.T
	model tea.Model

	// Quitting is set once a Cmd produced tea.QuitMsg.
	Quitting bool
}

// New wraps model. Call Start to run its Init command.
func New(t *testing.T, model tea.Model, width, height int) *Driver {
	t.Helper()
	d := &Driver{t: t, model: model}
	if width > 0 {
		d.model, _ = d.model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	}
	return d
}

func (d *Driver) Start() {
	d.t.Helper()
	d.drain(d.model.Init(), 0)
}

// Send dispatches msg and drains the resulting Cmds. Messages after a
// quit are dropped, matching tea.Program.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.model, cmd = d.model.Update(msg)
	d.drain(cmd, 0)
}

func (d *Driver) Press(keyType tea.KeyType) {
	d.t.Helper()
	d.Send(tea.KeyMsg{Type: keyType})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.t.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (d *Driver) View() string { return d.model.View() }

// Model returns the current model for type-specific assertions.
func (d *Driver) Model() tea.Model { return d.model }

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.t.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDrainDepth {
		d.t.Logf("teatest: drain depth limit (%d) reached", maxDrainDepth)
		return
	}

	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
	default:
		var next tea.Cmd
		d.model, next = d.model.Update(msg)
		d.drain(next, depth+1)
	}
}
