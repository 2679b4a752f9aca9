// Package teatest runs a bubbletea model without a tea.Program: Update is
// called directly and returned Cmds are executed inline, so a test can press
// a key and immediately assert on View output with no goroutines involved.
//
// This works because the studio model's Cmds are all synchronous (engine
// passes over the test database, tea.Quit). A model that schedules timers or
// long-running I/O needs the real runtime instead.
package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// maxCmdChain bounds how many Cmds a single Send may chain through before
// the driver assumes the model is feeding itself messages forever.
const maxCmdChain = 100

type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting records that the model returned tea.Quit. The real runtime
	// swallows the QuitMsg, so tests check this flag instead.
	Quitting bool
}

// New runs the model's Init and gives it a terminal size.
func New(t *testing.T, model tea.Model, width, height int) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	d.apply(d.Model.Init(), 0)
	d.Send(tea.WindowSizeMsg{Width: width, Height: height})
	return d
}

// Send feeds one message through Update and follows the resulting Cmds to
// completion. Messages after a quit are dropped.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.apply(cmd, 0)
}

// PressKey sends a single character keypress.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// View renders the model's current output.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) apply(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxCmdChain {
		d.T.Fatalf("teatest: command chain exceeded %d messages", maxCmdChain)
	}

	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, sub := range msg {
			if sub != nil {
				d.apply(sub, depth+1)
			}
		}
	case tea.QuitMsg:
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
	default:
		updated, next := d.Model.Update(msg)
		d.Model = updated
		d.apply(next, depth+1)
	}
}
