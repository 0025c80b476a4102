package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappybird-tui/internal/core"
)

// KeyMap translates terminal key presses into game commands. Space carries
// both Activate and Jump: the session picks whichever is meaningful for the
// current phase, so the mapping itself stays phase-independent.
type KeyMap struct {
	Activate   key.Binding
	Jump       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Activate: key.NewBinding(
			key.WithKeys(" ", "enter", "r"),
			key.WithHelp("space", "start/restart"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Apply records the commands for a key press into the input frame and
// reports whether the key was a quit request. Screenshot is handled by the
// model directly and never reaches the simulation.
func (k KeyMap) Apply(msg tea.KeyMsg, frame *core.InputFrame) (isQuit bool) {
	if key.Matches(msg, k.Quit) {
		frame.Set(core.CommandQuit)
		return true
	}
	if key.Matches(msg, k.Activate) {
		frame.Set(core.CommandActivate)
	}
	if key.Matches(msg, k.Jump) {
		frame.Set(core.CommandJump)
	}
	return false
}
