package core

// Command is a semantic game command, abstracted from physical key presses.
// The session state machine works with these high-level intents rather than
// raw terminal events.
type Command int

const (
	CommandNone     Command = iota
	CommandActivate         // Start the game or restart after game over
	CommandJump             // Flap upward; meaningful only while playing
	CommandQuit             // Terminate the process
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandActivate:
		return "Activate"
	case CommandJump:
		return "Jump"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the commands issued during one simulation tick.
type InputFrame struct {
	// Commands maps command types to whether they were triggered this frame.
	Commands map[Command]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Commands: make(map[Command]bool),
	}
}

// Set marks a command as triggered for this frame.
func (f *InputFrame) Set(c Command) {
	if f.Commands == nil {
		f.Commands = make(map[Command]bool)
	}
	f.Commands[c] = true
}

// Has reports whether the given command was triggered this frame.
func (f InputFrame) Has(c Command) bool {
	if f.Commands == nil {
		return false
	}
	return f.Commands[c]
}

// Clear resets all commands for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Commands {
		delete(f.Commands, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Commands {
		clone.Commands[k] = v
	}
	return clone
}
