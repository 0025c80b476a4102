package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()

	if f.Has(CommandJump) {
		t.Error("empty frame should have no commands")
	}

	f.Set(CommandJump)
	f.Set(CommandActivate)

	if !f.Has(CommandJump) || !f.Has(CommandActivate) {
		t.Error("frame should report the commands that were set")
	}
	if f.Has(CommandQuit) {
		t.Error("frame should not report commands that were never set")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(CommandJump)

	f.Clear()

	if f.Has(CommandJump) {
		t.Error("Clear should remove all commands")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(CommandActivate)

	clone := f.Clone()
	f.Clear()

	if !clone.Has(CommandActivate) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(CommandJump) {
		t.Error("zero-value frame should have no commands")
	}

	f.Set(CommandJump)
	if !f.Has(CommandJump) {
		t.Error("Set on a zero-value frame should allocate and record")
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd      Command
		expected string
	}{
		{CommandNone, "None"},
		{CommandActivate, "Activate"},
		{CommandJump, "Jump"},
		{CommandQuit, "Quit"},
		{Command(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.cmd.String(); got != tc.expected {
			t.Errorf("Command(%d).String() = %q, expected %q", tc.cmd, got, tc.expected)
		}
	}
}
