package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the model reacts to. Bindings carry their help
// text so the footer renders straight from this struct.
type KeyMap struct {
	Quit      key.Binding
	PlayPause key.Binding
	PrevFrame key.Binding
	NextFrame key.Binding
	SpeedUp   key.Binding
	SpeedDown key.Binding
	Scrub     key.Binding

	Sync    key.Binding
	Capture key.Binding

	CursorLeft  key.Binding
	CursorRight key.Binding

	AddStep       key.Binding
	AddHalf       key.Binding
	AddStepCursor key.Binding
	AddHalfCursor key.Binding
	RemoveStep    key.Binding
	RemoveHalf    key.Binding

	SwitchFoot  key.Binding
	SwapFeet    key.Binding
	ToggleSteps key.Binding
	Theme       key.Binding
	Copy        key.Binding
	Export      key.Binding
	ResetSync   key.Binding
	ResetAll    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		PrevFrame: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "step frame"),
		),
		NextFrame: key.NewBinding(
			key.WithKeys("right"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "speed"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("down"),
		),
		Scrub: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "scrub"),
		),
		Sync: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sync"),
		),
		Capture: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "capture"),
		),
		CursorLeft: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h/l", "data cursor"),
		),
		CursorRight: key.NewBinding(
			key.WithKeys("l"),
		),
		AddStep: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "step marker"),
		),
		AddHalf: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "half marker"),
		),
		AddStepCursor: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M/N", "marker at cursor"),
		),
		AddHalfCursor: key.NewBinding(
			key.WithKeys("N"),
		),
		RemoveStep: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x/X", "remove marker"),
		),
		RemoveHalf: key.NewBinding(
			key.WithKeys("X"),
		),
		SwitchFoot: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "foot"),
		),
		SwapFeet: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "swap csv"),
		),
		ToggleSteps: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "segments"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy time"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		ResetSync: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset sync"),
		),
		ResetAll: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset session"),
		),
	}
}
