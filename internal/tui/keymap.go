package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the deck view.
type KeyMap struct {
	// Swiping
	Like key.Binding
	Pass key.Binding

	// Card scrolling
	Up   key.Binding
	Down key.Binding

	// Screens
	Liked   key.Binding
	History key.Binding

	// Links
	OpenProject key.Binding
	OpenGitHub  key.Binding
	OpenVideo   key.Binding
	OpenDemo    key.Binding

	// Session
	Reset  key.Binding
	Logout key.Binding
	Help   key.Binding
	Quit   key.Binding
	Back   key.Binding
	Select key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Like: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "like"),
		),
		Pass: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "pass"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Liked: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "liked projects"),
		),
		History: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "history"),
		),
		OpenProject: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open on Devpost"),
		),
		OpenGitHub: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "open GitHub"),
		),
		OpenVideo: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "open video"),
		),
		OpenDemo: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "open demo"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset progress"),
		),
		Logout: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "log out"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view project"),
		),
	}
}

// ShortHelp returns key bindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Like, k.Pass, k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Like, k.Pass, k.Up, k.Down},
		{k.Liked, k.History, k.Reset, k.Logout},
		{k.OpenProject, k.OpenGitHub, k.OpenVideo, k.OpenDemo},
		{k.Help, k.Quit},
	}
}
