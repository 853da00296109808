package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the editor keybindings.
type keyMap struct {
	ForwardSexp  key.Binding
	BackwardSexp key.Binding
	UpList       key.Binding
	DownList     key.Binding
	SlurpFwd     key.Binding
	SlurpBack    key.Binding
	BarfFwd      key.Binding
	BarfBack     key.Binding
	Raise        key.Binding
	Splice       key.Binding
	Wrap         key.Binding
	Transpose    key.Binding
	Kill         key.Binding
	Save         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// defaultKeyMap returns the standard bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		ForwardSexp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "forward sexp"),
		),
		BackwardSexp: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "backward sexp"),
		),
		UpList: key.NewBinding(
			key.WithKeys("up", "u"),
			key.WithHelp("↑/u", "up list"),
		),
		DownList: key.NewBinding(
			key.WithKeys("down", "d"),
			key.WithHelp("↓/d", "down list"),
		),
		SlurpFwd: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "slurp forward"),
		),
		SlurpBack: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "slurp backward"),
		),
		BarfFwd: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "barf forward"),
		),
		BarfBack: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "barf backward"),
		),
		Raise: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "raise"),
		),
		Splice: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "splice"),
		),
		Wrap: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "wrap in ()"),
		),
		Transpose: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "transpose"),
		),
		Kill: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "kill sexp"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.ForwardSexp,
		k.BackwardSexp,
		k.SlurpFwd,
		k.BarfFwd,
		k.Help,
		k.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ForwardSexp, k.BackwardSexp, k.UpList, k.DownList},
		{k.SlurpFwd, k.SlurpBack, k.BarfFwd, k.BarfBack},
		{k.Raise, k.Splice, k.Wrap, k.Transpose},
		{k.Kill, k.Save, k.Help, k.Quit},
	}
}
