package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"tabdeck/internal/config"
)

type keyMap struct {
	Quit        key.Binding
	NextPane    key.Binding
	PrevPane    key.Binding
	Up          key.Binding
	Down        key.Binding
	Remove      key.Binding
	ToggleLinks key.Binding
	AddLink     key.Binding
	OpenLink    key.Binding
	CopyLink    key.Binding
	Search      key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:        binding(k.Quit, "quit"),
		NextPane:    binding(k.NextPane, "next pane"),
		PrevPane:    binding(k.PrevPane, "prev pane"),
		Up:          binding(k.Up, "up"),
		Down:        binding(k.Down, "down"),
		Remove:      binding(k.Remove, "remove"),
		ToggleLinks: binding(k.ToggleLinks, "links"),
		AddLink:     binding(k.AddLink, "add link"),
		OpenLink:    binding(k.OpenLink, "open"),
		CopyLink:    binding(k.CopyLink, "copy"),
		Search:      binding(k.Search, "search"),
		Confirm:     binding(k.Confirm, "confirm"),
		Cancel:      binding(k.Cancel, "cancel"),
	}
}

func binding(list, desc string) key.Binding {
	var keys []string
	for _, k := range strings.Split(list, ",") {
		// A lone space is the space bar; do not trim it away.
		if k != " " {
			k = strings.TrimSpace(k)
		}
		if k != "" {
			keys = append(keys, k)
		}
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// shortHelp lists the bindings that matter for the focused pane.
func (k keyMap) shortHelp(focus pane) []key.Binding {
	common := []key.Binding{k.NextPane, k.ToggleLinks, k.AddLink, k.Search, k.Quit}
	switch focus {
	case paneTasks:
		return append([]key.Binding{k.Up, k.Down, k.Remove}, common...)
	case paneLinks:
		return append([]key.Binding{k.Up, k.Down, k.OpenLink, k.CopyLink, k.Remove}, common...)
	default:
		return append([]key.Binding{k.Confirm}, common...)
	}
}
