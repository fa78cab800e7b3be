package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type Styles struct {
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Placeholder lipgloss.Style
	Index       lipgloss.Style
	Hyperlinks  bool
}

func DefaultStyles() Styles {
	return Styles{
		Item:        lipgloss.NewStyle(),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Index:       lipgloss.NewStyle().Faint(true),
		Hyperlinks:  true,
	}
}

// PlainStyles renders without colour or escape sequences.
func PlainStyles() Styles {
	return Styles{
		Item:        lipgloss.NewStyle(),
		Selected:    lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle(),
		Index:       lipgloss.NewStyle(),
	}
}

// Lines projects the list into terminal lines. cursor < 0 hides the cursor.
// Numbers are 1-based to match the CLI.
func (l *List) Lines(cursor int, st Styles) []string {
	if l.Empty() {
		return []string{st.Placeholder.Render(l.nodes[0].Label)}
	}
	out := make([]string, 0, len(l.nodes))
	for i, n := range l.nodes {
		mark := " "
		style := st.Item
		if i == cursor {
			mark = ">"
			style = st.Selected
		}
		label := style.Render(n.Label)
		if n.Href != "" && st.Hyperlinks {
			label = ansi.SetHyperlink(n.Href) + label + ansi.ResetHyperlink()
		}
		out = append(out, fmt.Sprintf("%s %s %s", mark, st.Index.Render(fmt.Sprintf("%2d.", i+1)), label))
	}
	return out
}
