package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tabdeck/internal/browser"
	"tabdeck/internal/collection"
	"tabdeck/internal/config"
	"tabdeck/internal/dashboard"
	"tabdeck/internal/render"
)

type pane int

const (
	paneTaskInput pane = iota
	paneTasks
	paneLinks
	paneSearch
)

type mode int

const (
	modeNormal mode = iota
	modeLinkPrompt
	modeAlert
)

type openedMsg struct {
	url string
	err error
}

// Options carries the collaborators Run normally wires to the real system.
type Options struct {
	Opener    browser.Opener
	Clipboard func(string) error
	Now       func() time.Time
	Logger    *slog.Logger
}

type Model struct {
	deck   *dashboard.Dashboard
	cfg    config.Config
	keys   keyMap
	help   help.Model
	styles render.Styles
	opener browser.Opener
	clip   func(string) error
	log    *slog.Logger

	clock      time.Time
	focus      pane
	mode       mode
	linksOpen  bool
	taskCursor int
	linkCursor int
	taskInput  TaskInput
	linkPrompt LinkPrompt
	search     textinput.Model
	alert      string
	status     string
}

func New(deck *dashboard.Dashboard, cfg config.Config, opts Options) Model {
	if opts.Opener == nil {
		opts.Opener = browser.System{}
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	search := textinput.New()
	search.Placeholder = "Search the web"
	search.CharLimit = 512
	search.Width = 40
	search.Prompt = "? "

	m := Model{
		deck:       deck,
		cfg:        cfg,
		keys:       newKeyMap(cfg.Keys),
		help:       help.New(),
		styles:     render.DefaultStyles(),
		opener:     opts.Opener,
		clip:       opts.Clipboard,
		log:        opts.Logger,
		clock:      opts.Now(),
		focus:      paneTaskInput,
		mode:       modeNormal,
		taskInput:  NewTaskInput(deck.Tasks),
		linkPrompt: NewLinkPrompt(deck.Links),
		search:     search,
		status:     "Type a task and press Enter.",
	}
	m.applyFocus()
	return m
}

func Run(deck *dashboard.Dashboard, cfg config.Config, opts Options) error {
	program := tea.NewProgram(New(deck, cfg, opts), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeAlert:
			return m.updateAlert(msg)
		case modeLinkPrompt:
			return m.updateLinkPrompt(msg)
		}
		return m.handleKey(msg)
	case tickMsg:
		m.clock = time.Time(msg)
		return m, tick()
	case openedMsg:
		if msg.err != nil {
			m.log.Warn("open failed", "url", msg.url, "error", msg.err)
			m.status = fmt.Sprintf("open failed: %v", msg.err)
		} else {
			m.status = "Opened " + msg.url
		}
	case tea.WindowSizeMsg:
		w := max(msg.Width-10, 10)
		m.taskInput.field.Width = w
		m.search.Width = w
		m.linkPrompt.field.Width = w
		m.help.Width = msg.Width
	}
	return m, nil
}

// updateAlert blocks every key but quit until the notice is acknowledged.
func (m Model) updateAlert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Confirm, m.keys.Cancel) {
		m.alert = ""
		m.mode = modeNormal
		m.applyFocus()
	}
	return m, nil
}

func (m Model) updateLinkPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.linkPrompt.Hide()
		m.mode = modeNormal
		m.status = "Cancelled"
		m.applyFocus()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		notice, added := m.linkPrompt.Submit()
		if notice != "" {
			m.alert = notice
			m.mode = modeAlert
			return m, nil
		}
		m.mode = modeNormal
		if added {
			m.linksOpen = true
			m.linkCursor = clampCursor(m.deck.Links.View.Len()-1, m.deck.Links.View.Len())
			m.status = "Link saved"
		}
		m.applyFocus()
		return m, nil
	default:
		var cmd tea.Cmd
		m.linkPrompt.field, cmd = m.linkPrompt.field.Update(msg)
		return m, cmd
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextPane):
		m.focus = m.cycleFocus(1)
		m.applyFocus()
		return m, nil
	case key.Matches(msg, m.keys.PrevPane):
		m.focus = m.cycleFocus(-1)
		m.applyFocus()
		return m, nil
	case key.Matches(msg, m.keys.ToggleLinks):
		m.linksOpen = !m.linksOpen
		m.deck.Links.Refresh()
		m.linkCursor = clampCursor(m.linkCursor, m.deck.Links.View.Len())
		if m.linksOpen {
			m.focus = paneLinks
		} else if m.focus == paneLinks {
			m.focus = paneTaskInput
		}
		m.applyFocus()
		return m, nil
	case key.Matches(msg, m.keys.AddLink):
		m.linkPrompt.Show()
		m.mode = modeLinkPrompt
		m.status = "Enter URL to add to links"
		m.blurAll()
		m.linkPrompt.field.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Search):
		m.focus = paneSearch
		m.applyFocus()
		return m, textinput.Blink
	}

	switch m.focus {
	case paneTaskInput:
		return m.updateTaskInput(msg)
	case paneSearch:
		return m.updateSearch(msg)
	case paneTasks, paneLinks:
		return m.updateList(msg, m.focus)
	}
	return m, nil
}

func (m Model) updateTaskInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Confirm) {
		added, err := m.taskInput.Commit()
		switch {
		case err != nil:
			m.status = fmt.Sprintf("add failed: %v", err)
		case added:
			m.taskCursor = clampCursor(m.deck.Tasks.View.Len()-1, m.deck.Tasks.View.Len())
			m.status = "Added task"
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.taskInput.field, cmd = m.taskInput.field.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.search.SetValue("")
		m.focus = paneTaskInput
		m.applyFocus()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		u, err := browser.SearchURL(m.cfg.SearchURL, m.search.Value())
		if err != nil {
			return m, nil
		}
		m.search.SetValue("")
		return m, m.openURL(u)
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg, p pane) (tea.Model, tea.Cmd) {
	view, cursor := m.deck.Tasks.View, m.taskCursor
	if p == paneLinks {
		view, cursor = m.deck.Links.View, m.linkCursor
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Down):
		cursor = clampCursor(cursor+1, view.Len())
	case key.Matches(msg, m.keys.Up):
		cursor = clampCursor(cursor-1, view.Len())
	case key.Matches(msg, m.keys.Remove):
		node, ok := view.Node(cursor)
		if !ok {
			break
		}
		if err := node.Remove(); err != nil {
			// Out-of-range and stale triggers are no-ops; the next render
			// resynchronises the view.
			if !errors.Is(err, collection.ErrOutOfRange) && !errors.Is(err, render.ErrStaleTrigger) {
				m.status = fmt.Sprintf("remove failed: %v", err)
			}
			break
		}
		cursor = clampCursor(cursor, view.Len())
		m.status = fmt.Sprintf("Removed %q", node.Label)
	case view.Kind() == collection.KindLink && key.Matches(msg, m.keys.OpenLink):
		if node, ok := view.Node(cursor); ok {
			cmd = m.openURL(node.Href)
		}
	case view.Kind() == collection.KindLink && key.Matches(msg, m.keys.CopyLink):
		node, ok := view.Node(cursor)
		if !ok {
			break
		}
		if err := m.clip(node.Href); err != nil {
			m.status = fmt.Sprintf("copy failed: %v", err)
			break
		}
		m.status = "Copied " + node.Href
	}

	if p == paneLinks {
		m.linkCursor = cursor
	} else {
		m.taskCursor = cursor
	}
	return m, cmd
}

func (m Model) openURL(u string) tea.Cmd {
	opener := m.opener
	return func() tea.Msg {
		return openedMsg{url: u, err: opener.Open(u)}
	}
}

func (m Model) cycleFocus(step int) pane {
	order := []pane{paneTaskInput, paneTasks}
	if m.linksOpen {
		order = append(order, paneLinks)
	}
	order = append(order, paneSearch)
	idx := 0
	for i, p := range order {
		if p == m.focus {
			idx = i
			break
		}
	}
	return order[wrapIndex(idx+step, len(order))]
}

func (m *Model) blurAll() {
	m.taskInput.field.Blur()
	m.search.Blur()
}

func (m *Model) applyFocus() {
	m.blurAll()
	switch m.focus {
	case paneTaskInput:
		m.taskInput.field.Focus()
	case paneSearch:
		m.search.Focus()
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(clockStyle.Render(clockLine(m.clock)))
	b.WriteString("  ")
	b.WriteString(dateStyle.Render(dateLine(m.clock)))
	b.WriteString("\n")
	b.WriteString(greetingStyle.Render(Greeting(m.clock, m.cfg.UserName)))
	b.WriteString("\n\n")

	b.WriteString(sectionTitle("Search", m.focus == paneSearch))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	b.WriteString(sectionTitle("Tasks", m.focus == paneTaskInput || m.focus == paneTasks))
	b.WriteString("\n")
	b.WriteString(m.taskInput.field.View())
	b.WriteString("\n")
	b.WriteString(m.renderList(m.deck.Tasks.View, m.taskCursor, m.focus == paneTasks))
	b.WriteString("\n")

	if m.linksOpen {
		b.WriteString(sectionTitle("Links", m.focus == paneLinks))
		b.WriteString("\n")
		b.WriteString(m.renderList(m.deck.Links.View, m.linkCursor, m.focus == paneLinks))
	} else {
		b.WriteString(sectionTitle(fmt.Sprintf("Links (%d) [%s]", m.deck.Links.Len(), m.keys.ToggleLinks.Help().Key), false))
		b.WriteString("\n")
	}

	switch m.mode {
	case modeLinkPrompt:
		b.WriteString("\n")
		b.WriteString(modalStyle.Render("Enter URL to add to links:\n" + m.linkPrompt.field.View()))
		b.WriteString("\n")
	case modeAlert:
		b.WriteString("\n")
		b.WriteString(alertStyle.Render(m.alert + "\n\n[ OK ]"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.shortHelp(m.focus)))

	return b.String()
}

func (m Model) renderList(view *render.List, cursor int, focused bool) string {
	if !focused {
		cursor = -1
	}
	return strings.Join(view.Lines(cursor, m.styles), "\n") + "\n"
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
