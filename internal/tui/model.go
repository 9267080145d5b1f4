// Package tui is a terminal front end for the attribute browser. It feeds
// keyboard events through the same navigation dispatch as the web page.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"attribute-browser/internal/navigation"
	"attribute-browser/internal/views"
)

// SearchDebounce is how long typing must pause before the list is re-evaluated.
const SearchDebounce = 180 * time.Millisecond

// Lines taken by the header and footer around the list or detail body.
const chromeHeight = 7

// searchDebounceMsg fires SearchDebounce after a keystroke changed the query.
// Only the message carrying the latest sequence number triggers evaluation.
type searchDebounceMsg struct {
	seq int
}

// Model is the bubbletea model of the browser.
type Model struct {
	controller *navigation.Controller
	input      textinput.Model
	viewport   viewport.Model
	effects    []string
	effectIdx  int
	fragment   string
	state      navigation.ViewState
	cursor     int
	pendingSeq int
	width      int
	height     int
	quitting   bool
}

// NewModel creates the model and evaluates the initial list view.
func NewModel(controller *navigation.Controller) Model {
	ti := textinput.New()
	ti.Placeholder = "Search name, class, description or id"
	ti.Prompt = "search: "
	ti.CharLimit = 256
	ti.Focus()

	m := Model{
		controller: controller,
		input:      ti,
		viewport:   viewport.New(80, 20),
		effects:    controller.Catalog().EffectOptions(),
		fragment:   "#/",
	}
	m.evaluate(navigation.EventLoad)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// State returns the currently displayed view.
func (m Model) State() navigation.ViewState {
	return m.state
}

// Query returns the current search text.
func (m Model) Query() string {
	return m.input.Value()
}

// Effect returns the selected effect filter.
func (m Model) Effect() string {
	if len(m.effects) == 0 {
		return ""
	}
	return m.effects[m.effectIdx]
}

func (m *Model) evaluate(event navigation.Event) {
	m.state = m.controller.Dispatch(event, navigation.Inputs{
		Query:    m.input.Value(),
		Effect:   m.Effect(),
		Fragment: m.fragment,
	})

	if m.state.List != nil {
		if m.cursor >= len(m.state.List.Cards) {
			m.cursor = max(len(m.state.List.Cards)-1, 0)
		}
		return
	}
	m.viewport.SetContent(m.state.Detail.RawJSON)
	m.viewport.GotoTop()
}

func (m *Model) navigate(fragment string) {
	m.fragment = fragment
	m.evaluate(navigation.EventFragment)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-len(m.input.Prompt)-2, 10)
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight-8, 3)
		return m, nil

	case searchDebounceMsg:
		if msg.seq != m.pendingSeq {
			return m, nil
		}
		m.evaluate(navigation.EventSearch)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.state.Detail != nil {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.state.List.Cards)-1 {
			m.cursor++
		}
		return m, nil
	case "tab":
		m.effectIdx = (m.effectIdx + 1) % len(m.effects)
		m.evaluate(navigation.EventFilter)
		return m, nil
	case "shift+tab":
		m.effectIdx = (m.effectIdx - 1 + len(m.effects)) % len(m.effects)
		m.evaluate(navigation.EventFilter)
		return m, nil
	case "enter":
		if len(m.state.List.Cards) > 0 {
			m.navigate(views.DetailHref(m.state.List.Cards[m.cursor].ID))
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}

	m.pendingSeq++
	seq := m.pendingSeq
	debounce := tea.Tick(SearchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
	return m, tea.Batch(cmd, debounce)
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "left":
		m.navigate("#/")
		return m, nil
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.state.Detail != nil {
		return m.detailView()
	}
	return m.listView()
}

func (m Model) listView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Attribute Browser"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s   %s\n\n",
		labelStyle.Render("effect:"),
		effectStyle.Render(m.Effect()),
		countStyle.Render(m.state.List.Header))

	list := m.state.List
	if len(list.Cards) == 0 {
		b.WriteString(placeholderStyle.Render(list.Placeholder))
		b.WriteString("\n")
	} else {
		start, end := m.visibleRange(len(list.Cards))
		for i := start; i < end; i++ {
			c := list.Cards[i]
			line := fmt.Sprintf("%s  [%s · %s]", c.Label, c.Effect, c.Visibility)
			if i == m.cursor {
				b.WriteString(selectedItemStyle.Render("> " + line))
			} else {
				b.WriteString(itemStyle.Render("  " + line))
			}
			b.WriteString("\n")
			b.WriteString(metaStyle.Render("  " + c.Meta))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("type to search • ↑/↓ move • enter open • tab/shift+tab effect • ctrl+c quit"))
	return b.String()
}

// visibleRange returns the window of cards that fits the terminal, keeping the cursor in view.
func (m Model) visibleRange(n int) (int, int) {
	rows := n
	if m.height > 0 {
		// Two lines per card.
		rows = max((m.height-chromeHeight)/2, 1)
	}
	if n <= rows {
		return 0, n
	}
	start := max(m.cursor-rows+1, 0)
	return start, min(start+rows, n)
}

func (m Model) detailView() string {
	detail := m.state.Detail
	var b strings.Builder
	b.WriteString(titleStyle.Render(detail.Title))
	b.WriteString("\n")
	if !detail.Found {
		fmt.Fprintf(&b, "%s\n", countStyle.Render("No attribute has id "+m.state.Route.ID))
		b.WriteString(helpStyle.Render("esc back • ctrl+c quit"))
		return b.String()
	}

	for _, row := range detail.Rows {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-20s", row.Label)), row.Value)
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Raw data"))
	b.WriteString("\n")
	b.WriteString(rawStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • q quit"))
	return b.String()
}
