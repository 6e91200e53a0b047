package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel is the Bubble Tea model behind PromptSelect.
type selectModel struct {
	title    string
	choices  []Choice
	filtered []Choice
	cursor   int
	filter   string
	selected *Choice
	quitting bool
}

func newSelectModel(title string, choices []Choice) selectModel {
	return selectModel{
		title:    title,
		choices:  choices,
		filtered: choices,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch k := key.String(); k {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		if m.cursor < len(m.filtered) {
			selected := m.filtered[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "backspace":
		if m.filter != "" {
			m.filter = m.filter[:len(m.filter)-1]
			m.applyFilter()
		}
	case "esc":
		m.filter = ""
		m.applyFilter()
	default:
		if len(k) == 1 {
			m.filter += k
			m.applyFilter()
		}
	}
	return m, nil
}

// applyFilter keeps the choices whose value contains the filter, case-insensitively.
func (m *selectModel) applyFilter() {
	if m.filter == "" {
		m.filtered = m.choices
	} else {
		m.filtered = nil
		needle := strings.ToLower(m.filter)
		for _, c := range m.choices {
			if strings.Contains(strings.ToLower(c.Value), needle) {
				m.filtered = append(m.filtered, c)
			}
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

// View renders the selector.
func (m selectModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	fmt.Fprintf(&s, "? %s  [Use arrows to move, type to filter]\n\n", m.title)
	if m.filter != "" {
		fmt.Fprintf(&s, "Filter: %s\n\n", m.filter)
	}

	for i, c := range m.filtered {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		fmt.Fprintf(&s, "%s %s\n", cursor, formatChoice(c))
	}

	s.WriteString("\nPress Enter to select, Ctrl+C or q to quit")
	if m.filter != "" {
		s.WriteString(", Esc to clear filter")
	}
	return s.String()
}

func formatChoice(c Choice) string {
	if c.Description == "" {
		return c.Value
	}
	return fmt.Sprintf("%s (%s)", c.Value, c.Description)
}

func runSelect(title string, choices []Choice) (Choice, error) {
	final, err := tea.NewProgram(newSelectModel(title, choices)).Run()
	if err != nil {
		return Choice{}, fmt.Errorf("failed to run selection program: %w", err)
	}

	model, ok := final.(selectModel)
	if !ok || model.selected == nil {
		return Choice{}, ErrNoSelection
	}
	return *model.selected, nil
}
