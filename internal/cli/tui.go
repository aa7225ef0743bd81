package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// RowViewModel - Scrollable tape preview
// =============================================================================

// RowViewModel is the bubbletea model for scrolling through a rendered tape.
type RowViewModel struct {
	Lines  []string
	Offset int
	Height int
}

// NewRowViewModel creates a viewer over pre-rendered preview lines.
func NewRowViewModel(lines []string) RowViewModel {
	return RowViewModel{
		Lines:  lines,
		Height: 20,
	}
}

func (m RowViewModel) Init() tea.Cmd {
	return nil
}

func (m RowViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Offset > 0 {
				m.Offset--
			}
		case "down", "j":
			if m.Offset < m.maxOffset() {
				m.Offset++
			}
		case "pgup":
			m.Offset -= m.Height
			if m.Offset < 0 {
				m.Offset = 0
			}
		case "pgdown", " ":
			m.Offset += m.Height
			if m.Offset > m.maxOffset() {
				m.Offset = m.maxOffset()
			}
		case "g", "home":
			m.Offset = 0
		case "G", "end":
			m.Offset = m.maxOffset()
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 4
		if m.Height < 5 {
			m.Height = 5
		}
		if m.Offset > m.maxOffset() {
			m.Offset = m.maxOffset()
		}
	}
	return m, nil
}

func (m RowViewModel) maxOffset() int {
	max := len(m.Lines) - m.Height
	if max < 0 {
		return 0
	}
	return max
}

func (m RowViewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Tape Preview"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("row %d-%d of %d", m.Offset+1,
		min(m.Offset+m.Height, len(m.Lines)), len(m.Lines))))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ scroll  space page  g/G ends  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Lines) {
		end = len(m.Lines)
	}
	for _, line := range m.Lines[m.Offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// runRowViewer runs the interactive preview until the user quits.
func runRowViewer(lines []string) error {
	_, err := tea.NewProgram(NewRowViewModel(lines)).Run()
	return err
}
