package controller

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	pagerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	pagerHelpStyle  = lipgloss.NewStyle().Faint(true)
)

// runPager shows the lines in a scrollable viewport. Short listings are
// printed directly without entering the alternate screen.
func runPager(output *os.File, lines []string) error {
	width, height, err := term.GetSize(int(output.Fd()))
	if err != nil {
		return err
	}

	// Header and help line take two rows.
	if len(lines)+2 <= height {
		_, err := fmt.Fprintln(output, strings.Join(lines, "\n"))
		return err
	}

	model := newPagerModel(lines, width, height)

	program := tea.NewProgram(model, tea.WithOutput(output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// pagerModel is the Bubble Tea model for browsing a signature listing.
type pagerModel struct {
	viewport viewport.Model
	title    string
}

func newPagerModel(lines []string, width, height int) pagerModel {
	vp := viewport.New(width, height-2)
	vp.SetContent(strings.Join(lines, "\n"))

	return pagerModel{
		viewport: vp,
		title:    "Signature Report",
	}
}

// Init implements tea.Model.
func (p pagerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}
	case tea.WindowSizeMsg:
		p.viewport.Width = msg.Width
		p.viewport.Height = msg.Height - 2
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

// View implements tea.Model.
func (p pagerModel) View() string {
	header := pagerTitleStyle.Render(p.title)
	help := pagerHelpStyle.Render(fmt.Sprintf("%3.0f%%  ↑/↓ scroll · q quit", p.viewport.ScrollPercent()*100))

	return header + "\n" + p.viewport.View() + "\n" + help
}
