package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkamenov/eduquest/internal/progression"
)

var (
	badgeTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	badgeUnlockedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("10"))

	badgeLockedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// BadgesModel is the Bubble Tea model for the badge gallery.
type BadgesModel struct {
	prog      *progression.Store
	width     int
	height    int
	keyMapper *KeyMapper
	quitting  bool
	goingBack bool
}

// NewBadgesModel creates a badge gallery view.
func NewBadgesModel(prog *progression.Store, width, height int) BadgesModel {
	return BadgesModel{
		prog:      prog,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the badge gallery.
func (m BadgesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the badge gallery.
func (m BadgesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack, MenuActionSelect:
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the badge gallery.
func (m BadgesModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(badgeTitleStyle.Render(centerText("BADGES", m.width)))
	b.WriteString("\n\n")

	if m.prog != nil {
		progress := fmt.Sprintf("Level %d  ·  %d XP", m.prog.Level(), m.prog.XP())
		b.WriteString(centerText(progress, m.width))
		b.WriteString("\n\n")

		for _, badge := range m.prog.Badges() {
			// Center before styling so escape codes don't skew the padding
			if badge.Unlocked() {
				line := centerText(fmt.Sprintf("%s %s - %s", badge.Icon, badge.Name, badge.Description), m.width)
				b.WriteString(badgeUnlockedStyle.Render(line))
			} else {
				line := centerText(fmt.Sprintf("🔒 %s - %s", badge.Name, badge.Description), m.width)
				b.WriteString(badgeLockedStyle.Render(line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText("Esc: Back  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m BadgesModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user requested to quit entirely.
func (m BadgesModel) IsQuitting() bool {
	return m.quitting
}

// RunBadges runs the badge gallery screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunBadges(prog *progression.Store, width, height int) (goBack bool, err error) {
	model := NewBadgesModel(prog, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(BadgesModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
