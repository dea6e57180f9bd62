// Package tui renders the proposal in a terminal with Bubble Tea, driven by
// the same click state as the web pages.
package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sodikinson/valentine/internal/deeplink"
	"github.com/sodikinson/valentine/internal/images"
	"github.com/sodikinson/valentine/internal/proposal"
	"github.com/sodikinson/valentine/internal/web/pages"
)

type button int

const (
	yesButton button = iota
	noButton
)

// defaultMaxPadding bounds the Yes button's drawn padding when the terminal
// width is not yet known. The font size itself is never clamped.
const defaultMaxPadding = 40

var styles = struct {
	Title   lipgloss.Style
	Yes     lipgloss.Style
	No      lipgloss.Style
	Focused lipgloss.Style
	Muted   lipgloss.Style
	Link    lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
	Yes:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("28")),
	No:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("160")).Padding(0, 1),
	Focused: lipgloss.NewStyle().Underline(true),
	Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Link:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
}

// Model is the Bubble Tea model for the proposal.
type Model struct {
	home      proposal.Home
	focus     button
	accepted  bool
	shareLink bool
	width     int
}

// New returns a fresh proposal. shareLink shows the WhatsApp link once
// accepted.
func New(shareLink bool) Model {
	return Model{shareLink: shareLink}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.accepted {
			switch msg.String() {
			case "q", "ctrl+c", "esc", "enter":
				return m, tea.Quit
			}
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "right", "tab", "shift+tab", "h", "l":
			m.focus = 1 - m.focus
		case "enter", " ":
			m.press(m.focus)
		case "y":
			m.press(yesButton)
		case "n":
			m.press(noButton)
		}
	}
	return m, nil
}

func (m *Model) press(b button) {
	switch b {
	case yesButton:
		m.home.YesClick()
		m.accepted = true
	case noButton:
		m.home.NoClick()
	}
}

// Accepted reports whether Yes has been pressed.
func (m Model) Accepted() bool {
	return m.accepted
}

// Clicks is the number of No presses so far.
func (m Model) Clicks() int {
	return m.home.Clicks()
}

func (m Model) View() string {
	if m.accepted {
		return m.acceptedView()
	}

	yes := styles.Yes.Padding(0, m.yesPadding()).Render(pages.YesLabel)
	no := styles.No.Render(m.home.Label())
	if m.focus == yesButton {
		yes = styles.Focused.Render(yes)
	} else {
		no = styles.Focused.Render(no)
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(pages.HomeTitle))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, yes, "   ", no))
	b.WriteString("\n\n")
	b.WriteString(styles.Muted.Render(fmt.Sprintf("Yes font size: %s", m.home.FontSizeCSS())))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(fmt.Sprintf("[%s]", images.CuteCat.Alt)))
	b.WriteString("\n\n")
	b.WriteString(styles.Muted.Render("←/→ move • enter press • y/n answer • q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) acceptedView() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render(pages.AcceptedTitle))
	b.WriteString("\n\n")
	b.WriteString(styles.Muted.Render(fmt.Sprintf("[%s]", images.HuggingCharacters.Alt)))
	b.WriteString("\n")
	if m.shareLink {
		b.WriteString("\n")
		b.WriteString(deeplink.Label + " " + styles.Link.Render(deeplink.Default()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("q quit"))
	b.WriteString("\n")
	return b.String()
}

// yesPadding maps the Yes font size onto horizontal padding, limited to what
// fits on screen.
func (m Model) yesPadding() int {
	limit := defaultMaxPadding
	if m.width > 0 {
		limit = max(1, (m.width-20)/2)
	}
	size := m.home.FontSize()
	if math.IsInf(size, 1) || size > float64(limit) {
		return limit
	}
	return int(math.Round(size))
}
