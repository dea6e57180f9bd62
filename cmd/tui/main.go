package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sodikinson/valentine/internal/config"
	"github.com/sodikinson/valentine/internal/tui"
)

func main() {
	cfg := config.Load()

	p := tea.NewProgram(tui.New(cfg.ShareLinkEnabled), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
