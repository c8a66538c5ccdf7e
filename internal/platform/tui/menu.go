package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/deadzone/internal/core"
	"github.com/vovakirdan/deadzone/internal/registry"
	"github.com/vovakirdan/deadzone/internal/storage"
)

// MenuItem represents a selectable map in the menu.
type MenuItem struct {
	GameID     string
	Title      string
	Characters []string
	BestRound  int
}

// MenuModel is the Bubble Tea model for the map picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	charCursor     int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a map
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if game, err := registry.Create(g.ID); err == nil {
			if lo, ok := game.(registry.Loadouts); ok {
				item.Characters = lo.Characters()
			}
		}
		if store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				item.BestRound = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if n := len(m.characters()); n > 0 {
			m.charCursor = (m.charCursor + n - 1) % n
		}

	case MenuActionRight:
		if n := len(m.characters()); n > 0 {
			m.charCursor = (m.charCursor + 1) % n
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

func (m MenuModel) characters() []string {
	if len(m.items) == 0 {
		return nil
	}
	return m.items[m.cursor].Characters
}

// Character returns the highlighted character, or "" when the map has none.
func (m MenuModel) Character() string {
	chars := m.characters()
	if len(chars) == 0 {
		return ""
	}
	return chars[m.charCursor%len(chars)]
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle.Render("  D E A D Z O N E  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a map", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = activeStyle
		}

		line := cursor + item.Title
		if item.BestRound > 0 {
			line += fmt.Sprintf("  (best: round %d)", item.BestRound)
		}
		b.WriteString(centerStyled(style.Render(line), m.width))
		b.WriteString("\n")
	}

	if chars := m.characters(); len(chars) > 0 {
		b.WriteString("\n")
		parts := make([]string, len(chars))
		for i, c := range chars {
			if i == m.charCursor%len(chars) {
				parts[i] = activeStyle.Render("[" + c + "]")
			} else {
				parts[i] = dimStyle.Render(" " + c + " ")
			}
		}
		b.WriteString(centerStyled("Character: "+strings.Join(parts, " "), m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Map  |  Left/Right: Character  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(dimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// centerStyled centers already styled text by its visible width.
func centerStyled(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Character       string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
		result.Character = m.Character()
	} else {
		result.Quit = true
	}

	return result, nil
}
