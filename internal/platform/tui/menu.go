package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadekit/arkanoid/internal/config"
	"github.com/arcadekit/arkanoid/internal/core"
	"github.com/arcadekit/arkanoid/internal/registry"
)

// MenuResult is what the menu returns to the caller.
type MenuResult struct {
	GameID     string // Selected mode, empty if the user backed out
	Difficulty string // Selected difficulty preset
	Config     core.RuntimeConfig
	Quit       bool
}

// MenuKeyMap defines the key bindings for the menu screen.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Select, k.Quit},
	}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Menu styles.
var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			MarginBottom(1)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("14"))

	menuPaneLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				MarginTop(1)
)

// MenuModel is the Bubble Tea model for the mode picker: a mode list,
// a difficulty table, and a help footer.
type MenuModel struct {
	items      []registry.GameInfo
	cursor     int
	difficulty table.Model
	onTable    bool // Whether focus is on the difficulty table

	keys   MenuKeyMap
	help   help.Model
	config core.RuntimeConfig

	result MenuResult
	done   bool
}

// difficultyRows derives the table rows by applying each preset to the
// baseline config, so the table always shows what the preset will do.
func difficultyRows() []table.Row {
	presets := []config.DifficultyPreset{
		config.DifficultyEasy,
		config.DifficultyNormal,
		config.DifficultyHard,
		config.DifficultyFixed,
	}
	rows := make([]table.Row, 0, len(presets))
	for _, p := range presets {
		cfg := config.DefaultArkanoidConfig()
		config.ApplyArkanoidPreset(&cfg, p)
		rows = append(rows, table.Row{
			string(p),
			fmt.Sprintf("%d", cfg.Gameplay.Lives),
			fmt.Sprintf("%.0f", cfg.Ball.Speed),
			fmt.Sprintf("%.0f", cfg.Paddle.Width),
		})
	}
	return rows
}

// NewMenuModel creates the mode picker.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	columns := []table.Column{
		{Title: "Difficulty", Width: 12},
		{Title: "Lives", Width: 6},
		{Title: "Ball", Width: 6},
		{Title: "Paddle", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(difficultyRows()),
		table.WithHeight(6),
	)
	t.SetCursor(1) // normal

	h := help.New()
	h.ShowAll = false

	return MenuModel{
		items:      registry.List(),
		difficulty: t,
		keys:       DefaultMenuKeyMap(),
		help:       h,
		config:     cfg,
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles menu input.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.result = MenuResult{Quit: true, Config: m.config}
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			m.onTable = !m.onTable
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if len(m.items) == 0 {
				return m, nil
			}
			m.result = MenuResult{
				GameID:     m.items[m.cursor].ID,
				Difficulty: m.selectedDifficulty(),
				Config:     m.config,
			}
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			if m.onTable {
				var cmd tea.Cmd
				m.difficulty, cmd = m.difficulty.Update(msg)
				return m, cmd
			}
			if key.Matches(msg, m.keys.Up) && m.cursor > 0 {
				m.cursor--
			}
			if key.Matches(msg, m.keys.Down) && m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	return m, nil
}

// selectedDifficulty returns the preset name under the table cursor.
func (m MenuModel) selectedDifficulty() string {
	row := m.difficulty.SelectedRow()
	if len(row) == 0 {
		return ""
	}
	return row[0]
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(menuTitleStyle.Render("ARKANOID"))
	sb.WriteString("\n")

	sb.WriteString(menuPaneLabelStyle.Render("Mode"))
	sb.WriteString("\n")
	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor && !m.onTable {
			line = menuSelectedStyle.Render("> " + item.Title)
		} else if i == m.cursor {
			line = menuItemStyle.Render("> " + item.Title)
		} else {
			line = menuItemStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString(menuPaneLabelStyle.Render("Difficulty"))
	sb.WriteString("\n")
	sb.WriteString(m.difficulty.View())
	sb.WriteString("\n\n")

	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// RunMenu shows the mode picker and returns the user's selection.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return MenuResult{Quit: true, Config: cfg}, err
	}

	model, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Quit: true, Config: cfg}, fmt.Errorf("menu returned unexpected model type %T", final)
	}
	return model.result, nil
}
