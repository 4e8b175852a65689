package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/looper/internal/core"
	"github.com/vovakirdan/looper/internal/games/looper/levels"
)

// PackEntry is one level shown in the picker.
type PackEntry struct {
	Name   string
	Width  int
	Height int
}

// PackSelection holds the user's selection from the level picker.
type PackSelection struct {
	Level int // 0 = start from beginning, 1-N = specific level
}

// PackMenuModel is the level picker for the Looper level pack.
type PackMenuModel struct {
	cursor       int // 0 is "Start from Beginning", i is entries[i-1]
	width        int
	height       int
	keyMapper    *KeyMapper
	entries      []PackEntry
	selection    PackSelection
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int
	theme        Theme
}

// PackEntries describes pack levels for the picker.
func PackEntries(pack []levels.Level) []PackEntry {
	entries := make([]PackEntry, len(pack))
	for i, lvl := range pack {
		name := lvl.Name
		if name == "" {
			name = lvl.ID
		}
		entries[i] = PackEntry{Name: name, Width: lvl.Grid.Width, Height: lvl.Grid.Height}
	}
	return entries
}

// NewPackMenuModel creates a new level selection model.
func NewPackMenuModel(entries []PackEntry, width, height int) PackMenuModel {
	return PackMenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		entries:   entries,
		choosing:  true,
		theme:     GetTheme(),
	}
}

// Init initializes the model.
func (m PackMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PackMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m PackMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.entries) {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = PackSelection{Level: m.cursor}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// visibleItems is the number of list rows that fit below the header.
func (m PackMenuModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *PackMenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level selection.
func (m PackMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("L E V E L   P A C K"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a level:"), m.width))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("No levels found"), m.width))
		b.WriteString("\n")
	}

	// Row 0 is "Start from Beginning", rows 1..N are levels.
	end := min(m.scrollOffset+m.visibleItems(), len(m.entries)+1)
	for row := m.scrollOffset; row < end; row++ {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if row == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		label := "Start from Beginning"
		if row > 0 {
			e := m.entries[row-1]
			label = fmt.Sprintf("%2d. %-16s %dx%d", row, e.Name, e.Width, e.Height)
		}
		b.WriteString(centerText(style.Render(cursor+label), m.width))
		b.WriteString("\n")
	}

	// Scroll indicators
	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if end < len(m.entries)+1 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.HUDControls.Render("Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m PackMenuModel) Selected() *PackSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m PackMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m PackMenuModel) WantsBack() bool {
	return m.back
}

// RunPackLevelSelector runs the level selection and returns the selection,
// nil when the user backed out or quit.
func RunPackLevelSelector(entries []PackEntry, cfg core.RuntimeConfig) (*PackSelection, error) {
	model := NewPackMenuModel(entries, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(PackMenuModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
