package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/looper/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game and menu actions.
// The same bindings feed the help views, so controls shown on screen
// always match what the keys do.
type KeyMapper struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Rotate     key.Binding
	NewLevel   key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Back       key.Binding
	Quit       key.Binding
	Scoreboard key.Binding
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Up:         key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/h", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/l", "right")),
		Rotate:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "rotate")),
		NewLevel:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new level")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rescramble")),
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Scoreboard: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.Quit) {
		return core.ActionQuit, true
	}

	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{km.Up, core.ActionUp},
		{km.Down, core.ActionDown},
		{km.Left, core.ActionLeft},
		{km.Right, core.ActionRight},
		{km.Rotate, core.ActionRotate},
		{km.NewLevel, core.ActionNewLevel},
		{km.Restart, core.ActionRestart},
		{km.Pause, core.ActionPause},
		{km.Back, core.ActionBack},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action. Menus select with
// the rotate keys.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, km.Quit):
		return MenuActionQuit
	case key.Matches(msg, km.Up):
		return MenuActionUp
	case key.Matches(msg, km.Down):
		return MenuActionDown
	case key.Matches(msg, km.Rotate):
		return MenuActionSelect
	case key.Matches(msg, km.Back):
		return MenuActionBack
	case key.Matches(msg, km.Scoreboard):
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// menuKeys is the help.KeyMap of the mode picker.
type menuKeys struct{ km *KeyMapper }

func (k menuKeys) ShortHelp() []key.Binding {
	selectKey := key.NewBinding(key.WithKeys(k.km.Rotate.Keys()...), key.WithHelp("enter", "play"))
	return []key.Binding{k.km.Up, k.km.Down, selectKey, k.km.Scoreboard, k.km.Quit}
}

func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
