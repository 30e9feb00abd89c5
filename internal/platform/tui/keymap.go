package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a logical input derived from a key press.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Nudge paddle left
	ActionRight        // Nudge paddle right
	ActionStart        // Start trigger (serve a new round)
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return ActionQuit, true
	case "a", "left", "h":
		return ActionLeft, false
	case "d", "right", "l":
		return ActionRight, false
	case " ", "enter":
		return ActionStart, false
	}

	return ActionNone, false
}
