package navigation

import "strings"

// Action is what a key press asks a cursor or deck to do
type Action string

const (
	ActionNone        Action = ""
	ActionNext        Action = "next"
	ActionPrev        Action = "prev"
	ActionToggleNotes Action = "toggleNotes"
)

// Keymap binds KeyboardEvent.key values to actions
type Keymap map[string]Action

var ProjectKeys = Keymap{
	"ArrowDown": ActionNext,
	"ArrowUp":   ActionPrev,
}

var DeckKeys = Keymap{
	"ArrowDown":  ActionNext,
	"ArrowRight": ActionNext,
	" ":          ActionNext,
	"ArrowUp":    ActionPrev,
	"ArrowLeft":  ActionPrev,
	"n":          ActionToggleNotes,
}

// Lookup returns the action bound to key. Single letters match either case.
func (k Keymap) Lookup(key string) Action {
	if a, ok := k[key]; ok {
		return a
	}
	if len(key) == 1 {
		if a, ok := k[strings.ToLower(key)]; ok {
			return a
		}
	}
	return ActionNone
}
