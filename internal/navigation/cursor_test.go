package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorStaysInRange(t *testing.T) {
	c := NewCursor(3)

	assert.False(t, c.Prev())
	assert.Equal(t, 0, c.Index())

	assert.True(t, c.Next())
	assert.True(t, c.Next())
	assert.False(t, c.Next())
	assert.Equal(t, 2, c.Index())
	assert.True(t, c.IsLast())
}

func TestCursorKeySequences(t *testing.T) {
	tests := []struct {
		name   string
		length int
		keys   []string
		want   int
	}{
		{"down once", 9, []string{"ArrowDown"}, 1},
		{"up at start", 9, []string{"ArrowUp", "ArrowUp"}, 0},
		{"down past end", 3, []string{"ArrowDown", "ArrowDown", "ArrowDown", "ArrowDown"}, 2},
		{"down then up", 9, []string{"ArrowDown", "ArrowDown", "ArrowUp"}, 1},
		{"unbound key", 9, []string{"ArrowRight", "Enter"}, 0},
		{"single section", 1, []string{"ArrowDown", "ArrowUp", "ArrowDown"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.length)
			for _, k := range tt.keys {
				c.Apply(ProjectKeys.Lookup(k))
				assert.GreaterOrEqual(t, c.Index(), 0)
				assert.Less(t, c.Index(), c.Len())
			}
			assert.Equal(t, tt.want, c.Index())
		})
	}
}

func TestCursorJump(t *testing.T) {
	c := NewCursor(11)

	assert.True(t, c.Jump(7))
	assert.Equal(t, 7, c.Index())

	assert.False(t, c.Jump(11))
	assert.False(t, c.Jump(-1))
	assert.Equal(t, 7, c.Index())
}

func TestNewCursorMinimumLength(t *testing.T) {
	c := NewCursor(0)
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.IsFirst())
	assert.True(t, c.IsLast())
}

func TestKeymapLookup(t *testing.T) {
	tests := []struct {
		keys Keymap
		key  string
		want Action
	}{
		{ProjectKeys, "ArrowDown", ActionNext},
		{ProjectKeys, "ArrowUp", ActionPrev},
		{ProjectKeys, "ArrowRight", ActionNone},
		{DeckKeys, "ArrowRight", ActionNext},
		{DeckKeys, " ", ActionNext},
		{DeckKeys, "ArrowLeft", ActionPrev},
		{DeckKeys, "n", ActionToggleNotes},
		{DeckKeys, "N", ActionToggleNotes},
		{DeckKeys, "m", ActionNone},
		{DeckKeys, "", ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.keys.Lookup(tt.key))
		})
	}
}
