package core

import "math/bits"

// Action is a player intent, independent of the key or button behind it.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRestart
	ActionPause
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:    "none",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionRestart: "restart",
	ActionPause:   "pause",
	ActionQuit:    "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// InputFrame is the set of actions triggered since the previous frame.
// The zero value is an empty frame.
type InputFrame struct {
	set uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered. ActionNone is never recorded.
func (f *InputFrame) Set(a Action) {
	if a != ActionNone {
		f.set |= 1 << a
	}
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return f.set&(1<<a) != 0
}

// Len is the number of distinct actions in the frame.
func (f InputFrame) Len() int {
	return bits.OnesCount16(f.set)
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.set = 0
}
