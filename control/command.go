// Package control defines lightweight command messages used by the UI to
// request changes from the loop that owns the timer registry, and the loop
// itself. The loop centralizes state changes so that ticks and user actions
// never run at the same time.
package control

import (
	"CoCTimers/timer"

	"github.com/google/uuid"
)

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdAdd CommandType = iota
	CmdRemove
	CmdClear
	CmdSetMultiplier
)

func (t CommandType) String() string {
	switch t {
	case CmdAdd:
		return "add"
	case CmdRemove:
		return "remove"
	case CmdClear:
		return "clear"
	case CmdSetMultiplier:
		return "set-multiplier"
	}
	return "unknown"
}

// Command is the message sent from the UI to the Loop. The optional Reply
// channel is signalled once the command has been applied.
type Command struct {
	Type     CommandType
	Input    string         // CmdAdd
	Category timer.Category // CmdAdd, CmdSetMultiplier
	ID       uuid.UUID      // CmdRemove
	Enabled  bool           // CmdSetMultiplier
	Reply    chan error     // optional reply channel
}

// Add requests a new timer parsed from input.
func Add(input string, c timer.Category) Command {
	return Command{Type: CmdAdd, Input: input, Category: c}
}

// Remove requests removal of the timer with the given id.
func Remove(id uuid.UUID) Command {
	return Command{Type: CmdRemove, ID: id}
}

// Clear requests removal of every timer.
func Clear() Command {
	return Command{Type: CmdClear}
}

// SetMultiplier toggles the potion for a category.
func SetMultiplier(c timer.Category, enabled bool) Command {
	return Command{Type: CmdSetMultiplier, Category: c, Enabled: enabled}
}
