package core

// Command is one byte read from the device's character input source.
// The game understands a four-letter alphabet; every other byte still
// counts as "a button was pressed" on the title and result screens.
type Command byte

const (
	CommandNone  Command = 0
	CommandLeft  Command = 'A' // rotate heading counter-clockwise
	CommandRight Command = 'D' // rotate heading clockwise
	CommandUp    Command = 'W' // set heading to up
	CommandDown  Command = 'S' // set heading to down
	CommandAny   Command = ' ' // acknowledgement without a game meaning
)

// IsSteering reports whether the command changes the snake's heading.
func (c Command) IsSteering() bool {
	switch c {
	case CommandLeft, CommandRight, CommandUp, CommandDown:
		return true
	}
	return false
}

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandLeft:
		return "TurnLeft"
	case CommandRight:
		return "TurnRight"
	case CommandUp:
		return "TurnUp"
	case CommandDown:
		return "TurnDown"
	case CommandAny:
		return "Any"
	default:
		return "Unknown(" + string(rune(c)) + ")"
	}
}
