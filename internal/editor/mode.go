package editor

// Mode identifies the active key-dispatch context.
type Mode uint8

const (
	// ModeNormal interprets keys as motions and operators.
	ModeNormal Mode = iota

	// ModeInsert inserts typed characters into the buffer.
	ModeInsert

	// ModeCommand routes keys to the command line widget.
	ModeCommand
)

// String returns the mode identifier (e.g. "normal").
func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "insert"
	case ModeCommand:
		return "command"
	default:
		return "normal"
	}
}

// DisplayName returns the status line form of the mode name.
func (m Mode) DisplayName() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "COMMAND"
	default:
		return "NORMAL"
	}
}
