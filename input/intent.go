package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit   // Esc, Ctrl+C, q; any key or button in saver mode
	IntentResize // Terminal resize event
	IntentReload // r, Ctrl+R: re-read settings and rebuild surfaces
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	case IntentReload:
		return "reload"
	default:
		return "none"
	}
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies, regions re-read the screen size on resize
type Intent struct {
	Type IntentType
}
