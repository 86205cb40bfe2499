package input

import (
	"github.com/gdamore/tcell/v2"
)

// Profile selects how raw input maps to intents
type Profile uint8

const (
	// ProfileInteractive quits only on explicit keys and allows reload
	ProfileInteractive Profile = iota
	// ProfileSaver quits on any key press, mouse button or wheel
	ProfileSaver
)

// Translate maps one tcell event to an intent, IntentNone for ignored events
func Translate(ev tcell.Event, p Profile) Intent {
	switch e := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}

	case *tcell.EventKey:
		if p == ProfileSaver {
			return Intent{Type: IntentQuit}
		}
		switch e.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return Intent{Type: IntentQuit}
		case tcell.KeyCtrlR:
			return Intent{Type: IntentReload}
		case tcell.KeyRune:
			switch e.Rune() {
			case 'q', 'Q':
				return Intent{Type: IntentQuit}
			case 'r', 'R':
				return Intent{Type: IntentReload}
			}
		}

	case *tcell.EventMouse:
		if p == ProfileSaver && e.Buttons() != tcell.ButtonNone {
			return Intent{Type: IntentQuit}
		}
	}

	return Intent{Type: IntentNone}
}
