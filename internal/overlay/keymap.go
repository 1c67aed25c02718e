package overlay

import (
	"strings"
	"unicode/utf8"

	"gioui.org/io/key"

	"klava/internal/keystate"
)

// gioNameMap translates gio's symbolic key names to the identifiers the
// tracker uses (KeyboardEvent.key style).
var gioNameMap = map[key.Name]string{
	key.NameReturn:         "Enter",
	key.NameEscape:         "Escape",
	key.NameTab:            "Tab",
	key.NameSpace:          " ",
	key.NameDeleteBackward: "Backspace",
	key.NameDeleteForward:  "Delete",
	key.NameHome:           "Home",
	key.NameEnd:            "End",
	key.NamePageUp:         "PageUp",
	key.NamePageDown:       "PageDown",
	key.NameLeftArrow:      "ArrowLeft",
	key.NameRightArrow:     "ArrowRight",
	key.NameUpArrow:        "ArrowUp",
	key.NameDownArrow:      "ArrowDown",
	key.NameCtrl:           "Control",
	key.NameShift:          "Shift",
	key.NameAlt:            "Alt",
	key.NameSuper:          "Meta",
	key.NameCommand:        "Meta",
}

// translateKey converts a gio key name into a tracker key identifier and
// location. The window cannot tell left from right, so everything maps to
// the standard location except the numpad Enter.
func translateKey(name key.Name) (string, int, bool) {
	if id, ok := gioNameMap[name]; ok {
		return id, keystate.LocationStandard, true
	}
	if name == key.NameEnter {
		return "Enter", keystate.LocationNumpad, true
	}

	s := string(name)
	if utf8.RuneCountInString(s) == 1 {
		// Printable character key: gio reports letters in upper case,
		// the tracker follows KeyboardEvent.key and uses lower case.
		return strings.ToLower(s), keystate.LocationStandard, true
	}
	if keystate.IsNamedKey(s) {
		// Already a symbolic name ("F1", "CapsLock", ...)
		return s, keystate.LocationStandard, true
	}
	return "", 0, false
}
