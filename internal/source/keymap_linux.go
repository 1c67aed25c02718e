//go:build linux

package source

import (
	"github.com/holoplot/go-evdev"

	"klava/internal/keystate"
)

// mappedKey - идентификатор клавиши и её позиция в терминах keystate.
type mappedKey struct {
	name     string
	location int
}

// lookupKey переводит evdev-код в идентификатор клавиши и позицию.
// Идентификаторы совпадают со значениями KeyboardEvent.key: одиночный
// печатный символ для обычных клавиш, символическое имя для остальных.
func lookupKey(code evdev.EvCode) (string, int, bool) {
	k, ok := keyMap[code]
	if !ok {
		return "", 0, false
	}
	return k.name, k.location, true
}

var keyMap = map[evdev.EvCode]mappedKey{
	// Буквы. Раскладку не учитываем: трекеру важна физическая клавиша.
	evdev.KEY_A: {"a", keystate.LocationStandard},
	evdev.KEY_B: {"b", keystate.LocationStandard},
	evdev.KEY_C: {"c", keystate.LocationStandard},
	evdev.KEY_D: {"d", keystate.LocationStandard},
	evdev.KEY_E: {"e", keystate.LocationStandard},
	evdev.KEY_F: {"f", keystate.LocationStandard},
	evdev.KEY_G: {"g", keystate.LocationStandard},
	evdev.KEY_H: {"h", keystate.LocationStandard},
	evdev.KEY_I: {"i", keystate.LocationStandard},
	evdev.KEY_J: {"j", keystate.LocationStandard},
	evdev.KEY_K: {"k", keystate.LocationStandard},
	evdev.KEY_L: {"l", keystate.LocationStandard},
	evdev.KEY_M: {"m", keystate.LocationStandard},
	evdev.KEY_N: {"n", keystate.LocationStandard},
	evdev.KEY_O: {"o", keystate.LocationStandard},
	evdev.KEY_P: {"p", keystate.LocationStandard},
	evdev.KEY_Q: {"q", keystate.LocationStandard},
	evdev.KEY_R: {"r", keystate.LocationStandard},
	evdev.KEY_S: {"s", keystate.LocationStandard},
	evdev.KEY_T: {"t", keystate.LocationStandard},
	evdev.KEY_U: {"u", keystate.LocationStandard},
	evdev.KEY_V: {"v", keystate.LocationStandard},
	evdev.KEY_W: {"w", keystate.LocationStandard},
	evdev.KEY_X: {"x", keystate.LocationStandard},
	evdev.KEY_Y: {"y", keystate.LocationStandard},
	evdev.KEY_Z: {"z", keystate.LocationStandard},

	// Цифровой ряд.
	evdev.KEY_1: {"1", keystate.LocationStandard},
	evdev.KEY_2: {"2", keystate.LocationStandard},
	evdev.KEY_3: {"3", keystate.LocationStandard},
	evdev.KEY_4: {"4", keystate.LocationStandard},
	evdev.KEY_5: {"5", keystate.LocationStandard},
	evdev.KEY_6: {"6", keystate.LocationStandard},
	evdev.KEY_7: {"7", keystate.LocationStandard},
	evdev.KEY_8: {"8", keystate.LocationStandard},
	evdev.KEY_9: {"9", keystate.LocationStandard},
	evdev.KEY_0: {"0", keystate.LocationStandard},

	// Пунктуация основного блока.
	evdev.KEY_MINUS:      {"-", keystate.LocationStandard},
	evdev.KEY_EQUAL:      {"=", keystate.LocationStandard},
	evdev.KEY_LEFTBRACE:  {"[", keystate.LocationStandard},
	evdev.KEY_RIGHTBRACE: {"]", keystate.LocationStandard},
	evdev.KEY_SEMICOLON:  {";", keystate.LocationStandard},
	evdev.KEY_APOSTROPHE: {"'", keystate.LocationStandard},
	evdev.KEY_GRAVE:      {"`", keystate.LocationStandard},
	evdev.KEY_BACKSLASH:  {"\\", keystate.LocationStandard},
	evdev.KEY_COMMA:      {",", keystate.LocationStandard},
	evdev.KEY_DOT:        {".", keystate.LocationStandard},
	evdev.KEY_SLASH:      {"/", keystate.LocationStandard},
	evdev.KEY_SPACE:      {" ", keystate.LocationStandard},

	// Модификаторы: левая и правая позиции.
	evdev.KEY_LEFTSHIFT:  {"Shift", keystate.LocationLeft},
	evdev.KEY_RIGHTSHIFT: {"Shift", keystate.LocationRight},
	evdev.KEY_LEFTCTRL:   {"Control", keystate.LocationLeft},
	evdev.KEY_RIGHTCTRL:  {"Control", keystate.LocationRight},
	evdev.KEY_LEFTALT:    {"Alt", keystate.LocationLeft},
	evdev.KEY_RIGHTALT:   {"AltGraph", keystate.LocationRight},
	evdev.KEY_LEFTMETA:   {"Meta", keystate.LocationLeft},
	evdev.KEY_RIGHTMETA:  {"Meta", keystate.LocationRight},

	// Символические клавиши.
	evdev.KEY_ENTER:      {"Enter", keystate.LocationStandard},
	evdev.KEY_TAB:        {"Tab", keystate.LocationStandard},
	evdev.KEY_BACKSPACE:  {"Backspace", keystate.LocationStandard},
	evdev.KEY_ESC:        {"Escape", keystate.LocationStandard},
	evdev.KEY_CAPSLOCK:   {"CapsLock", keystate.LocationStandard},
	evdev.KEY_NUMLOCK:    {"NumLock", keystate.LocationStandard},
	evdev.KEY_SCROLLLOCK: {"ScrollLock", keystate.LocationStandard},
	evdev.KEY_INSERT:     {"Insert", keystate.LocationStandard},
	evdev.KEY_DELETE:     {"Delete", keystate.LocationStandard},
	evdev.KEY_HOME:       {"Home", keystate.LocationStandard},
	evdev.KEY_END:        {"End", keystate.LocationStandard},
	evdev.KEY_PAGEUP:     {"PageUp", keystate.LocationStandard},
	evdev.KEY_PAGEDOWN:   {"PageDown", keystate.LocationStandard},
	evdev.KEY_UP:         {"ArrowUp", keystate.LocationStandard},
	evdev.KEY_DOWN:       {"ArrowDown", keystate.LocationStandard},
	evdev.KEY_LEFT:       {"ArrowLeft", keystate.LocationStandard},
	evdev.KEY_RIGHT:      {"ArrowRight", keystate.LocationStandard},
	evdev.KEY_PRINT:      {"PrintScreen", keystate.LocationStandard},
	evdev.KEY_PAUSE:      {"Pause", keystate.LocationStandard},
	evdev.KEY_MENU:       {"ContextMenu", keystate.LocationStandard},

	// Compose не даёт печатного символа - keystate её не отслеживает.
	evdev.KEY_COMPOSE: {keystate.KeyDead, keystate.LocationStandard},

	evdev.KEY_F1:  {"F1", keystate.LocationStandard},
	evdev.KEY_F2:  {"F2", keystate.LocationStandard},
	evdev.KEY_F3:  {"F3", keystate.LocationStandard},
	evdev.KEY_F4:  {"F4", keystate.LocationStandard},
	evdev.KEY_F5:  {"F5", keystate.LocationStandard},
	evdev.KEY_F6:  {"F6", keystate.LocationStandard},
	evdev.KEY_F7:  {"F7", keystate.LocationStandard},
	evdev.KEY_F8:  {"F8", keystate.LocationStandard},
	evdev.KEY_F9:  {"F9", keystate.LocationStandard},
	evdev.KEY_F10: {"F10", keystate.LocationStandard},
	evdev.KEY_F11: {"F11", keystate.LocationStandard},
	evdev.KEY_F12: {"F12", keystate.LocationStandard},

	// Цифровой блок.
	evdev.KEY_KP0:        {"0", keystate.LocationNumpad},
	evdev.KEY_KP1:        {"1", keystate.LocationNumpad},
	evdev.KEY_KP2:        {"2", keystate.LocationNumpad},
	evdev.KEY_KP3:        {"3", keystate.LocationNumpad},
	evdev.KEY_KP4:        {"4", keystate.LocationNumpad},
	evdev.KEY_KP5:        {"5", keystate.LocationNumpad},
	evdev.KEY_KP6:        {"6", keystate.LocationNumpad},
	evdev.KEY_KP7:        {"7", keystate.LocationNumpad},
	evdev.KEY_KP8:        {"8", keystate.LocationNumpad},
	evdev.KEY_KP9:        {"9", keystate.LocationNumpad},
	evdev.KEY_KPENTER:    {"Enter", keystate.LocationNumpad},
	evdev.KEY_KPPLUS:     {"+", keystate.LocationNumpad},
	evdev.KEY_KPMINUS:    {"-", keystate.LocationNumpad},
	evdev.KEY_KPASTERISK: {"*", keystate.LocationNumpad},
	evdev.KEY_KPSLASH:    {"/", keystate.LocationNumpad},
	evdev.KEY_KPDOT:      {".", keystate.LocationNumpad},
}
