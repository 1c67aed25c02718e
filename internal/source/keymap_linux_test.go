//go:build linux

package source

import (
	"testing"

	"github.com/holoplot/go-evdev"

	"klava/internal/keystate"
)

func TestLookupKey(t *testing.T) {
	tests := []struct {
		code     evdev.EvCode
		name     string
		location int
	}{
		{evdev.KEY_A, "a", keystate.LocationStandard},
		{evdev.KEY_1, "1", keystate.LocationStandard},
		{evdev.KEY_SPACE, " ", keystate.LocationStandard},
		{evdev.KEY_LEFTSHIFT, "Shift", keystate.LocationLeft},
		{evdev.KEY_RIGHTSHIFT, "Shift", keystate.LocationRight},
		{evdev.KEY_KPENTER, "Enter", keystate.LocationNumpad},
		{evdev.KEY_ENTER, "Enter", keystate.LocationStandard},
		{evdev.KEY_COMPOSE, "Dead", keystate.LocationStandard},
		{evdev.KEY_F1, "F1", keystate.LocationStandard},
	}

	for _, tt := range tests {
		name, location, ok := lookupKey(tt.code)
		if !ok {
			t.Errorf("lookupKey(%d): клавиша не найдена", tt.code)
			continue
		}
		if name != tt.name || location != tt.location {
			t.Errorf("lookupKey(%d) = (%q, %d), ожидалось (%q, %d)",
				tt.code, name, location, tt.name, tt.location)
		}
	}

	if _, _, ok := lookupKey(evdev.BTN_LEFT); ok {
		t.Error("кнопка мыши не должна отображаться в клавишу")
	}
}

// Символические имена в таблице обязаны распознаваться как named key,
// а одиночные символы - нет: от этого зависит нормализация модификаторов.
func TestKeyMapNaming(t *testing.T) {
	for code, k := range keyMap {
		if len(k.name) > 1 && !keystate.IsNamedKey(k.name) {
			t.Errorf("код %d: многосимвольное имя %q не распознаётся как символическое", code, k.name)
		}
		if len(k.name) == 1 && keystate.IsNamedKey(k.name) {
			t.Errorf("код %d: одиночный символ %q распознаётся как символическое имя", code, k.name)
		}
	}
}
