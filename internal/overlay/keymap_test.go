package overlay

import (
	"testing"

	"gioui.org/io/key"

	"klava/internal/keystate"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name     key.Name
		id       string
		location int
	}{
		{"A", "a", keystate.LocationStandard},
		{"Z", "z", keystate.LocationStandard},
		{"1", "1", keystate.LocationStandard},
		{key.NameSpace, " ", keystate.LocationStandard},
		{key.NameShift, "Shift", keystate.LocationStandard},
		{key.NameCtrl, "Control", keystate.LocationStandard},
		{key.NameReturn, "Enter", keystate.LocationStandard},
		{key.NameEnter, "Enter", keystate.LocationNumpad},
		{key.NameLeftArrow, "ArrowLeft", keystate.LocationStandard},
		{"F5", "F5", keystate.LocationStandard},
	}

	for _, tt := range tests {
		id, location, ok := translateKey(tt.name)
		if !ok {
			t.Errorf("translateKey(%q): клавиша не распознана", tt.name)
			continue
		}
		if id != tt.id || location != tt.location {
			t.Errorf("translateKey(%q) = (%q, %d), ожидалось (%q, %d)",
				tt.name, id, location, tt.id, tt.location)
		}
	}
}

// Идентификаторы из таблицы должны быть либо одиночными символами, либо
// символическими именами - иначе нормализация в keystate их не различит.
func TestGioNameMapNaming(t *testing.T) {
	for name, id := range gioNameMap {
		if len(id) > 1 && !keystate.IsNamedKey(id) {
			t.Errorf("%q: идентификатор %q не распознаётся как символическое имя", name, id)
		}
	}
}
