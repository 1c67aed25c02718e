package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	c := NewAt(filepath.Join(t.TempDir(), "config.json"))

	if !c.NotificationsEnabled() {
		t.Error("уведомления по умолчанию должны быть включены")
	}
	if !c.OverlayOnStart() {
		t.Error("оверлей по умолчанию показывается при запуске")
	}
	if c.UILanguage() != "ru" {
		t.Errorf("UILanguage() = %q, ожидалось ru", c.UILanguage())
	}
	if c.Hotkey().Key != KeyK {
		t.Errorf("клавиша по умолчанию = %q, ожидалось %q", c.Hotkey().Key, KeyK)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	c := NewAt(path)
	c.SetNotifications(false)
	c.SetDevicePath("/dev/input/event3")
	c.SetOverlayOnStart(false)
	c.SetUILanguage("en")
	c.SetHotkey(HotkeyConfig{
		Modifiers: []Modifier{ModAlt},
		Key:       KeySpace,
	})

	// Перечитываем с диска.
	c2 := NewAt(path)
	if c2.NotificationsEnabled() {
		t.Error("notifications не сохранились")
	}
	if c2.DevicePath() != "/dev/input/event3" {
		t.Errorf("DevicePath() = %q", c2.DevicePath())
	}
	if c2.OverlayOnStart() {
		t.Error("overlay_on_start не сохранился")
	}
	if c2.UILanguage() != "en" {
		t.Errorf("UILanguage() = %q", c2.UILanguage())
	}
	if got := c2.Hotkey().String(); got != "alt+space" {
		t.Errorf("Hotkey() = %q, ожидалось alt+space", got)
	}
}

func TestLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{не json"), 0644); err != nil {
		t.Fatal(err)
	}

	// Битый файл - работаем с настройками по умолчанию.
	c := NewAt(path)
	if !c.NotificationsEnabled() {
		t.Error("битый конфиг должен давать настройки по умолчанию")
	}
}

func TestOnHotkeyChange(t *testing.T) {
	c := NewAt(filepath.Join(t.TempDir(), "config.json"))

	var got HotkeyConfig
	c.OnHotkeyChange(func(hk HotkeyConfig) { got = hk })

	hk := HotkeyConfig{Modifiers: []Modifier{ModCtrl}, Key: KeyF1}
	c.SetHotkey(hk)
	if got.String() != "ctrl+f1" {
		t.Errorf("callback получил %q, ожидалось ctrl+f1", got.String())
	}
}

func TestHotkeyString(t *testing.T) {
	tests := []struct {
		hk   HotkeyConfig
		want string
	}{
		{HotkeyConfig{Modifiers: []Modifier{ModCtrl, ModShift}, Key: KeyK}, "ctrl+shift+k"},
		{HotkeyConfig{Modifiers: nil, Key: KeySpace}, "space"},
	}
	for _, tt := range tests {
		if got := tt.hk.String(); got != tt.want {
			t.Errorf("String() = %q, ожидалось %q", got, tt.want)
		}
	}
}
