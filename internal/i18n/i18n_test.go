package i18n

import "testing"

// Каждый ключ должен существовать во всех языках, иначе при переключении
// языка в интерфейсе появятся сырые ключи.
func TestTranslationsComplete(t *testing.T) {
	for _, lang := range AvailableLanguages() {
		for key := range translations[RU] {
			if _, ok := translations[lang][key]; !ok {
				t.Errorf("язык %s: нет перевода для %q", lang, key)
			}
		}
		if len(translations[lang]) != len(translations[RU]) {
			t.Errorf("язык %s: %d ключей, в RU %d", lang, len(translations[lang]), len(translations[RU]))
		}
	}
}

func TestT(t *testing.T) {
	defer SetLanguage(RU)

	SetLanguage(EN)
	if got := T("tray_quit"); got != "Quit" {
		t.Errorf(`T("tray_quit") = %q, ожидалось Quit`, got)
	}
	// Неизвестный ключ возвращается как есть.
	if got := T("no_such_key"); got != "no_such_key" {
		t.Errorf("T(no_such_key) = %q", got)
	}
}
