// Package i18n provides internationalization support.
package i18n

import "sync"

// Language represents a UI language.
type Language string

const (
	RU Language = "ru"
	EN Language = "en"
)

var (
	mu      sync.RWMutex
	current = RU // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	RU: {
		// App
		"app_name":    "Klava",
		"app_tooltip": "Klava - зажатые клавиши",

		// Tray menu
		"tray_idle":               "Клавиши не зажаты",
		"tray_keys":               "Зажато клавиш: ",
		"tray_overlay":            "Оверлей",
		"tray_overlay_hint":       "Показать/скрыть окно с клавишами",
		"tray_notifications":      "Уведомления",
		"tray_notifications_hint": "Показывать уведомления",
		"tray_hotkey":             "Горячая клавиша...",
		"tray_hotkey_hint":        "Комбинация для показа оверлея",
		"tray_quit":               "Выход",
		"tray_quit_hint":          "Закрыть приложение",

		// Notifications
		"notify_tracking_global": "Отслеживаю клавиатуру",
		"notify_tracking_window": "Глобальный перехват недоступен, отслеживаю только окно оверлея",
		"notify_stopped":         "Отслеживание остановлено",
		"notify_error":           "Ошибка",

		// Overlay window
		"overlay_title": "Klava",
		"overlay_empty": "Нажмите любую клавишу...",
		"overlay_hint":  "Esc - скрыть окно",

		// Errors
		"error_hotkey_register": "Не удалось зарегистрировать горячую клавишу",
		"error_source":          "Не удалось открыть устройство ввода",
		"error_source_hint":     "Проверьте права доступа к /dev/input (группа input)",
	},

	EN: {
		// App
		"app_name":    "Klava",
		"app_tooltip": "Klava - held keys",

		// Tray menu
		"tray_idle":               "No keys held",
		"tray_keys":               "Keys held: ",
		"tray_overlay":            "Overlay",
		"tray_overlay_hint":       "Show/hide the key window",
		"tray_notifications":      "Notifications",
		"tray_notifications_hint": "Show notifications",
		"tray_hotkey":             "Hotkey...",
		"tray_hotkey_hint":        "Combination to show the overlay",
		"tray_quit":               "Quit",
		"tray_quit_hint":          "Close the application",

		// Notifications
		"notify_tracking_global": "Tracking the keyboard",
		"notify_tracking_window": "Global capture unavailable, tracking the overlay window only",
		"notify_stopped":         "Tracking stopped",
		"notify_error":           "Error",

		// Overlay window
		"overlay_title": "Klava",
		"overlay_empty": "Press any key...",
		"overlay_hint":  "Esc - hide window",

		// Errors
		"error_hotkey_register": "Failed to register the hotkey",
		"error_source":          "Failed to open the input device",
		"error_source_hint":     "Check read access to /dev/input (input group)",
	},
}

// T returns the translation for the given key.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if strings, ok := translations[current]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	// Fallback to key itself
	return key
}

// SetLanguage sets the current UI language.
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	current = lang
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// AvailableLanguages returns list of supported languages.
func AvailableLanguages() []Language {
	return []Language{RU, EN}
}

// LanguageName returns display name for a language.
func LanguageName(lang Language) string {
	switch lang {
	case RU:
		return "Русский"
	case EN:
		return "English"
	default:
		return string(lang)
	}
}
