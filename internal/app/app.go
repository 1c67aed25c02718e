// Package app содержит основную логику приложения.
package app

import (
	"errors"
	"log"
	"sync"

	"klava/internal/config"
	"klava/internal/dialog"
	"klava/internal/hotkey"
	"klava/internal/i18n"
	"klava/internal/keystate"
	"klava/internal/notify"
	"klava/internal/overlay"
	"klava/internal/source"
	"klava/internal/tray"
)

// App представляет главное приложение.
type App struct {
	mu         sync.Mutex
	config     *config.Config
	tracker    *keystate.Tracker
	notifier   *notify.Notifier
	tray       *tray.Tray
	hotkey     *hotkey.Handler
	overlayWin *overlay.Window
	global     bool // true если события читаются из evdev, а не из окна
	closed     bool
}

// New создаёт новое приложение.
func New() (*App, error) {
	cfg := config.New()

	// Инициализируем язык интерфейса из конфига
	if uiLang := cfg.UILanguage(); uiLang != "" {
		i18n.SetLanguage(i18n.Language(uiLang))
	}

	notifier := notify.New(cfg.NotificationsEnabled())
	tracker := keystate.New()

	app := &App{
		config:   cfg,
		tracker:  tracker,
		notifier: notifier,
	}

	// Окно-оверлей с текущими зажатыми клавишами
	app.overlayWin = overlay.New(tracker, overlay.DefaultConfig())

	// Источник событий: сначала пробуем evdev, при неудаче
	// события даёт само окно оверлея.
	src, err := source.New(source.Options{DevicePath: cfg.DevicePath()})
	switch {
	case err == nil:
		if err := tracker.Bind(src); err != nil {
			return nil, err
		}
		app.global = true
	case errors.Is(err, source.ErrUnsupported):
		log.Printf("Глобальный источник недоступен: %v", err)
		app.overlayWin.SetFeed(true)
	default:
		// Нет прав на /dev/input или устройства не нашлись -
		// работаем, но только в пределах своего окна.
		log.Printf("Ошибка открытия клавиатуры: %v", err)
		notifier.Error(i18n.T("error_source"))
		app.overlayWin.SetFeed(true)
	}

	// Горячая клавиша показывает/прячет оверлей
	app.hotkey = hotkey.New(func() {
		app.overlayWin.Toggle()
	})

	// Перерегистрация при смене сочетания
	cfg.OnHotkeyChange(func(hk config.HotkeyConfig) {
		if err := app.hotkey.Register(hk); err != nil {
			log.Printf("Ошибка регистрации горячей клавиши: %v", err)
			app.notifier.Error(i18n.T("error_hotkey_register"))
		}
	})

	// Создаём системный трей с обработчиками
	app.tray = tray.New(tray.Callbacks{
		OnOverlayToggle: func() {
			app.overlayWin.Toggle()
		},
		OnNotificationsToggle: func() bool {
			enabled := app.config.ToggleNotifications()
			app.notifier.SetEnabled(enabled)
			return enabled
		},
		OnHotkeyClick: func() {
			current := app.config.Hotkey()
			hk, err := dialog.SelectHotkey(current)
			if err != nil {
				// Пользователь закрыл диалог
				return
			}
			app.config.SetHotkey(hk)
		},
		OnQuit: func() {
			app.Close()
		},
	})

	return app, nil
}

// Run запускает приложение.
func (a *App) Run() {
	a.tray.Run(func() {
		// Счётчик зажатых клавиш в трее. Подписываемся только после
		// инициализации трея: события могут прийти сразу.
		a.tracker.Subscribe(func() {
			a.tray.SetHeldCount(a.tracker.Len())
		})

		// Регистрируем горячую клавишу после инициализации трея
		hk := a.config.Hotkey()
		if err := a.hotkey.Register(hk); err != nil {
			log.Printf("Ошибка регистрации горячей клавиши: %v", err)
			a.notifier.Error(i18n.T("error_hotkey_register"))
		}

		if a.global {
			a.notifier.TrackingGlobal()
		} else {
			a.notifier.TrackingWindow()
		}

		if a.config.OverlayOnStart() {
			a.overlayWin.Show()
		}
	})
}

// Close освобождает ресурсы приложения.
func (a *App) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	a.closed = true

	if a.hotkey != nil {
		a.hotkey.Unregister()
	}

	if a.overlayWin != nil {
		a.overlayWin.Hide()
	}

	if a.tracker != nil {
		a.tracker.Dispose()
	}

	a.notifier.Stopped()
	a.tray.Quit()
}
