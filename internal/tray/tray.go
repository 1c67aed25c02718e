// Package tray предоставляет системный трей с меню.
package tray

import (
	"strconv"

	"github.com/getlantern/systray"

	"klava/embedded"
	"klava/internal/i18n"
)

// Callbacks содержит обработчики событий меню.
type Callbacks struct {
	OnOverlayToggle       func()
	OnNotificationsToggle func() bool
	OnHotkeyClick         func()
	OnQuit                func()
}

// Tray управляет иконкой в системном трее.
type Tray struct {
	callbacks  Callbacks
	status     *systray.MenuItem
	overlayBtn *systray.MenuItem
	notifyOn   *systray.MenuItem
	hotkeyBtn  *systray.MenuItem
	quitBtn    *systray.MenuItem
}

// New создаёт новый Tray.
func New(callbacks Callbacks) *Tray {
	return &Tray{
		callbacks: callbacks,
	}
}

// Run запускает системный трей. Блокирующая функция.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetIcon(embedded.IconIdle)
	systray.SetTitle("Klava")
	systray.SetTooltip(i18n.T("app_tooltip"))

	// Статус: количество зажатых клавиш
	t.status = systray.AddMenuItem(i18n.T("tray_idle"), "")
	t.status.Disable()

	systray.AddSeparator()

	// Оверлей
	t.overlayBtn = systray.AddMenuItem(i18n.T("tray_overlay"), i18n.T("tray_overlay_hint"))

	// Уведомления
	t.notifyOn = systray.AddMenuItemCheckbox(i18n.T("tray_notifications"), i18n.T("tray_notifications_hint"), true)

	// Горячая клавиша
	t.hotkeyBtn = systray.AddMenuItem(i18n.T("tray_hotkey"), i18n.T("tray_hotkey_hint"))

	systray.AddSeparator()

	// Выход
	t.quitBtn = systray.AddMenuItem(i18n.T("tray_quit"), i18n.T("tray_quit_hint"))

	// Обработка событий меню
	go t.handleMenuEvents()
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		// Оверлей
		case <-t.overlayBtn.ClickedCh:
			if t.callbacks.OnOverlayToggle != nil {
				t.callbacks.OnOverlayToggle()
			}

		// Уведомления
		case <-t.notifyOn.ClickedCh:
			if t.callbacks.OnNotificationsToggle != nil {
				enabled := t.callbacks.OnNotificationsToggle()
				if enabled {
					t.notifyOn.Check()
				} else {
					t.notifyOn.Uncheck()
				}
			}

		// Горячая клавиша
		case <-t.hotkeyBtn.ClickedCh:
			if t.callbacks.OnHotkeyClick != nil {
				t.callbacks.OnHotkeyClick()
			}

		// Выход
		case <-t.quitBtn.ClickedCh:
			if t.callbacks.OnQuit != nil {
				t.callbacks.OnQuit()
			}
			systray.Quit()
		}
	}
}

// SetHeldCount обновляет статус и иконку по количеству зажатых клавиш.
func (t *Tray) SetHeldCount(n int) {
	if n == 0 {
		systray.SetIcon(embedded.IconIdle)
		systray.SetTooltip("Klava - " + i18n.T("tray_idle"))
		if t.status != nil {
			t.status.SetTitle(i18n.T("tray_idle"))
		}
		return
	}

	systray.SetIcon(embedded.IconActive)
	title := i18n.T("tray_keys") + strconv.Itoa(n)
	systray.SetTooltip("Klava - " + title)
	if t.status != nil {
		t.status.SetTitle(title)
	}
}

func (t *Tray) onExit() {
	// Cleanup при выходе
}

// Quit закрывает системный трей.
func (t *Tray) Quit() {
	systray.Quit()
}

// RefreshUI обновляет все тексты меню на текущем языке.
func (t *Tray) RefreshUI() {
	systray.SetTooltip(i18n.T("app_tooltip"))

	if t.status != nil {
		t.status.SetTitle(i18n.T("tray_idle"))
	}
	if t.overlayBtn != nil {
		t.overlayBtn.SetTitle(i18n.T("tray_overlay"))
		t.overlayBtn.SetTooltip(i18n.T("tray_overlay_hint"))
	}
	if t.notifyOn != nil {
		t.notifyOn.SetTitle(i18n.T("tray_notifications"))
		t.notifyOn.SetTooltip(i18n.T("tray_notifications_hint"))
	}
	if t.hotkeyBtn != nil {
		t.hotkeyBtn.SetTitle(i18n.T("tray_hotkey"))
		t.hotkeyBtn.SetTooltip(i18n.T("tray_hotkey_hint"))
	}
	if t.quitBtn != nil {
		t.quitBtn.SetTitle(i18n.T("tray_quit"))
		t.quitBtn.SetTooltip(i18n.T("tray_quit_hint"))
	}
}
