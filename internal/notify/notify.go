// Package notify предоставляет системные уведомления.
package notify

import (
	"github.com/gen2brain/beeep"

	"klava/internal/i18n"
)

const appName = "Klava"

// Notifier отправляет системные уведомления.
type Notifier struct {
	enabled bool
}

// New создаёт новый Notifier.
func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

// SetEnabled включает/выключает уведомления.
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// TrackingGlobal сообщает о начале глобального отслеживания клавиатуры.
func (n *Notifier) TrackingGlobal() {
	n.notify("", i18n.T("notify_tracking_global"))
}

// TrackingWindow сообщает, что отслеживаются только события окна оверлея.
func (n *Notifier) TrackingWindow() {
	n.notify("", i18n.T("notify_tracking_window"))
}

// Stopped сообщает об остановке отслеживания.
func (n *Notifier) Stopped() {
	n.notify("", i18n.T("notify_stopped"))
}

// Error показывает уведомление об ошибке.
func (n *Notifier) Error(msg string) {
	n.notify(i18n.T("notify_error"), msg)
}

func (n *Notifier) notify(title, message string) {
	if !n.enabled {
		return
	}
	// Игнорируем ошибки уведомлений - они не критичны
	if title != "" {
		_ = beeep.Notify(appName+": "+title, message, "")
	} else {
		_ = beeep.Notify(appName, message, "")
	}
}
