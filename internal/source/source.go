// Package source предоставляет платформо-специфичные источники событий
// клавиатуры для keystate.Tracker.
package source

import (
	"errors"

	"klava/internal/keystate"
)

// ErrUnsupported означает, что на этой платформе глобальный источник
// событий недоступен. Приложение в этом случае работает от событий
// собственного окна.
var ErrUnsupported = errors.New("source: глобальный источник событий не поддерживается на этой платформе")

// Options - настройки источника.
type Options struct {
	// DevicePath - явный путь к устройству ввода (Linux). Пустая строка -
	// автоопределение.
	DevicePath string
}

// New создаёт платформо-специфичный источник событий клавиатуры.
func New(opts Options) (keystate.Source, error) {
	return newSource(opts)
}
