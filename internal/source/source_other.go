//go:build !linux

package source

import "klava/internal/keystate"

// Глобальный перехват клавиатуры реализован только для Linux (evdev).
// На остальных платформах приложение работает от событий своего окна.
func newSource(opts Options) (keystate.Source, error) {
	return nil, ErrUnsupported
}
