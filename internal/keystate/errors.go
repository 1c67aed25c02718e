package keystate

import "errors"

// ErrSourceBound возвращается из Bind, если источник уже подключён.
var ErrSourceBound = errors.New("keystate: источник событий уже подключён")
