// Package embedded содержит встроенные ресурсы приложения.
package embedded

import (
	_ "embed"
)

// IconIdle - иконка, когда клавиши не зажаты (серая).
//
//go:embed icon_idle.png
var IconIdle []byte

// IconActive - иконка, когда есть зажатые клавиши (синяя).
//
//go:embed icon_active.png
var IconActive []byte
