//go:build ignore

// Скрипт для генерации иконок трея.
// Запуск: go run scripts/generate_icons.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

func main() {
	dir := "embedded"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Не удалось создать директорию %s: %v", dir, err)
	}

	icons := []struct {
		name  string
		color color.RGBA
	}{
		{"icon_idle.png", color.RGBA{128, 128, 128, 255}},  // Серый
		{"icon_active.png", color.RGBA{88, 166, 255, 255}}, // Синий
	}

	for _, icon := range icons {
		path := filepath.Join(dir, icon.name)
		if err := generateIcon(path, icon.color); err != nil {
			log.Fatalf("Ошибка генерации %s: %v", icon.name, err)
		}
		log.Printf("Создан: %s", path)
	}
}

// generateIcon рисует клавишу: скруглённый квадрат с рамкой.
func generateIcon(path string, c color.RGBA) error {
	const size = 64
	const margin = 8
	const corner = 6
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	for y := margin; y < size-margin; y++ {
		for x := margin; x < size-margin; x++ {
			// Срезаем углы
			dx := min(x-margin, size-margin-1-x)
			dy := min(y-margin, size-margin-1-y)
			if dx+dy < corner {
				continue
			}
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
