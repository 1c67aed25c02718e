// Klava - кроссплатформенная утилита, показывающая зажатые клавиши.
//
// Работает в системном трее, Ctrl+Shift+K включает оверлей
// с текущим состоянием клавиатуры.
package main

import (
	"log"
	"os"

	"klava/internal/app"
	"klava/internal/hotkey"
)

// Version устанавливается при сборке через -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Printf("Klava %s запускается...", Version)

	// Запускаем в главном потоке (требование для macOS и некоторых GUI)
	hotkey.RunOnMainThread(run)
}

func run() {
	application, err := app.New()
	if err != nil {
		log.Printf("Ошибка инициализации: %v", err)
		os.Exit(1)
	}

	log.Println("Приложение запущено. Нажмите Ctrl+Shift+K для оверлея.")
	application.Run()
}
