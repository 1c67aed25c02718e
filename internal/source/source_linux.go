//go:build linux

package source

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/holoplot/go-evdev"

	"klava/internal/keystate"
)

// evdev value: 0 - отпущена, 1 - нажата, 2 - автоповтор.
const (
	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2
)

// evdevSource читает события из /dev/input. Требует прав на чтение
// устройств ввода (обычно группа input или root).
type evdevSource struct {
	mu      sync.Mutex
	devices []*evdev.InputDevice
	events  chan keystate.Event
	running bool
}

func newSource(opts Options) (keystate.Source, error) {
	var devices []*evdev.InputDevice

	if opts.DevicePath != "" {
		dev, err := evdev.OpenWithFlags(opts.DevicePath, os.O_RDONLY)
		if err != nil {
			return nil, fmt.Errorf("не удалось открыть устройство %s: %w", opts.DevicePath, err)
		}
		devices = append(devices, dev)
	} else {
		devices = findKeyboards()
		if len(devices) == 0 {
			return nil, fmt.Errorf("клавиатуры в /dev/input не найдены (проверьте права доступа)")
		}
	}

	return &evdevSource{devices: devices}, nil
}

// findKeyboards открывает все устройства /dev/input, похожие на клавиатуру:
// с событиями EV_KEY и автоповтором EV_REP (отсекает мыши и тачпады).
func findKeyboards() []*evdev.InputDevice {
	entries, err := os.ReadDir("/dev/input")
	if err != nil {
		log.Printf("Ошибка чтения /dev/input: %v", err)
		return nil
	}

	var devices []*evdev.InputDevice
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		dev, err := evdev.OpenWithFlags(filepath.Join("/dev/input", entry.Name()), os.O_RDONLY)
		if err != nil {
			continue
		}

		hasKeys, hasRepeat := false, false
		for _, t := range dev.CapableTypes() {
			switch t {
			case evdev.EV_KEY:
				hasKeys = true
			case evdev.EV_REP:
				hasRepeat = true
			}
		}
		if hasKeys && hasRepeat {
			if name, err := dev.Name(); err == nil {
				log.Printf("Найдена клавиатура: %s (%s)", name, dev.Path())
			}
			devices = append(devices, dev)
		} else {
			dev.Close()
		}
	}
	return devices
}

func (s *evdevSource) Start() (<-chan keystate.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil, fmt.Errorf("source: уже запущен")
	}
	s.running = true
	s.events = make(chan keystate.Event, 64)

	var wg sync.WaitGroup
	for _, dev := range s.devices {
		wg.Add(1)
		go func(dev *evdev.InputDevice) {
			defer wg.Done()
			s.readDevice(dev)
		}(dev)
	}
	go func() {
		wg.Wait()
		close(s.events)
	}()

	return s.events, nil
}

// readDevice читает события одного устройства до ошибки чтения
// (закрытие через Stop, отключение устройства, suspend).
func (s *evdevSource) readDevice(dev *evdev.InputDevice) {
	for {
		ev, err := dev.ReadOne()
		if err != nil {
			// Дальнейшие key-up с этого устройства не придут - лучше
			// сбросить всё, чем оставить клавиши залипшими.
			s.emit(keystate.Event{Kind: keystate.KindFocusLost})
			return
		}
		if ev.Type != evdev.EV_KEY {
			continue
		}

		key, location, ok := lookupKey(ev.Code)
		if !ok {
			continue
		}
		switch ev.Value {
		case keyPressed, keyRepeated:
			// Автоповтор идёт как обычный key-down: для множества
			// зажатых клавиш он ничего не меняет.
			s.emit(keystate.Event{Kind: keystate.KindKeyDown, Key: key, Location: location})
		case keyReleased:
			s.emit(keystate.Event{Kind: keystate.KindKeyUp, Key: key, Location: location})
		}
	}
}

func (s *evdevSource) emit(ev keystate.Event) {
	// Не блокируемся: после Dispose трекера канал никто не читает.
	select {
	case s.events <- ev:
	default:
	}
}

func (s *evdevSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for _, dev := range s.devices {
		if err := dev.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.devices = nil
	s.running = false
	return firstErr
}
