package keystate

import "log"

// Kind - вид события от хост-окружения. Закрытое множество вариантов.
type Kind int

const (
	// KindKeyDown - клавиша нажата.
	KindKeyDown Kind = iota
	// KindKeyUp - клавиша отпущена.
	KindKeyUp
	// KindFocusLost - окно/устройство потеряло фокус.
	KindFocusLost
)

// String возвращает имя вида события.
func (k Kind) String() string {
	switch k {
	case KindKeyDown:
		return "key-down"
	case KindKeyUp:
		return "key-up"
	case KindFocusLost:
		return "focus-lost"
	default:
		return "unknown"
	}
}

// Event - входное событие клавиатуры.
type Event struct {
	Kind     Kind
	Key      string // идентификатор клавиши ("a", "Shift", "Enter")
	Location int    // позиция (Location*), для KindFocusLost не используется
}

// Source - источник событий клавиатуры (хост-окружение).
type Source interface {
	// Start начинает доставку событий. Канал закрывается при остановке.
	Start() (<-chan Event, error)

	// Stop прекращает доставку событий.
	Stop() error
}

// Handle обрабатывает одно событие. Неизвестный вид события - ошибка
// интеграции: пишем предупреждение в лог и ничего не делаем, состояние
// не повреждается.
func (t *Tracker) Handle(ev Event) {
	switch ev.Kind {
	case KindKeyDown:
		t.KeyDown(ev.Key, ev.Location)
	case KindKeyUp:
		t.KeyUp(ev.Key, ev.Location)
	case KindFocusLost:
		t.Blur()
	default:
		log.Printf("keystate: неизвестный вид события: %d", ev.Kind)
	}
}

// Bind подключает источник событий: запускает его и читает события в
// отдельной горутине до Dispose или закрытия канала источником.
func (t *Tracker) Bind(src Source) error {
	events, err := src.Start()
	if err != nil {
		return err
	}

	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		return src.Stop()
	}
	// Предыдущий источник не заменяем: один Tracker - один источник.
	if t.src != nil {
		t.mu.Unlock()
		_ = src.Stop()
		return ErrSourceBound
	}
	stopCh := make(chan struct{})
	doneCh := make(chan struct{})
	t.src = src
	t.stopCh = stopCh
	t.doneCh = doneCh
	t.mu.Unlock()

	go func() {
		defer close(doneCh)
		for {
			select {
			case <-stopCh:
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				t.Handle(ev)
			}
		}
	}()
	return nil
}
