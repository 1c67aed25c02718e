// Package keystate отслеживает множество зажатых в данный момент клавиш.
//
// Tracker получает события key-down / key-up / потеря фокуса от источника
// (см. Source) и поддерживает отображение "идентификатор клавиши -> битовая
// маска позиций". Наблюдатели подписываются на уведомления об изменениях и
// сами читают текущее состояние.
package keystate

import (
	"log"
	"regexp"
	"sort"
	"sync"
)

// Locations - битовая маска позиций клавиши. Позиция различает физически
// разные клавиши с одним идентификатором (левый/правый Shift, Enter на
// цифровом блоке). Поддерживаются позиции 0..31; большие значения
// заворачиваются по модулю 32.
type Locations uint32

// LocationBit возвращает бит для позиции location.
func LocationBit(location int) Locations {
	return Locations(1) << (uint(location) & 31)
}

// Has сообщает, установлен ли бит позиции location.
func (l Locations) Has(location int) bool {
	return l&LocationBit(location) != 0
}

// Стандартные позиции клавиш (значения KeyboardEvent.location).
const (
	LocationStandard = 0
	LocationLeft     = 1
	LocationRight    = 2
	LocationNumpad   = 3
)

// KeyDead - мёртвая клавиша (compose/accent). Никогда не отслеживается.
const KeyDead = "Dead"

// namedKeyRe распознаёт символические имена клавиш ("Shift", "F1", "Enter")
// в отличие от одиночных печатных символов ("a", "1", "#").
var namedKeyRe = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]+$`)

// IsNamedKey сообщает, является ли идентификатор символическим именем клавиши.
func IsNamedKey(key string) bool {
	return namedKeyRe.MatchString(key)
}

// Tracker отслеживает зажатые клавиши. Несколько экземпляров полностью
// независимы. Все методы безопасны для вызова из разных горутин: источники
// доставляют события из своих горутин, мьютекс сериализует обработку.
type Tracker struct {
	mu       sync.Mutex
	active   map[string]Locations
	subs     map[int]func()
	nextSub  int
	disposed bool

	src    Source
	stopCh chan struct{}
	doneCh chan struct{}
}

// New создаёт Tracker с пустым множеством клавиш.
func New() *Tracker {
	return &Tracker{
		active: make(map[string]Locations),
		subs:   make(map[int]func()),
	}
}

var (
	defaultOnce    sync.Once
	defaultTracker *Tracker
)

// Default возвращает общий экземпляр Tracker. Создаётся лениво; приложение
// может не использовать его и создавать собственные экземпляры через New.
func Default() *Tracker {
	defaultOnce.Do(func() {
		defaultTracker = New()
	})
	return defaultTracker
}

// KeyDown обрабатывает нажатие клавиши key в позиции location.
func (t *Tracker) KeyDown(key string, location int) {
	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		return
	}

	key, changed := t.normalizeModifiers(key)
	if key != "" {
		bits, wasActive := t.active[key]
		bit := LocationBit(location)
		if bits&bit == 0 {
			t.active[key] = bits | bit
			if !wasActive {
				changed = true
			}
		}
	}
	t.finish(changed)
}

// KeyUp обрабатывает отпускание клавиши key в позиции location.
func (t *Tracker) KeyUp(key string, location int) {
	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		return
	}

	key, changed := t.normalizeModifiers(key)
	if key != "" {
		if bits, ok := t.active[key]; ok {
			bits &^= LocationBit(location)
			if bits == 0 {
				delete(t.active, key)
				changed = true
			} else {
				t.active[key] = bits
			}
		}
	}
	t.finish(changed)
}

// Blur обрабатывает потерю фокуса: сбрасывает всё множество клавиш.
// После потери фокуса события key-up не гарантированы (переключение
// приложений, системные шорткаты), поэтому лучше показать клавишу
// отпущенной, чем навсегда "залипшей".
func (t *Tracker) Blur() {
	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		return
	}

	changed := len(t.active) > 0
	if changed {
		t.active = make(map[string]Locations)
	}
	t.finish(changed)
}

// normalizeModifiers применяет правила нормализации модификаторов.
// При нажатии символической клавиши все обычные (односимвольные) клавиши
// принудительно отпускаются: браузерные/системные шорткаты могут проглотить
// их key-up, и они остались бы зажатыми навсегда. Возвращает (возможно,
// пустой) идентификатор и признак того, что очистка сама изменила состояние.
// Вызывается под мьютексом.
func (t *Tracker) normalizeModifiers(key string) (string, bool) {
	changed := false
	if IsNamedKey(key) {
		for k := range t.active {
			if !IsNamedKey(k) {
				delete(t.active, k)
				changed = true
			}
		}
	}
	// Мёртвая клавиша не даёт печатного символа и не отслеживается,
	// но уже выполненная очистка остаётся в силе.
	if key == KeyDead {
		key = ""
	}
	return key, changed
}

// finish рассылает уведомления при изменении и отпускает мьютекс.
func (t *Tracker) finish(changed bool) {
	var fns []func()
	if changed {
		fns = make([]func(), 0, len(t.subs))
		for _, fn := range t.subs {
			fns = append(fns, fn)
		}
	}
	t.mu.Unlock()

	// Вызываем вне мьютекса: наблюдатели читают состояние через IsPressed
	// и Snapshot.
	for _, fn := range fns {
		fn()
	}
}

// IsPressed сообщает, зажата ли клавиша key хотя бы в одной позиции.
func (t *Tracker) IsPressed(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.active[key]
	return ok
}

// Snapshot возвращает отсортированную копию множества зажатых клавиш.
func (t *Tracker) Snapshot() []string {
	t.mu.Lock()
	keys := make([]string, 0, len(t.active))
	for k := range t.active {
		keys = append(keys, k)
	}
	t.mu.Unlock()

	sort.Strings(keys)
	return keys
}

// Len возвращает количество зажатых клавиш.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.active)
}

// Subscribe регистрирует наблюдателя. fn вызывается без аргументов после
// каждого изменения множества клавиш; порядок вызова наблюдателей не
// гарантируется.
func (t *Tracker) Subscribe(fn func()) *Subscription {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextSub
	t.nextSub++
	if !t.disposed {
		t.subs[id] = fn
	}
	return &Subscription{tracker: t, id: id}
}

// Subscription - регистрация наблюдателя изменений.
type Subscription struct {
	tracker *Tracker
	id      int
}

// Cancel отменяет подписку. Повторный вызов безопасен.
func (s *Subscription) Cancel() {
	if s == nil || s.tracker == nil {
		return
	}
	s.tracker.mu.Lock()
	delete(s.tracker.subs, s.id)
	s.tracker.mu.Unlock()
	s.tracker = nil
}

// Dispose отсоединяет источник событий и удаляет всех наблюдателей.
// После вызова запоздавшие события не меняют состояние и не рассылают
// уведомлений.
func (t *Tracker) Dispose() {
	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		return
	}
	t.disposed = true
	t.subs = make(map[int]func())
	src := t.src
	stopCh := t.stopCh
	doneCh := t.doneCh
	t.src = nil
	t.stopCh = nil
	t.doneCh = nil
	t.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}
	if src != nil {
		if err := src.Stop(); err != nil {
			log.Printf("Ошибка остановки источника событий: %v", err)
		}
	}
	if doneCh != nil {
		<-doneCh
	}
}
