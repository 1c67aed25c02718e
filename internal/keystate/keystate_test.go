package keystate

import (
	"reflect"
	"sync"
	"testing"
	"time"
)

// counter считает уведомления об изменениях.
type counter struct {
	mu sync.Mutex
	n  int
}

func (c *counter) fn() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

func (c *counter) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

func newTracker(t *testing.T) (*Tracker, *counter) {
	t.Helper()
	tr := New()
	c := &counter{}
	tr.Subscribe(c.fn)
	return tr, c
}

func TestKeyDownKeyUp(t *testing.T) {
	tr, c := newTracker(t)

	tr.KeyDown("a", 0)
	if !tr.IsPressed("a") {
		t.Fatal(`после key-down "a" не зажата`)
	}
	if c.count() != 1 {
		t.Errorf("уведомлений = %d, ожидалось 1", c.count())
	}

	// Повторный key-down той же клавиши в той же позиции - no-op.
	tr.KeyDown("a", 0)
	if c.count() != 1 {
		t.Errorf("повторный key-down дал уведомление: %d", c.count())
	}

	tr.KeyUp("a", 0)
	if tr.IsPressed("a") {
		t.Error(`после key-up "a" осталась зажатой`)
	}
	if c.count() != 2 {
		t.Errorf("уведомлений = %d, ожидалось 2", c.count())
	}
	if tr.Len() != 0 {
		t.Errorf("Len() = %d, ожидалось 0", tr.Len())
	}
}

func TestMultipleLocations(t *testing.T) {
	tr, c := newTracker(t)

	// Левый и правый Shift - одна клавиша, две позиции. Уведомление
	// приходит только при смене статуса зажата/отпущена, добавление
	// второй позиции множество зажатых клавиш не меняет.
	tr.KeyDown("Shift", LocationLeft)
	tr.KeyDown("Shift", LocationRight)
	if got := c.count(); got != 1 {
		t.Errorf("уведомлений = %d, ожидалось 1", got)
	}

	tr.KeyUp("Shift", LocationLeft)
	if !tr.IsPressed("Shift") {
		t.Error("Shift отпущен, хотя правая позиция ещё зажата")
	}
	if got := c.count(); got != 1 {
		t.Errorf("уведомлений = %d, ожидалось 1", got)
	}

	tr.KeyUp("Shift", LocationRight)
	if tr.IsPressed("Shift") {
		t.Error("Shift остался зажатым после отпускания обеих позиций")
	}
	if got := c.count(); got != 2 {
		t.Errorf("уведомлений = %d, ожидалось 2", got)
	}
}

func TestKeyUpUnknownKey(t *testing.T) {
	tr, c := newTracker(t)

	tr.KeyUp("a", 0)
	tr.KeyUp("Shift", LocationLeft)
	if c.count() != 0 {
		t.Errorf("key-up незажатой клавиши дал уведомление: %d", c.count())
	}
}

func TestBlur(t *testing.T) {
	tr, c := newTracker(t)

	// Пустое множество: blur не даёт уведомления.
	tr.Blur()
	if c.count() != 0 {
		t.Errorf("blur пустого множества дал уведомление: %d", c.count())
	}

	tr.KeyDown("b", 0)
	tr.KeyDown("Shift", LocationLeft)
	before := c.count()

	tr.Blur()
	if tr.Len() != 0 {
		t.Errorf("после blur Len() = %d, ожидалось 0", tr.Len())
	}
	if c.count() != before+1 {
		t.Errorf("blur дал %d уведомлений, ожидалось 1", c.count()-before)
	}
}

func TestNamedKeyPurgesUnnamed(t *testing.T) {
	tr, c := newTracker(t)

	tr.KeyDown("a", 0)
	before := c.count()

	// Нажатие символической клавиши принудительно отпускает обычные.
	tr.KeyDown("Shift", LocationLeft)
	if tr.IsPressed("a") {
		t.Error(`"a" осталась зажатой после нажатия Shift`)
	}
	if !tr.IsPressed("Shift") {
		t.Error("Shift не зажат")
	}
	if c.count() != before+1 {
		t.Errorf("ожидалось одно уведомление, получено %d", c.count()-before)
	}
}

func TestNamedKeyKeepsNamed(t *testing.T) {
	tr, _ := newTracker(t)

	tr.KeyDown("Control", LocationLeft)
	tr.KeyDown("Shift", LocationLeft)
	if !tr.IsPressed("Control") || !tr.IsPressed("Shift") {
		t.Errorf("символические клавиши не должны вытеснять друг друга: %v", tr.Snapshot())
	}
}

func TestDeadNeverTracked(t *testing.T) {
	tr, c := newTracker(t)

	tr.KeyDown(KeyDead, 0)
	if tr.IsPressed(KeyDead) {
		t.Error("Dead попала в множество зажатых клавиш")
	}
	if c.count() != 0 {
		t.Errorf("Dead без очистки дала уведомление: %d", c.count())
	}

	// "Dead" - символическое имя: очистка обычных клавиш срабатывает
	// и сама по себе считается изменением.
	tr.KeyDown("a", 0)
	before := c.count()
	tr.KeyDown(KeyDead, 0)
	if tr.IsPressed("a") {
		t.Error(`"a" осталась зажатой после Dead`)
	}
	if tr.IsPressed(KeyDead) {
		t.Error("Dead попала в множество зажатых клавиш")
	}
	if c.count() != before+1 {
		t.Errorf("очистка по Dead дала %d уведомлений, ожидалось 1", c.count()-before)
	}

	tr.KeyUp(KeyDead, 0)
	if tr.Len() != 0 {
		t.Errorf("после key-up Dead множество не пусто: %v", tr.Snapshot())
	}
}

func TestReplaySequences(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   []string
	}{
		{
			name: "держим две буквы",
			events: []Event{
				{Kind: KindKeyDown, Key: "a"},
				{Kind: KindKeyDown, Key: "b"},
			},
			want: []string{"a", "b"},
		},
		{
			name: "нажали и отпустили",
			events: []Event{
				{Kind: KindKeyDown, Key: "a"},
				{Kind: KindKeyDown, Key: "b"},
				{Kind: KindKeyUp, Key: "a"},
			},
			want: []string{"b"},
		},
		{
			name: "шорткат с модификатором",
			events: []Event{
				{Kind: KindKeyDown, Key: "Control", Location: LocationLeft},
				{Kind: KindKeyDown, Key: "c"},
				{Kind: KindKeyUp, Key: "c"},
				{Kind: KindKeyUp, Key: "Control", Location: LocationLeft},
			},
			want: []string{},
		},
		{
			name: "потеря фокуса сбрасывает всё",
			events: []Event{
				{Kind: KindKeyDown, Key: "a"},
				{Kind: KindKeyDown, Key: "Shift", Location: LocationLeft},
				{Kind: KindFocusLost},
			},
			want: []string{},
		},
		{
			name: "автоповтор не множит состояние",
			events: []Event{
				{Kind: KindKeyDown, Key: "x"},
				{Kind: KindKeyDown, Key: "x"},
				{Kind: KindKeyDown, Key: "x"},
			},
			want: []string{"x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New()
			for _, ev := range tt.events {
				tr.Handle(ev)
			}
			if got := tr.Snapshot(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Snapshot() = %v, ожидалось %v", got, tt.want)
			}
		})
	}
}

func TestIsNamedKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"Shift", true},
		{"Control", true},
		{"Alt", true},
		{"F1", true},
		{"Dead", true},
		{"PageUp", true},
		{"a", false},
		{"A", false}, // одиночная заглавная буква - печатный символ
		{"1", false},
		{"#", false},
		{"", false},
		{"shift", false},
		{"Ф1", false},
	}

	for _, tt := range tests {
		if got := IsNamedKey(tt.key); got != tt.want {
			t.Errorf("IsNamedKey(%q) = %v, ожидалось %v", tt.key, got, tt.want)
		}
	}
}

func TestLocationBit(t *testing.T) {
	tests := []struct {
		location int
		want     Locations
	}{
		{0, 1},
		{1, 2},
		{2, 4},
		{3, 8},
		{31, 1 << 31},
		{32, 1}, // заворот по модулю 32
		{35, 8},
	}

	for _, tt := range tests {
		if got := LocationBit(tt.location); got != tt.want {
			t.Errorf("LocationBit(%d) = %b, ожидалось %b", tt.location, got, tt.want)
		}
	}
}

func TestSubscriptionCancel(t *testing.T) {
	tr := New()
	c := &counter{}
	sub := tr.Subscribe(c.fn)

	tr.KeyDown("a", 0)
	sub.Cancel()
	sub.Cancel() // повторная отмена безопасна
	tr.KeyUp("a", 0)

	if c.count() != 1 {
		t.Errorf("уведомлений после отмены подписки = %d, ожидалось 1", c.count())
	}
}

func TestDispose(t *testing.T) {
	tr, c := newTracker(t)

	tr.KeyDown("a", 0)
	tr.Dispose()

	// Запоздавшие события состояние не меняют и уведомлений не дают.
	before := c.count()
	tr.KeyDown("b", 0)
	tr.KeyUp("a", 0)
	tr.Blur()
	if c.count() != before {
		t.Errorf("события после Dispose дали уведомления: %d", c.count()-before)
	}
	if tr.IsPressed("b") {
		t.Error("key-down после Dispose изменил состояние")
	}
}

func TestHandleUnknownKind(t *testing.T) {
	tr, c := newTracker(t)

	tr.KeyDown("a", 0)
	tr.Handle(Event{Kind: Kind(42), Key: "b"})
	if !tr.IsPressed("a") || tr.IsPressed("b") {
		t.Error("неизвестное событие повредило состояние")
	}
	if c.count() != 1 {
		t.Errorf("неизвестное событие дало уведомление: %d", c.count())
	}
}

func TestDefault(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() возвращает разные экземпляры")
	}
	if Default() == New() {
		t.Error("New() вернул общий экземпляр")
	}
}

// fakeSource - источник событий для тестов.
type fakeSource struct {
	events chan Event
	stop   chan struct{}
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		events: make(chan Event, 16),
		stop:   make(chan struct{}),
	}
}

func (f *fakeSource) Start() (<-chan Event, error) {
	return f.events, nil
}

func (f *fakeSource) Stop() error {
	close(f.stop)
	return nil
}

func TestBind(t *testing.T) {
	tr := New()
	src := newFakeSource()
	if err := tr.Bind(src); err != nil {
		t.Fatalf("Bind: %v", err)
	}

	if err := tr.Bind(newFakeSource()); err != ErrSourceBound {
		t.Errorf("повторный Bind: err = %v, ожидалось ErrSourceBound", err)
	}

	done := make(chan struct{})
	tr.Subscribe(func() { close(done) })

	src.events <- Event{Kind: KindKeyDown, Key: "a"}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("событие из источника не дошло до Tracker")
	}
	if !tr.IsPressed("a") {
		t.Error(`"a" не зажата после события из источника`)
	}

	tr.Dispose()
	select {
	case <-src.stop:
	case <-time.After(time.Second):
		t.Fatal("Dispose не остановил источник")
	}
}
