// Package overlay provides a floating window with the currently held keys.
package overlay

import (
	"image/color"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"klava/internal/keystate"
)

// Config holds window configuration.
type Config struct {
	Width        int         // Window width in pixels
	Height       int         // Window height in pixels
	BGColor      color.NRGBA // Background color
	TextColor    color.NRGBA // Text color
	TextDimColor color.NRGBA // Dim text color
	ChipColor    color.NRGBA // Key chip background
	AccentColor  color.NRGBA // Key chip background for named keys
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Width:        420,
		Height:       120,
		BGColor:      color.NRGBA{R: 30, G: 30, B: 34, A: 245},
		TextColor:    color.NRGBA{R: 240, G: 240, B: 245, A: 255},
		TextDimColor: color.NRGBA{R: 140, G: 140, B: 150, A: 255},
		ChipColor:    color.NRGBA{R: 45, G: 45, B: 50, A: 255},
		AccentColor:  color.NRGBA{R: 88, G: 166, B: 255, A: 255},
	}
}

// Window shows the active key set of a keystate.Tracker. When feed mode is
// enabled the window also acts as the host environment: its own key and
// focus events drive the tracker.
type Window struct {
	mu      sync.Mutex
	tracker *keystate.Tracker
	config  Config
	feed    bool

	window  *app.Window
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates an overlay window for the given tracker.
func New(tracker *keystate.Tracker, cfg Config) *Window {
	return &Window{
		tracker: tracker,
		config:  cfg,
	}
}

// SetFeed enables feeding window key/focus events into the tracker.
// Used when no global event source is available on this platform.
func (w *Window) SetFeed(feed bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.feed = feed
}

// Show displays the overlay window (non-blocking).
func (w *Window) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		if w.window != nil {
			w.window.Invalidate()
		}
		return
	}

	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})

	go w.runEventLoop()
}

// Hide closes the overlay window.
func (w *Window) Hide() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	feed := w.feed
	stopCh := w.stopCh
	doneCh := w.doneCh
	w.stopCh = nil
	w.mu.Unlock()

	// The window was the host environment: hiding it means key-ups may
	// never arrive, so reset the tracker like on focus loss.
	if feed {
		w.tracker.Blur()
	}

	if stopCh != nil {
		close(stopCh)
	}

	// Wait for window to close
	if doneCh != nil {
		select {
		case <-doneCh:
		case <-time.After(time.Second):
		}
	}
}

// Toggle shows the window if hidden and hides it if visible.
func (w *Window) Toggle() {
	if w.IsVisible() {
		w.Hide()
	} else {
		w.Show()
	}
}

// IsVisible returns true if window is currently shown.
func (w *Window) IsVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

const windowTitle = "Klava"

func (w *Window) runEventLoop() {
	defer close(w.doneCh)

	w.mu.Lock()
	w.window = new(app.Window)
	w.window.Option(
		app.Title(windowTitle),
		app.Size(unit.Dp(w.config.Width), unit.Dp(w.config.Height)),
		app.Decorated(false), // Borderless
	)
	win := w.window
	stopCh := w.stopCh
	w.mu.Unlock()

	var ops op.Ops

	// Position window after it appears
	go positionWindow(windowTitle, w.config.Width, w.config.Height)

	// Redraw on every tracker change
	sub := w.tracker.Subscribe(func() {
		win.Invalidate()
	})
	defer sub.Cancel()

	// Close goroutine
	go func() {
		<-stopCh
		win.Perform(system.ActionClose)
	}()

	for {
		switch e := win.Event().(type) {
		case app.DestroyEvent:
			return
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			w.frame(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

// allModifiers lists the modifiers a key event may carry without being
// filtered out.
const allModifiers = key.ModShift | key.ModCtrl | key.ModAlt | key.ModSuper | key.ModCommand

func (w *Window) frame(gtx layout.Context) {
	// Register for key and focus events and grab keyboard focus.
	event.Op(gtx.Ops, w)
	gtx.Execute(key.FocusCmd{Tag: w})

	w.mu.Lock()
	feed := w.feed
	w.mu.Unlock()

	for {
		ev, ok := gtx.Event(
			key.Filter{Focus: w, Optional: allModifiers},
			key.FocusFilter{Target: w},
		)
		if !ok {
			break
		}
		switch e := ev.(type) {
		case key.Event:
			if e.Name == key.NameEscape && e.State == key.Press {
				go w.Hide()
				continue
			}
			if feed {
				w.forwardKey(e)
			}
		case key.FocusEvent:
			// Window-level blur: key-ups are no longer guaranteed.
			if feed && !e.Focus {
				w.tracker.Blur()
			}
		}
	}

	w.draw(gtx, w.tracker.Snapshot())
}

// forwardKey translates a gio key event into a tracker event.
func (w *Window) forwardKey(e key.Event) {
	id, location, ok := translateKey(e.Name)
	if !ok {
		return
	}
	switch e.State {
	case key.Press:
		w.tracker.KeyDown(id, location)
	case key.Release:
		w.tracker.KeyUp(id, location)
	}
}
