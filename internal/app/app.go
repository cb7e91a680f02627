// Package app ties the color panel to the window: layout within the
// viewport, keyboard actions, library browsing and reloads, and the status
// line shown in the window title.
package app

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/iOliverNguyen/rustapps/internal/colorval"
	"github.com/iOliverNguyen/rustapps/internal/config"
	"github.com/iOliverNguyen/rustapps/internal/library"
	"github.com/iOliverNguyen/rustapps/internal/panel"
	"github.com/iOliverNguyen/rustapps/internal/slider"
	"github.com/iOliverNguyen/rustapps/internal/status"
)

// App encapsulates the main application state and logic.
type App struct {
	Panel   *panel.Panel
	Status  *status.Status
	View    *View
	Browser *Browser

	rng     *rand.Rand
	reloads chan libraryUpdate
}

type libraryUpdate struct {
	lib *library.Library
	err error
}

// PanelOptions maps configured geometry onto panel options.
func PanelOptions(cfg *config.Config) panel.Options {
	return panel.Options{
		Slider: slider.Options{
			Padding:     cfg.Slider.Padding,
			ThumbRadius: cfg.Slider.ThumbRadius,
		},
		TrackWidth:   cfg.Slider.Width,
		TrackHeight:  cfg.Slider.Height,
		Gap:          cfg.Slider.Gap,
		SwatchHeight: cfg.Palette.SwatchHeight,
		HueShift:     float32(cfg.Palette.HueShift),
	}
}

// New creates a new application instance editing initial.
func New(cfg *config.Config, initial colorval.Color, lib *library.Library, seed int64) *App {
	if lib == nil {
		lib = library.Default()
	}
	a := &App{
		Panel:   panel.New(initial, PanelOptions(cfg), lib),
		Status:  status.New(cfg.Status.Fade),
		View:    NewView(float64(cfg.Window.Width), float64(cfg.Window.Height)),
		Browser: NewBrowser(lib),
		rng:     rand.New(rand.NewSource(seed)),
		reloads: make(chan libraryUpdate, 1),
	}
	a.Layout()
	return a
}

// Close releases the panel's subscriptions.
func (a *App) Close() {
	a.Panel.Close()
}

// Layout centers the panel in the viewport.
func (a *App) Layout() {
	w, h := a.Panel.Size()
	a.Panel.Layout(a.View.CenterOrigin(w, h), a.View.Scale)
}

// Resize updates the viewport and lays the panel out again.
func (a *App) Resize(width, height, scale float64) {
	a.View.SetViewport(width, height)
	a.View.SetScale(scale)
	a.Layout()
}

// HandlePointer forwards a pointer event in layout units to the panel.
func (a *App) HandlePointer(ev slider.PointerEvent) bool {
	return a.Panel.HandlePointer(ev)
}

// RandomColor selects a random HSL color.
func (a *App) RandomColor() {
	a.Panel.SetColor(colorval.RandomHSL(a.rng))
	a.Status.Show("Random color " + a.Panel.Readout().Hex)
}

// Browse selects the next (or previous) library color. Browsing continues
// from the current color when it matches a library entry.
func (a *App) Browse(next bool) {
	if idx := a.Panel.MatchIndex(); idx >= 0 {
		a.Browser.SetCurrent(idx)
	}
	item, ok := a.Browser.Iter(next)
	if !ok {
		a.Status.Show("Library is empty")
		return
	}
	a.Panel.SetColor(item.Color)
	a.Status.Show(item.Label())
}

// QueueLibrary hands a reloaded library (or the error from reloading it) to
// the main loop. It is safe to call from any goroutine; a pending update
// that was not yet applied is replaced.
func (a *App) QueueLibrary(lib *library.Library, err error) {
	u := libraryUpdate{lib: lib, err: err}
	for {
		select {
		case a.reloads <- u:
			return
		default:
		}
		select {
		case <-a.reloads:
		default:
		}
	}
}

// ApplyPendingLibrary applies a queued library update, if any, and reports
// whether one was applied.
func (a *App) ApplyPendingLibrary() bool {
	select {
	case u := <-a.reloads:
		if u.err != nil {
			log.Printf("WARNING: keeping previous library: %v", u.err)
			a.Status.Show("Library reload failed")
			return true
		}
		a.Panel.SetLibrary(u.lib)
		a.Browser.SetLibrary(u.lib)
		a.Status.Show(fmt.Sprintf("Library reloaded (%d colors)", u.lib.Len()))
		return true
	default:
		return false
	}
}

// Paint draws the panel.
func (a *App) Paint(surface panel.Surface) {
	a.Panel.Paint(surface)
}

// Title describes the current color for the window title.
func (a *App) Title() string {
	parts := []string{"uicolors", a.Panel.Readout().String()}
	if item, ok := a.Panel.Match(); ok {
		parts = append(parts, item.Label())
	}
	if msg := a.Status.Message(); msg != "" {
		parts = append(parts, msg)
	}
	return strings.Join(parts, " | ")
}
