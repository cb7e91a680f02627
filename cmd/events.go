package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/iOliverNguyen/rustapps/internal/app"
	"github.com/iOliverNguyen/rustapps/internal/geom"
	"github.com/iOliverNguyen/rustapps/internal/render"
	"github.com/iOliverNguyen/rustapps/internal/slider"
)

// EventHandlers translates GLFW input into application actions.
type EventHandlers struct {
	application *app.App
	window      *glfw.Window
	renderer    *render.Renderer
}

// NewEventHandlers creates a new event handlers manager.
func NewEventHandlers(application *app.App, window *glfw.Window, renderer *render.Renderer) *EventHandlers {
	eh := &EventHandlers{
		application: application,
		window:      window,
		renderer:    renderer,
	}
	eh.SetupCallbacks(window)
	return eh
}

// SetupCallbacks configures all GLFW event callbacks.
func (eh *EventHandlers) SetupCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(wnd *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		eh.handleKey(key, action, mods) // random color, library browsing, quit
	})
	window.SetMouseButtonCallback(func(wnd *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		eh.handleMouseButton(button, action) // slider press/release
	})
	window.SetCursorPosCallback(func(wnd *glfw.Window, xpos, ypos float64) {
		eh.handleCursorPos(xpos, ypos) // slider drags
	})
	window.SetFramebufferSizeCallback(func(wnd *glfw.Window, _, _ int) {
		eh.handleResize() // for window resize
	})
	window.SetContentScaleCallback(func(wnd *glfw.Window, _, _ float32) {
		eh.handleResize() // moved to a display with a different density
	})
}

// handleResize lays the panel out for the current window. Layout units are
// window (screen) coordinates; the scale factor is the framebuffer's pixel
// density relative to them, which is what cursor positions are reported in.
func (eh *EventHandlers) handleResize() {
	ww, wh := eh.window.GetSize()
	fw, fh := eh.window.GetFramebufferSize()
	if ww <= 0 || wh <= 0 {
		return // minimized
	}
	scale := float64(fw) / float64(ww)

	eh.application.Resize(float64(ww), float64(wh), scale)
	eh.renderer.SetView(fw, fh, eh.application.View.Scale)
}

// handleKey handles keyboard input events.
func (eh *EventHandlers) handleKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}

	switch key {
	case glfw.KeySpace:
		if action == glfw.Press {
			eh.application.RandomColor()
		}
	case glfw.KeyTab:
		// Repeat keeps stepping through the library while held.
		eh.application.Browse((mods & glfw.ModShift) == 0)
	case glfw.KeyEscape:
		eh.window.SetShouldClose(true)
	case glfw.KeyQ:
		if (mods & (glfw.ModSuper | glfw.ModControl)) != 0 {
			eh.window.SetShouldClose(true)
		}
	}
}

func pointerButton(button glfw.MouseButton) (slider.Button, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return slider.ButtonPrimary, true
	case glfw.MouseButtonRight:
		return slider.ButtonSecondary, true
	case glfw.MouseButtonMiddle:
		return slider.ButtonMiddle, true
	default:
		return 0, false
	}
}

// cursor returns the cursor position in layout units.
func (eh *EventHandlers) cursor() geom.Point {
	x, y := eh.window.GetCursorPos()
	return geom.MakePoint(x, y)
}

// primaryHeld reports whether the primary button is down right now, as
// opposed to what the last button callback said.
func (eh *EventHandlers) primaryHeld() bool {
	return eh.window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
}

// handleMouseButton forwards button transitions to the panel.
func (eh *EventHandlers) handleMouseButton(button glfw.MouseButton, action glfw.Action) {
	b, ok := pointerButton(button)
	if !ok {
		return // nothing to do
	}

	ev := slider.PointerEvent{Button: b, Pos: eh.cursor(), Pressed: eh.primaryHeld()}
	switch action {
	case glfw.Press:
		ev.Kind = slider.PointerDown
	case glfw.Release:
		ev.Kind = slider.PointerUp
	default:
		return
	}
	eh.application.HandlePointer(ev)
}

// handleCursorPos forwards pointer motion to the panel.
func (eh *EventHandlers) handleCursorPos(xpos, ypos float64) {
	eh.application.HandlePointer(slider.Move(geom.MakePoint(xpos, ypos), eh.primaryHeld()))
}
