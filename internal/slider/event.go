package slider

import (
	"fmt"

	"github.com/iOliverNguyen/rustapps/internal/geom"
)

// PointerKind is the kind of a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is a pointer transition in layout coordinates. Pressed reports
// whether the primary button is currently held; it is authoritative for move
// events.
type PointerEvent struct {
	Kind    PointerKind
	Button  Button
	Pos     geom.Point
	Pressed bool
}

// Down returns a primary-button press at p.
func Down(p geom.Point) PointerEvent {
	return PointerEvent{Kind: PointerDown, Button: ButtonPrimary, Pos: p, Pressed: true}
}

// Move returns a pointer move to p.
func Move(p geom.Point, pressed bool) PointerEvent {
	return PointerEvent{Kind: PointerMove, Pos: p, Pressed: pressed}
}

// Up returns a primary-button release at p.
func Up(p geom.Point) PointerEvent {
	return PointerEvent{Kind: PointerUp, Button: ButtonPrimary, Pos: p}
}

func (e PointerEvent) String() string {
	return fmt.Sprintf("%s(%.1f,%.1f pressed=%t)", e.Kind, e.Pos.X, e.Pos.Y, e.Pressed)
}
