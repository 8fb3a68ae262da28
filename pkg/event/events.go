// Package event defines the host input events widgets ingest and the
// status they answer with. The host GUI runtime translates its own input
// plumbing into these before calling a widget's OnEvent.
package event

import "fmt"

type Type uint8

const (
	TypePointerMoved Type = iota
	TypePointerPressed
	TypePointerReleased
	TypePointerLeft
	TypeScrollLine
	TypeScrollPixel
	TypeKeyPressed
	TypeKeyReleased
)

// Event is one host input event. The pointer position itself travels
// beside the event in OnEvent(bounds, cursor, event); pointer events are
// bare tags while scroll and key events carry their payload.
type Event interface {
	Type() Type
	String() string
}

// Status reports whether a widget consumed an event.
type Status uint8

const (
	// Ignored means the event did not concern the widget and may be
	// offered elsewhere.
	Ignored Status = iota
	// Captured means the widget consumed the event.
	Captured
)

func (s Status) String() string {
	if s == Captured {
		return "Captured"
	}
	return "Ignored"
}

// Merge combines two statuses; Captured wins.
func (s Status) Merge(other Status) Status {
	if s == Captured || other == Captured {
		return Captured
	}
	return Ignored
}

// PointerMoved reports pointer motion; the new position is the cursor
// argument of OnEvent.
type PointerMoved struct{}

func (PointerMoved) Type() Type     { return TypePointerMoved }
func (PointerMoved) String() string { return "PointerMoved" }

// PointerPressed reports the primary button going down.
type PointerPressed struct{}

func (PointerPressed) Type() Type     { return TypePointerPressed }
func (PointerPressed) String() string { return "PointerPressed" }

// PointerReleased reports the primary button going up.
type PointerReleased struct{}

func (PointerReleased) Type() Type     { return TypePointerReleased }
func (PointerReleased) String() string { return "PointerReleased" }

// PointerLeft reports the pointer leaving the host surface entirely.
type PointerLeft struct{}

func (PointerLeft) Type() Type     { return TypePointerLeft }
func (PointerLeft) String() string { return "PointerLeft" }

// ScrollLine is wheel movement in line units. Positive DeltaY scrolls
// up.
type ScrollLine struct {
	DeltaY float32
}

func (ScrollLine) Type() Type { return TypeScrollLine }

func (e ScrollLine) String() string {
	return fmt.Sprintf("ScrollLine(%.2f)", e.DeltaY)
}

// ScrollPixel is wheel movement in pixel units, as trackpads deliver it.
type ScrollPixel struct {
	DeltaY float32
}

func (ScrollPixel) Type() Type { return TypeScrollPixel }

func (e ScrollPixel) String() string {
	return fmt.Sprintf("ScrollPixel(%.2f)", e.DeltaY)
}

// KeyPressed reports a modifier key going down. Fine marks the
// fine-adjust modifier.
type KeyPressed struct {
	Fine bool
}

func (KeyPressed) Type() Type { return TypeKeyPressed }

func (e KeyPressed) String() string {
	return fmt.Sprintf("KeyPressed(fine=%t)", e.Fine)
}

// KeyReleased reports a modifier key going up.
type KeyReleased struct {
	Fine bool
}

func (KeyReleased) Type() Type { return TypeKeyReleased }

func (e KeyReleased) String() string {
	return fmt.Sprintf("KeyReleased(fine=%t)", e.Fine)
}
