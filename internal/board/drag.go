package board

import (
	"errors"
	"fmt"
	"reflect"
)

// MIMEPlainText is the only payload type project lists accept.
const MIMEPlainText = "text/plain"

// Effect is the operation a drag source allows on its payload.
type Effect string

const (
	EffectNone Effect = "none"
	EffectMove Effect = "move"
)

var (
	ErrDragInProgress = errors.New("drag already in progress")
	ErrNoDragSource   = errors.New("missing drag source")
)

// Transfer carries the payload of one drag gesture. It holds at most one
// value; SetData replaces whatever was there.
type Transfer struct {
	EffectAllowed Effect

	typ  string
	data string
	set  bool
}

func NewTransfer() *Transfer {
	return &Transfer{EffectAllowed: EffectNone}
}

func (t *Transfer) SetData(typ, data string) {
	t.typ = typ
	t.data = data
	t.set = true
}

// Type returns the declared payload type, or "" when the slot is empty.
func (t *Transfer) Type() string {
	if t == nil || !t.set {
		return ""
	}
	return t.typ
}

// Data returns the payload when it was declared with typ.
func (t *Transfer) Data(typ string) string {
	if t == nil || !t.set || t.typ != typ {
		return ""
	}
	return t.data
}

func (t *Transfer) Empty() bool { return t == nil || !t.set }

func (t *Transfer) Clear() {
	t.typ = ""
	t.data = ""
	t.set = false
	t.EffectAllowed = EffectNone
}

// DragSource is something that can be picked up.
type DragSource interface {
	DragStart(t *Transfer)
	DragEnd(t *Transfer)
}

// DragTarget is something a drag payload can be dropped on. DragOver reports
// whether the target accepts the payload; a drop on a target that did not
// accept it is treated as a cancel.
type DragTarget interface {
	DragOver(t *Transfer) bool
	DragLeave(t *Transfer)
	Drop(t *Transfer)
}

type DragState int

const (
	DragIdle DragState = iota
	DragDragging
	DragDropped
	DragCancelled
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragDragging:
		return "dragging"
	case DragDropped:
		return "dropped"
	case DragCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("drag(%d)", int(s))
	}
}

// Coordinator runs one drag gesture at a time:
// Idle -> Dragging -> Dropped | Cancelled, and back to Dragging on the next Start.
type Coordinator struct {
	state    DragState
	transfer *Transfer
	source   DragSource
	hover    DragTarget
	accepted bool
}

func NewCoordinator() *Coordinator {
	return &Coordinator{state: DragIdle, transfer: NewTransfer()}
}

func (c *Coordinator) State() DragState { return c.state }

func (c *Coordinator) Dragging() bool { return c.state == DragDragging }

// Source returns the origin of the gesture in flight, or nil.
func (c *Coordinator) Source() DragSource { return c.source }

// Hover returns the target last dragged over, or nil.
func (c *Coordinator) Hover() DragTarget { return c.hover }

// Transfer exposes the gesture's payload slot.
func (c *Coordinator) Transfer() *Transfer { return c.transfer }

// Start begins a gesture on src.
func (c *Coordinator) Start(src DragSource) error {
	if c.state == DragDragging {
		return ErrDragInProgress
	}
	if isNilSource(src) {
		return ErrNoDragSource
	}
	c.transfer.Clear()
	src.DragStart(c.transfer)
	c.source = src
	c.hover = nil
	c.accepted = false
	c.state = DragDragging
	return nil
}

// isNilSource also catches a nil pointer wrapped in the interface.
func isNilSource(src DragSource) bool {
	if src == nil {
		return true
	}
	v := reflect.ValueOf(src)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Over reports a drag-over on target. Moving onto a different target first
// leaves the previous one. It returns whether target accepts the payload.
func (c *Coordinator) Over(target DragTarget) bool {
	if c.state != DragDragging || target == nil {
		return false
	}
	if c.hover != nil && c.hover != target {
		c.hover.DragLeave(c.transfer)
	}
	c.hover = target
	c.accepted = target.DragOver(c.transfer)
	return c.accepted
}

// Leave reports that the pointer left target.
func (c *Coordinator) Leave(target DragTarget) {
	if c.state != DragDragging || target == nil {
		return
	}
	target.DragLeave(c.transfer)
	if c.hover == target {
		c.hover = nil
		c.accepted = false
	}
}

// Drop ends the gesture on target. It reports whether the drop was delivered;
// otherwise the gesture is cancelled.
func (c *Coordinator) Drop(target DragTarget) bool {
	if c.state != DragDragging {
		return false
	}
	if target == nil {
		c.Cancel()
		return false
	}
	if c.hover != target {
		c.Over(target)
	}
	if !c.accepted {
		c.Cancel()
		return false
	}
	target.Drop(c.transfer)
	c.finish(DragDropped)
	return true
}

// Cancel abandons the gesture in flight. It is a no-op when idle.
func (c *Coordinator) Cancel() {
	if c.state != DragDragging {
		return
	}
	if c.hover != nil {
		c.hover.DragLeave(c.transfer)
	}
	c.finish(DragCancelled)
}

func (c *Coordinator) finish(st DragState) {
	if c.source != nil {
		c.source.DragEnd(c.transfer)
	}
	c.transfer.Clear()
	c.source = nil
	c.hover = nil
	c.accepted = false
	c.state = st
}
