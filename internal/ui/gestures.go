package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold float32 = 50.0
)

// GestureTracker accumulates drag movement and classifies it when the drag ends
type GestureTracker struct {
	dx, dy         float32
	swipeThreshold float32
}

// NewGestureTracker creates a tracker with the default swipe threshold
func NewGestureTracker() *GestureTracker {
	return &GestureTracker{swipeThreshold: DefaultSwipeThreshold}
}

// Move records a drag step
func (g *GestureTracker) Move(delta fyne.Delta) {
	g.dx += delta.DX
	g.dy += delta.DY
}

// End classifies the accumulated movement and resets the tracker
func (g *GestureTracker) End() GestureType {
	gesture := classifySwipe(g.dx, g.dy, g.swipeThreshold)
	g.dx, g.dy = 0, 0
	return gesture
}

// classifySwipe determines the direction of a swipe gesture
func classifySwipe(dx, dy, threshold float32) GestureType {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx < threshold && absDy < threshold {
		return GestureNone
	}

	// Determine primary direction
	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// dragHandle is the grab bar at the top of a bottom sheet; dragging it down dismisses the sheet
type dragHandle struct {
	widget.BaseWidget
	tracker   *GestureTracker
	onDismiss func()
}

func newDragHandle(onDismiss func()) *dragHandle {
	h := &dragHandle{tracker: NewGestureTracker(), onDismiss: onDismiss}
	h.ExtendBaseWidget(h)
	return h
}

// Dragged implements fyne.Draggable
func (h *dragHandle) Dragged(event *fyne.DragEvent) {
	h.tracker.Move(event.Dragged)
}

// DragEnd implements fyne.Draggable
func (h *dragHandle) DragEnd() {
	if h.tracker.End() == GestureSwipeDown && h.onDismiss != nil {
		h.onDismiss()
	}
}

func (h *dragHandle) CreateRenderer() fyne.WidgetRenderer {
	bar := canvas.NewRectangle(theme.Color(theme.ColorNameDisabled))
	bar.CornerRadius = DragHandleHeight / 2
	bar.SetMinSize(fyne.NewSize(DragHandleWidth, DragHandleHeight))

	// The transparent strip gives the handle a full touch target height
	strip := canvas.NewRectangle(color.Transparent)
	strip.SetMinSize(fyne.NewSize(MinTouchTargetSize, MinTouchTargetSize/2))

	return widget.NewSimpleRenderer(container.NewStack(strip, container.NewCenter(bar)))
}
