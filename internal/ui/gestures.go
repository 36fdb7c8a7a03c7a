package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureTap
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// GestureHandler classifies a touch or drag into a gesture
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	touchStartTime time.Time
	dragDelta      fyne.Delta
	dragging       bool

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 60.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(_ *mobile.TouchEvent) {
	gh.touchStartTime = time.Now()
}

// TouchUp reports a long press on mobile; swipes arrive through Dragged
func (gh *GestureHandler) TouchUp(_ *mobile.TouchEvent) {
	if gh.touchStartTime.IsZero() || gh.dragging {
		return
	}
	if time.Since(gh.touchStartTime) >= gh.longPressDuration {
		gh.triggerGesture(GestureLongPress)
	}
	gh.touchStartTime = time.Time{}
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(_ *mobile.TouchEvent) {
	gh.touchStartTime = time.Time{}
}

// Dragged accumulates drag movement
func (gh *GestureHandler) Dragged(e *fyne.DragEvent) {
	gh.dragging = true
	gh.dragDelta.DX += e.Dragged.DX
	gh.dragDelta.DY += e.Dragged.DY
}

// DragEnd classifies the finished drag and fires the callback
func (gh *GestureHandler) DragEnd() {
	gesture := gh.classify(gh.dragDelta.DX, gh.dragDelta.DY)
	gh.dragDelta = fyne.Delta{}
	gh.dragging = false
	gh.touchStartTime = time.Time{}
	if gesture != GestureNone {
		gh.triggerGesture(gesture)
	}
}

// classify determines the direction of a swipe gesture
func (gh *GestureHandler) classify(dx, dy float32) GestureType {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx < gh.swipeThreshold && absDy < gh.swipeThreshold {
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

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// SwipeRow wraps a row with horizontal swipe and tap handling
type SwipeRow struct {
	widget.BaseWidget

	content        fyne.CanvasObject
	gestureHandler *GestureHandler

	OnTapped     func()
	OnSwipeLeft  func()
	OnSwipeRight func()
}

// NewSwipeRow creates a new swipeable row
func NewSwipeRow(content fyne.CanvasObject) *SwipeRow {
	row := &SwipeRow{content: content}
	row.gestureHandler = NewGestureHandler(row.handleGesture)
	row.ExtendBaseWidget(row)
	return row
}

// CreateRenderer creates the renderer for the row
func (r *SwipeRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.content)
}

// handleGesture dispatches recognised gestures to the row callbacks
func (r *SwipeRow) handleGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeLeft:
		if r.OnSwipeLeft != nil {
			r.OnSwipeLeft()
		}
	case GestureSwipeRight:
		if r.OnSwipeRight != nil {
			r.OnSwipeRight()
		}
	}
}

// Tapped handles tap events
func (r *SwipeRow) Tapped(_ *fyne.PointEvent) {
	if r.OnTapped != nil {
		r.OnTapped()
	}
}

// Dragged handles drag events
func (r *SwipeRow) Dragged(e *fyne.DragEvent) {
	r.gestureHandler.Dragged(e)
}

// DragEnd handles the end of a drag
func (r *SwipeRow) DragEnd() {
	r.gestureHandler.DragEnd()
}

// TouchDown handles touch down events
func (r *SwipeRow) TouchDown(event *mobile.TouchEvent) {
	r.gestureHandler.TouchDown(event)
}

// TouchUp handles touch up events
func (r *SwipeRow) TouchUp(event *mobile.TouchEvent) {
	r.gestureHandler.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (r *SwipeRow) TouchCancel(event *mobile.TouchEvent) {
	r.gestureHandler.TouchCancel(event)
}
