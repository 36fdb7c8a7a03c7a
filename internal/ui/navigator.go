package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Page is a screen that can be shown by the Navigator
type Page interface {
	Title() string
	Content() fyne.CanvasObject
	// OnFocus is called whenever the page becomes visible again
	OnFocus()
}

// Navigator is a stack of pages shown above the tab bar. The base content is
// visible when the stack is empty.
type Navigator struct {
	base  fyne.CanvasObject
	stack []Page

	// OnBaseFocus is called when the last page is popped
	OnBaseFocus func()
	// OnChange is called after every push or pop with the new top (nil for base)
	OnChange func(top Page)

	view   *fyne.Container
	title  *widget.Label
	back   *widget.Button
	header *fyne.Container
}

// NewNavigator creates a navigator over the given base content
func NewNavigator(base fyne.CanvasObject) *Navigator {
	n := &Navigator{base: base}
	n.title = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	n.title.Truncation = fyne.TextTruncateEllipsis
	n.back = widget.NewButton(IconBack, func() { n.Pop() })
	n.back.Importance = widget.LowImportance
	n.header = container.NewBorder(nil, nil, n.back, nil, n.title)
	n.view = container.NewStack(base)
	return n
}

// View returns the canvas object hosting the navigator
func (n *Navigator) View() fyne.CanvasObject {
	return n.view
}

// Push shows a new page on top of the stack
func (n *Navigator) Push(p Page) {
	n.stack = append(n.stack, p)
	n.show()
}

// Pop removes the top page and refocuses whatever is below it
func (n *Navigator) Pop() {
	if len(n.stack) == 0 {
		return
	}
	n.stack[len(n.stack)-1] = nil
	n.stack = n.stack[:len(n.stack)-1]
	n.show()

	if top := n.Top(); top != nil {
		top.OnFocus()
	} else if n.OnBaseFocus != nil {
		n.OnBaseFocus()
	}
}

// Reset drops every page and shows the base content without focusing it
func (n *Navigator) Reset() {
	if len(n.stack) == 0 {
		return
	}
	n.stack = nil
	n.show()
}

// Top returns the visible page or nil when the base is showing
func (n *Navigator) Top() Page {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of pushed pages
func (n *Navigator) Depth() int {
	return len(n.stack)
}

func (n *Navigator) show() {
	top := n.Top()
	if top == nil {
		n.view.Objects = []fyne.CanvasObject{n.base}
	} else {
		n.title.SetText(top.Title())
		n.view.Objects = []fyne.CanvasObject{container.NewBorder(n.header, nil, nil, nil, top.Content())}
	}
	n.view.Refresh()

	if n.OnChange != nil {
		n.OnChange(top)
	}
}
