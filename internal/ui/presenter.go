package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Modal is a presented piece of content that can be dismissed programmatically
type Modal interface {
	Dismiss()
}

// ModalPresenter shows content above the main window. The detail view and the
// favorites panel go through it so they look right on both narrow and wide windows.
type ModalPresenter interface {
	Present(title string, content fyne.CanvasObject, onDismiss func()) Modal
}

// IsCompactWidth reports whether a canvas of width w should use bottom sheets
func IsCompactWidth(w float32) bool {
	return w < CompactWidthBreakpoint
}

// NewAdaptivePresenter returns a presenter that picks a bottom sheet or a
// centered overlay for every presentation, depending on the current window
func NewAdaptivePresenter(win fyne.Window, closeLabel func() string) ModalPresenter {
	return &adaptivePresenter{
		win:     win,
		overlay: &overlayPresenter{win: win, closeLabel: closeLabel},
		sheet:   &sheetPresenter{win: win, closeLabel: closeLabel},
	}
}

type adaptivePresenter struct {
	win     fyne.Window
	overlay ModalPresenter
	sheet   ModalPresenter
}

func (p *adaptivePresenter) Present(title string, content fyne.CanvasObject, onDismiss func()) Modal {
	if fyne.CurrentDevice().IsMobile() || IsCompactWidth(p.win.Canvas().Size().Width) {
		return p.sheet.Present(title, content, onDismiss)
	}
	return p.overlay.Present(title, content, onDismiss)
}

// dismissOnce makes sure onDismiss runs once however the modal was closed.
// It is only touched from the UI goroutine.
type dismissOnce struct {
	done      bool
	hide      func()
	onDismiss func()
}

// Dismiss hides the modal and reports it
func (d *dismissOnce) Dismiss() {
	if d.done {
		return
	}
	d.done = true
	if d.hide != nil {
		d.hide()
	}
	if d.onDismiss != nil {
		d.onDismiss()
	}
}

// closed reports a modal that was already hidden by the toolkit
func (d *dismissOnce) closed() {
	if d.done {
		return
	}
	d.done = true
	if d.onDismiss != nil {
		d.onDismiss()
	}
}

// overlayPresenter shows content in a centered dialog
type overlayPresenter struct {
	win        fyne.Window
	closeLabel func() string
}

func (p *overlayPresenter) Present(title string, content fyne.CanvasObject, onDismiss func()) Modal {
	d := dialog.NewCustom(title, p.closeLabel(), content, p.win)

	m := &dismissOnce{hide: d.Hide, onDismiss: onDismiss}
	d.SetOnClosed(m.closed)

	winSize := p.win.Canvas().Size()
	d.Resize(fyne.NewSize(winSize.Width*OverlaySizeRatio, winSize.Height*OverlaySizeRatio))
	d.Show()
	return m
}

// sheetPresenter shows content in a full-width bottom sheet with a drag handle
type sheetPresenter struct {
	win        fyne.Window
	closeLabel func() string
}

func (p *sheetPresenter) Present(title string, content fyne.CanvasObject, onDismiss func()) Modal {
	m := &dismissOnce{onDismiss: onDismiss}

	handle := newDragHandle(m.Dismiss)
	heading := widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	heading.Truncation = fyne.TextTruncateEllipsis
	closeBtn := widget.NewButton(p.closeLabel(), m.Dismiss)

	header := container.NewVBox(handle, container.NewBorder(nil, nil, nil, closeBtn, heading))
	sheet := container.NewBorder(header, nil, nil, nil, content)

	scrim := newTapArea(m.Dismiss)
	body := container.New(&sheetLayout{ratio: SheetHeightRatio}, scrim, sheet)

	c := p.win.Canvas()
	popUp := widget.NewModalPopUp(body, c)
	m.hide = popUp.Hide
	popUp.Resize(c.Size())
	popUp.Show()
	return m
}

// sheetLayout places the first object over the top area and the second one
// at the bottom, taking ratio of the available height
type sheetLayout struct {
	ratio float32
}

func (l *sheetLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	h := size.Height * l.ratio
	if minH := objects[1].MinSize().Height; h < minH {
		h = fyne.Min(minH, size.Height)
	}
	objects[0].Move(fyne.NewPos(0, 0))
	objects[0].Resize(fyne.NewSize(size.Width, size.Height-h))
	objects[1].Move(fyne.NewPos(0, size.Height-h))
	objects[1].Resize(fyne.NewSize(size.Width, h))
}

func (l *sheetLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, 0)
	}
	return objects[1].MinSize()
}

// tapArea is an invisible region that reports taps
type tapArea struct {
	widget.BaseWidget
	onTapped func()
}

func newTapArea(onTapped func()) *tapArea {
	t := &tapArea{onTapped: onTapped}
	t.ExtendBaseWidget(t)
	return t
}

func (t *tapArea) Tapped(*fyne.PointEvent) {
	if t.onTapped != nil {
		t.onTapped()
	}
}

func (t *tapArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}
