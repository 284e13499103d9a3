package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// SearchBar is a query entry with submit and clear buttons. Each search mode
// owns one, so switching modes keeps what was typed in the other.
type SearchBar struct {
	localization *Localization

	entry     *widget.Entry
	submitBtn *widget.Button
	clearBtn  *widget.Button
	content   *fyne.Container

	busy     bool
	onSubmit func(text string)
}

// NewSearchBar creates a search bar; onSubmit receives the trimmed text
func NewSearchBar(placeholder string, localization *Localization, onSubmit func(text string)) *SearchBar {
	sb := &SearchBar{localization: localization, onSubmit: onSubmit}

	sb.entry = widget.NewEntry()
	sb.entry.SetPlaceHolder(placeholder)
	sb.entry.OnSubmitted = func(string) { sb.Submit() }
	sb.entry.OnChanged = func(string) { sb.updateButtons() }

	sb.submitBtn = widget.NewButtonWithIcon(localization.GetText(KeySearch), theme.SearchIcon(), sb.Submit)
	sb.submitBtn.Importance = widget.HighImportance

	sb.clearBtn = widget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		sb.entry.SetText("")
		sb.updateButtons()
	})

	sb.content = container.NewBorder(nil, nil, nil, container.NewHBox(sb.clearBtn, sb.submitBtn), sb.entry)
	sb.updateButtons()
	return sb
}

// Object returns the canvas object to place in a layout
func (sb *SearchBar) Object() fyne.CanvasObject {
	return sb.content
}

// Text returns the trimmed entry text
func (sb *SearchBar) Text() string {
	return strings.TrimSpace(sb.entry.Text)
}

// SetText replaces the entry text
func (sb *SearchBar) SetText(text string) {
	sb.entry.SetText(text)
	sb.updateButtons()
}

// SetBusy disables submitting while a request is outstanding
func (sb *SearchBar) SetBusy(busy bool) {
	if sb.busy == busy {
		return
	}
	sb.busy = busy
	sb.updateButtons()
}

// Submit sends the current text unless it is blank or a request is outstanding
func (sb *SearchBar) Submit() {
	text := sb.Text()
	if text == "" || sb.busy {
		return
	}
	if sb.onSubmit != nil {
		sb.onSubmit(text)
	}
}

func (sb *SearchBar) updateButtons() {
	if sb.busy || sb.Text() == "" {
		sb.submitBtn.Disable()
	} else {
		sb.submitBtn.Enable()
	}
	if sb.entry.Text == "" {
		sb.clearBtn.Hide()
	} else {
		sb.clearBtn.Show()
	}
}
