package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipe-finder/internal/finder"
	"github.com/ytget/recipe-finder/internal/model"
)

// FilterBar shows the filters button with its count, the active filter
// badges, and a collapsible panel editing a draft of the filters
type FilterBar struct {
	localization *Localization
	editor       *finder.FilterEditor

	toggleBtn *widget.Button
	badges    *fyne.Container
	panel     *fyne.Container
	content   *fyne.Container

	dietGroup   *widget.RadioGroup
	intolerance map[model.Intolerance]*widget.Check
	readyGroup  *widget.RadioGroup
	applyBtn    *widget.Button
	clearBtn    *widget.Button

	// syncing is set while widgets are loaded from the draft
	syncing bool
	onApply func(filters model.FilterState)
}

// NewFilterBar creates a filter bar; onApply receives every applied state
func NewFilterBar(initial model.FilterState, localization *Localization, onApply func(filters model.FilterState)) *FilterBar {
	fb := &FilterBar{
		localization: localization,
		intolerance:  make(map[model.Intolerance]*widget.Check),
		onApply:      onApply,
	}
	fb.editor = finder.NewFilterEditor(initial, fb.applied)
	fb.createUI()
	fb.refreshBadges()
	return fb
}

// Object returns the canvas object to place in a layout
func (fb *FilterBar) Object() fyne.CanvasObject {
	return fb.content
}

// Editor returns the underlying filter editor
func (fb *FilterBar) Editor() *finder.FilterEditor {
	return fb.editor
}

// IsOpen reports whether the filter panel is expanded
func (fb *FilterBar) IsOpen() bool {
	return fb.panel.Visible()
}

// Open expands the panel with a fresh draft of the applied filters
func (fb *FilterBar) Open() {
	fb.editor.ResetDraft()
	fb.syncFromDraft()
	fb.panel.Show()
	fb.content.Refresh()
}

// Close collapses the panel, discarding unapplied edits
func (fb *FilterBar) Close() {
	fb.editor.ResetDraft()
	fb.panel.Hide()
	fb.content.Refresh()
}

func (fb *FilterBar) createUI() {
	fb.toggleBtn = widget.NewButtonWithIcon("", theme.MenuIcon(), func() {
		if fb.IsOpen() {
			fb.Close()
		} else {
			fb.Open()
		}
	})

	dietLabels := make([]string, len(model.DietOptions))
	for i, d := range model.DietOptions {
		dietLabels[i] = d.Label()
	}
	fb.dietGroup = widget.NewRadioGroup(dietLabels, func(selected string) {
		if fb.syncing {
			return
		}
		for _, d := range model.DietOptions {
			if d.Label() == selected {
				fb.editor.SetDiet(d)
				return
			}
		}
		fb.editor.SetDiet(model.DietNone)
	})
	fb.dietGroup.Horizontal = true

	checks := container.NewGridWrap(fyne.NewSize(140, MinTouchTargetSize))
	for _, opt := range model.IntoleranceOptions {
		opt := opt
		check := widget.NewCheck(opt.Label(), func(bool) {
			if fb.syncing {
				return
			}
			fb.editor.ToggleIntolerance(opt)
		})
		fb.intolerance[opt] = check
		checks.Add(check)
	}

	readyLabels := []string{model.ReadyTimeLabel(model.NoTimeLimit)}
	for _, minutes := range model.ReadyTimeOptions {
		readyLabels = append(readyLabels, model.ReadyTimeLabel(minutes))
	}
	fb.readyGroup = widget.NewRadioGroup(readyLabels, func(selected string) {
		if fb.syncing {
			return
		}
		fb.editor.SetMaxReadyTime(readyTimeFromLabel(selected))
	})
	fb.readyGroup.Horizontal = true

	fb.applyBtn = widget.NewButton(fb.localization.GetText(KeyApplyFilters), func() {
		fb.editor.Apply()
		fb.panel.Hide()
		fb.content.Refresh()
	})
	fb.applyBtn.Importance = widget.HighImportance
	fb.clearBtn = widget.NewButton(fb.localization.GetText(KeyClearFilters), func() {
		fb.editor.Clear()
		fb.syncFromDraft()
	})

	fb.panel = container.NewVBox(
		widget.NewLabelWithStyle(fb.localization.GetText(KeyDiet), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		fb.dietGroup,
		widget.NewLabelWithStyle(fb.localization.GetText(KeyIntolerances), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		checks,
		widget.NewLabelWithStyle(fb.localization.GetText(KeyMaxReadyTime), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		fb.readyGroup,
		container.NewHBox(fb.clearBtn, fb.applyBtn),
		widget.NewSeparator(),
	)
	fb.panel.Hide()

	fb.badges = container.NewHBox()
	fb.content = container.NewVBox(
		container.NewBorder(nil, nil, fb.toggleBtn, nil, container.NewHScroll(fb.badges)),
		fb.panel,
	)
}

// applied runs for every state the editor applies
func (fb *FilterBar) applied(filters model.FilterState) {
	fb.refreshBadges()
	if fb.IsOpen() {
		fb.syncFromDraft()
	}
	if fb.onApply != nil {
		fb.onApply(filters)
	}
}

func (fb *FilterBar) syncFromDraft() {
	draft := fb.editor.Draft()

	fb.syncing = true
	defer func() { fb.syncing = false }()

	fb.dietGroup.SetSelected(draft.Diet.Label())
	for opt, check := range fb.intolerance {
		check.SetChecked(draft.HasIntolerance(opt))
	}
	fb.readyGroup.SetSelected(model.ReadyTimeLabel(draft.MaxReadyTime))
}

func (fb *FilterBar) refreshBadges() {
	applied := fb.editor.Applied()

	label := fb.localization.GetText(KeyFilters)
	if n := applied.ActiveCount(); n > 0 {
		label = fmt.Sprintf("%s (%d)", label, n)
	}
	fb.toggleBtn.SetText(label)

	fb.badges.RemoveAll()
	if applied.Diet != model.DietNone {
		fb.badges.Add(newBadgeButton(applied.Diet.Label(), fb.editor.RemoveDiet))
	}
	for _, i := range applied.SortedIntolerances() {
		i := i
		fb.badges.Add(newBadgeButton(i.Label(), func() { fb.editor.RemoveIntolerance(i) }))
	}
	if applied.MaxReadyTime != model.NoTimeLimit {
		fb.badges.Add(newBadgeButton(model.ReadyTimeLabel(applied.MaxReadyTime), fb.editor.RemoveMaxReadyTime))
	}
	fb.badges.Refresh()
}

func newBadgeButton(label string, onRemove func()) *widget.Button {
	btn := widget.NewButton(label+BadgeRemoveSuffix, onRemove)
	btn.Importance = widget.LowImportance
	return btn
}

func readyTimeFromLabel(label string) int {
	for _, minutes := range model.ReadyTimeOptions {
		if model.ReadyTimeLabel(minutes) == label {
			return minutes
		}
	}
	return model.NoTimeLimit
}
