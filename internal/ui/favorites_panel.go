package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipe-finder/internal/model"
)

// FavoritesPanel lists saved recipes with open and remove actions
type FavoritesPanel struct {
	localization *Localization

	favorites []model.RecipeSummary
	list      *widget.List
	empty     *fyne.Container
	content   *fyne.Container

	onOpen   func(id int)
	onRemove func(id int)
}

// NewFavoritesPanel creates the panel; call Update to fill it
func NewFavoritesPanel(localization *Localization, onOpen func(id int), onRemove func(id int)) *FavoritesPanel {
	fp := &FavoritesPanel{
		localization: localization,
		onOpen:       onOpen,
		onRemove:     onRemove,
	}
	fp.createUI()
	return fp
}

// Object returns the canvas object to place in a layout
func (fp *FavoritesPanel) Object() fyne.CanvasObject {
	return fp.content
}

// Len returns the number of rows shown
func (fp *FavoritesPanel) Len() int {
	return len(fp.favorites)
}

// Update replaces the listed favorites
func (fp *FavoritesPanel) Update(favorites []model.RecipeSummary) {
	fp.favorites = favorites
	if len(favorites) == 0 {
		fp.list.Hide()
		fp.empty.Show()
	} else {
		fp.empty.Hide()
		fp.list.Show()
	}
	fp.list.UnselectAll()
	fp.list.Refresh()
}

func (fp *FavoritesPanel) createUI() {
	emptyTitle := widget.NewLabelWithStyle(fp.localization.GetText(KeyNoFavorites), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	emptyHint := widget.NewLabel(fp.localization.GetText(KeyNoFavoritesHint))
	emptyHint.Alignment = fyne.TextAlignCenter
	emptyHint.Wrapping = fyne.TextWrapWord
	fp.empty = container.NewVBox(newSpacer(MinTouchTargetSize), emptyTitle, emptyHint)

	fp.list = widget.NewList(
		func() int { return len(fp.favorites) },
		func() fyne.CanvasObject {
			title := widget.NewLabel("")
			title.Truncation = fyne.TextTruncateEllipsis
			meta := widget.NewLabel("")
			meta.Importance = widget.LowImportance
			remove := widget.NewButtonWithIcon(fp.localization.GetText(KeyRemove), theme.DeleteIcon(), nil)
			remove.Importance = widget.DangerImportance
			return container.NewBorder(nil, nil, nil, remove, container.NewVBox(title, meta))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(fp.favorites) {
				return
			}
			recipe := fp.favorites[id]

			row := obj.(*fyne.Container)
			texts := row.Objects[0].(*fyne.Container)
			remove := row.Objects[1].(*widget.Button)

			texts.Objects[0].(*widget.Label).SetText(cleanText(recipe.Title))
			setOptionalText(texts.Objects[1].(*widget.Label), formatMeta(fp.localization, recipe.ReadyInMinutes, recipe.Servings, KeyMinutesShort))
			remove.OnTapped = func() {
				if fp.onRemove != nil {
					fp.onRemove(recipe.ID)
				}
			}
		},
	)
	fp.list.OnSelected = func(id widget.ListItemID) {
		if id >= 0 && id < len(fp.favorites) && fp.onOpen != nil {
			fp.onOpen(fp.favorites[id].ID)
		}
		fp.list.UnselectAll()
	}
	fp.list.Hide()

	fp.content = container.NewStack(fp.empty, fp.list)
}
