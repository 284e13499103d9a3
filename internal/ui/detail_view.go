package ui

import (
	"context"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/ytget/recipe-finder/internal/model"
	"github.com/ytget/recipe-finder/internal/platform"
)

// DetailView shows a single recipe: image, facts, link to the source, and
// tabs for ingredients and instructions
type DetailView struct {
	detail       model.RecipeDetail
	saved        bool
	localization *Localization

	image     *canvas.Image
	favBtn    *widget.Button
	sourceURL *widget.Hyperlink
	tabs      *container.AppTabs
	content   fyne.CanvasObject

	onToggleFavorite func(recipe model.RecipeSummary)
}

// NewDetailView builds the view for detail. images may be nil.
func NewDetailView(detail model.RecipeDetail, saved bool, localization *Localization, images ImageSource, onToggleFavorite func(recipe model.RecipeSummary)) *DetailView {
	dv := &DetailView{
		detail:           detail,
		saved:            saved,
		localization:     localization,
		onToggleFavorite: onToggleFavorite,
	}
	dv.createUI()
	dv.loadImage(images)
	return dv
}

// Object returns the canvas object to place in a layout
func (dv *DetailView) Object() fyne.CanvasObject {
	return dv.content
}

// RecipeID returns the id of the recipe shown
func (dv *DetailView) RecipeID() int {
	return dv.detail.ID
}

// SetSaved updates the favorite toggle
func (dv *DetailView) SetSaved(saved bool) {
	dv.saved = saved
	dv.updateFavorite()
}

func (dv *DetailView) createUI() {
	l := dv.localization

	dv.image = canvas.NewImageFromResource(nil)
	dv.image.FillMode = canvas.ImageFillContain
	dv.image.SetMinSize(fyne.NewSize(0, DetailImageH))
	if dv.detail.Image == "" {
		dv.image.Hide()
	}

	title := widget.NewLabelWithStyle(cleanText(dv.detail.Title), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.Wrapping = fyne.TextWrapWord
	title.SizeName = theme.SizeNameSubHeadingText

	dv.favBtn = widget.NewButton("", func() {
		if dv.onToggleFavorite != nil {
			dv.onToggleFavorite(dv.detail.RecipeSummary)
		}
	})
	dv.updateFavorite()

	badges := container.NewHBox()
	for _, label := range dv.detail.DietLabels() {
		badge := widget.NewLabel(label)
		badge.Importance = widget.SuccessImportance
		badges.Add(badge)
	}

	meta := widget.NewLabel("")
	setOptionalText(meta, formatMeta(l, dv.detail.ReadyInMinutes, dv.detail.Servings, KeyMinutesLong))

	likes := widget.NewLabel("")
	likes.Importance = widget.LowImportance
	setOptionalText(likes, formatLikes(l, dv.detail.AggregateLikes))

	header := container.NewVBox(
		dv.image,
		container.NewBorder(nil, nil, nil, dv.favBtn, title),
		badges,
		meta,
		likes,
	)

	if u, err := platform.ParseExternalURL(dv.detail.SourceURL); err == nil {
		text := l.GetText(KeyViewOriginal) + " " + IconLink
		if host := platform.DisplayHost(u); host != "" {
			text += " " + host
		}
		dv.sourceURL = widget.NewHyperlink(text, u)
		header.Add(dv.sourceURL)
	}

	if summary := strings.TrimSpace(dv.detail.Summary); summary != "" {
		summaryLabel := widget.NewLabel(summary)
		summaryLabel.Wrapping = fyne.TextWrapWord
		header.Add(summaryLabel)
	}

	dv.tabs = container.NewAppTabs(
		container.NewTabItem(l.GetText(KeyIngredients), dv.ingredientList()),
		container.NewTabItem(l.GetText(KeyInstructions), dv.instructions()),
	)

	dv.content = container.NewVScroll(container.NewVBox(header, dv.tabs))
}

func (dv *DetailView) ingredientList() fyne.CanvasObject {
	list := container.NewVBox()
	for _, ing := range dv.detail.ExtendedIngredients {
		line := widget.NewLabel(IconBullet + " " + formatIngredient(ing))
		line.Wrapping = fyne.TextWrapWord
		list.Add(line)
	}
	return list
}

func (dv *DetailView) instructions() fyne.CanvasObject {
	text := strings.TrimSpace(dv.detail.Instructions)
	if text == "" {
		empty := widget.NewLabel(dv.localization.GetText(KeyNoInstructions))
		empty.Importance = widget.LowImportance
		empty.Wrapping = fyne.TextWrapWord
		return empty
	}
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	return label
}

func (dv *DetailView) updateFavorite() {
	if dv.saved {
		dv.favBtn.SetText(IconHeart + " " + dv.localization.GetText(KeySaved))
		dv.favBtn.Importance = widget.DangerImportance
	} else {
		dv.favBtn.SetText(IconHeartOutline + " " + dv.localization.GetText(KeySave))
		dv.favBtn.Importance = widget.MediumImportance
	}
	dv.favBtn.Refresh()
}

func (dv *DetailView) loadImage(images ImageSource) {
	if images == nil || dv.detail.Image == "" {
		return
	}
	imageURL := dv.detail.Image
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), ImageTimeout)
		defer cancel()
		res, err := images.Load(ctx, imageURL)
		if err != nil {
			fyne.Do(dv.image.Hide)
			return
		}
		fyne.Do(func() {
			dv.image.Resource = res
			dv.image.Refresh()
		})
	}()
}

// formatIngredient renders amount, unit and name, e.g. "1.5 cups flour"
func formatIngredient(ing model.Ingredient) string {
	var parts []string
	if ing.Amount > 0 {
		parts = append(parts, humanize.FtoaWithDigits(ing.Amount, 2))
	}
	if unit := strings.TrimSpace(ing.Unit); unit != "" {
		parts = append(parts, unit)
	}
	name := strings.TrimSpace(ing.Name)
	if name == "" {
		name = strings.TrimSpace(ing.Original)
	}
	if name != "" {
		parts = append(parts, name)
	}
	return strings.Join(parts, " ")
}
