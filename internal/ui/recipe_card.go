package ui

import (
	"context"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/ytget/recipe-finder/internal/model"
)

// ImageSource loads recipe images as Fyne resources
type ImageSource interface {
	Load(ctx context.Context, url string) (fyne.Resource, error)
}

// RecipeCard represents a recipe tile in the results grid
type RecipeCard struct {
	widget.BaseWidget

	recipe       model.RecipeSummary
	saved        bool
	localization *Localization
	images       ImageSource

	// UI components
	image      *canvas.Image
	titleLabel *widget.Label
	metaLabel  *widget.Label
	matchLabel *widget.Label
	likesLabel *widget.Label
	badges     *fyne.Container
	heartBtn   *widget.Button
	viewBtn    *widget.Button
	content    *fyne.Container

	// Callbacks
	onView           func(id int)
	onToggleFavorite func(recipe model.RecipeSummary)
}

// NewRecipeCard creates a new recipe card widget. images may be nil.
func NewRecipeCard(recipe model.RecipeSummary, saved bool, localization *Localization, images ImageSource) *RecipeCard {
	rc := &RecipeCard{
		recipe:       recipe,
		saved:        saved,
		localization: localization,
		images:       images,
	}
	rc.ExtendBaseWidget(rc)
	rc.createUI()
	rc.updateFromRecipe()
	rc.loadImage()
	return rc
}

// SetCallbacks sets the action callbacks
func (rc *RecipeCard) SetCallbacks(onView func(id int), onToggleFavorite func(recipe model.RecipeSummary)) {
	rc.onView = onView
	rc.onToggleFavorite = onToggleFavorite
}

// SetSaved updates the heart toggle
func (rc *RecipeCard) SetSaved(saved bool) {
	if rc.saved == saved {
		return
	}
	rc.saved = saved
	rc.updateHeart()
}

// Recipe returns the recipe shown by the card
func (rc *RecipeCard) Recipe() model.RecipeSummary {
	return rc.recipe
}

func (rc *RecipeCard) createUI() {
	placeholder := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	placeholder.SetMinSize(fyne.NewSize(CardWidth, CardImageHeight))
	placeholderIcon := canvas.NewText(IconPot, theme.Color(theme.ColorNamePlaceHolder))
	placeholderIcon.TextSize = theme.TextHeadingSize() * 2

	rc.image = canvas.NewImageFromResource(nil)
	rc.image.FillMode = canvas.ImageFillContain
	rc.image.SetMinSize(fyne.NewSize(CardWidth, CardImageHeight))

	rc.titleLabel = widget.NewLabel("")
	rc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	rc.titleLabel.Wrapping = fyne.TextWrapWord

	rc.metaLabel = widget.NewLabel("")
	rc.matchLabel = widget.NewLabel("")
	rc.matchLabel.Importance = widget.WarningImportance
	rc.likesLabel = widget.NewLabel("")
	rc.likesLabel.Importance = widget.LowImportance

	rc.badges = container.NewHBox()

	rc.heartBtn = widget.NewButton("", func() {
		if rc.onToggleFavorite != nil {
			rc.onToggleFavorite(rc.recipe)
		}
	})
	rc.viewBtn = widget.NewButton(rc.localization.GetText(KeyViewRecipe), func() {
		if rc.onView != nil {
			rc.onView(rc.recipe.ID)
		}
	})
	rc.viewBtn.Importance = widget.HighImportance

	imageArea := container.NewStack(placeholder, container.NewCenter(placeholderIcon), rc.image)
	actions := container.NewBorder(nil, nil, nil, rc.heartBtn, rc.viewBtn)
	details := container.NewVBox(rc.titleLabel, rc.badges, rc.metaLabel, rc.matchLabel, rc.likesLabel)

	background := canvas.NewRectangle(theme.Color(theme.ColorNameBackground))
	background.StrokeColor = theme.Color(theme.ColorNameSeparator)
	background.StrokeWidth = 1
	background.CornerRadius = theme.InputRadiusSize()

	rc.content = container.NewStack(background, container.NewPadded(
		container.NewBorder(imageArea, actions, nil, nil, details),
	))
}

func (rc *RecipeCard) updateFromRecipe() {
	rc.titleLabel.SetText(cleanText(rc.recipe.Title))

	rc.badges.RemoveAll()
	for _, label := range rc.recipe.DietLabels() {
		badge := widget.NewLabel(label)
		badge.Importance = widget.SuccessImportance
		badge.SizeName = theme.SizeNameCaptionText
		rc.badges.Add(badge)
	}

	setOptionalText(rc.metaLabel, formatMeta(rc.localization, rc.recipe.ReadyInMinutes, rc.recipe.Servings, KeyMinutesShort))

	match := ""
	if rc.recipe.HasIngredientMatch() {
		match = rc.localization.Format(KeyIngredientMatch, rc.recipe.UsedIngredientCount, rc.recipe.MissedIngredientCount)
	}
	setOptionalText(rc.matchLabel, match)
	setOptionalText(rc.likesLabel, formatLikes(rc.localization, rc.recipe.Likes))

	rc.updateHeart()
}

func (rc *RecipeCard) updateHeart() {
	if rc.saved {
		rc.heartBtn.SetText(IconHeart + " " + rc.localization.GetText(KeySaved))
		rc.heartBtn.Importance = widget.DangerImportance
	} else {
		rc.heartBtn.SetText(IconHeartOutline + " " + rc.localization.GetText(KeySave))
		rc.heartBtn.Importance = widget.MediumImportance
	}
	rc.heartBtn.Refresh()
}

func (rc *RecipeCard) loadImage() {
	if rc.images == nil || rc.recipe.Image == "" {
		return
	}
	imageURL := rc.recipe.Image
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), ImageTimeout)
		defer cancel()
		res, err := rc.images.Load(ctx, imageURL)
		if err != nil {
			// Placeholder stays
			return
		}
		fyne.Do(func() {
			rc.image.Resource = res
			rc.image.Refresh()
		})
	}()
}

// CreateRenderer creates the widget renderer
func (rc *RecipeCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(rc.content)
}

// formatMeta joins ready time and servings, skipping unknown values
func formatMeta(l *Localization, minutes, servings int, minutesKey string) string {
	var parts []string
	if minutes > 0 {
		parts = append(parts, IconClock+" "+l.Format(minutesKey, minutes))
	}
	if servings > 0 {
		parts = append(parts, IconServings+" "+l.Format(KeyServings, servings))
	}
	return strings.Join(parts, MiddleDotSeparator)
}

// formatLikes returns e.g. "1,234 likes", or "" for zero
func formatLikes(l *Localization, likes int) string {
	if likes <= 0 {
		return ""
	}
	return IconLikes + " " + l.Format(KeyLikes, humanize.Comma(int64(likes)))
}

// cleanText flattens control characters in API supplied titles
func cleanText(s string) string {
	s = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(s)
	return strings.TrimSpace(s)
}

// setOptionalText sets the label text and hides empty labels
func setOptionalText(label *widget.Label, text string) {
	label.SetText(text)
	if text == "" {
		label.Hide()
	} else {
		label.Show()
	}
}

// newSpacer returns a fixed-height transparent spacer
func newSpacer(height float32) fyne.CanvasObject {
	r := canvas.NewRectangle(color.Transparent)
	r.SetMinSize(fyne.NewSize(0, height))
	return r
}
