package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipe-finder/internal/model"
	"github.com/ytget/recipe-finder/internal/spoonacular"
)

// ResultGrid renders one of the result section states: idle, loading,
// error, empty, or a grid of recipe cards
type ResultGrid struct {
	localization *Localization
	images       ImageSource

	state model.ResultState
	cards []*RecipeCard

	progress    *widget.ProgressBarInfinite
	titleLabel  *widget.Label
	detailLabel *widget.Label
	message     *fyne.Container
	grid        *fyne.Container
	scroll      *container.Scroll
	root        *fyne.Container

	onView           func(id int)
	onToggleFavorite func(recipe model.RecipeSummary)
}

// NewResultGrid creates an empty result grid
func NewResultGrid(localization *Localization, images ImageSource) *ResultGrid {
	g := &ResultGrid{
		localization: localization,
		images:       images,
		state:        model.ResultIdle,
	}

	g.progress = widget.NewProgressBarInfinite()
	g.progress.Stop()
	g.progress.Hide()

	g.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	g.detailLabel = widget.NewLabel("")
	g.detailLabel.Alignment = fyne.TextAlignCenter
	g.detailLabel.Wrapping = fyne.TextWrapWord

	g.message = container.NewVBox(newSpacer(MinTouchTargetSize), g.progress, g.titleLabel, g.detailLabel)
	g.grid = container.NewGridWrap(fyne.NewSize(CardWidth, CardHeight))
	g.scroll = container.NewVScroll(g.grid)
	g.scroll.Hide()

	g.root = container.NewStack(g.message, g.scroll)
	return g
}

// SetCallbacks sets the callbacks passed on to every card
func (g *ResultGrid) SetCallbacks(onView func(id int), onToggleFavorite func(recipe model.RecipeSummary)) {
	g.onView = onView
	g.onToggleFavorite = onToggleFavorite
	for _, card := range g.cards {
		card.SetCallbacks(onView, onToggleFavorite)
	}
}

// Object returns the canvas object to place in a layout
func (g *ResultGrid) Object() fyne.CanvasObject {
	return g.root
}

// State returns the state last rendered
func (g *ResultGrid) State() model.ResultState {
	return g.state
}

// CardCount returns the number of cards currently shown
func (g *ResultGrid) CardCount() int {
	return len(g.cards)
}

// Render shows the given state. idleText is used for model.ResultIdle; err
// for model.ResultError. isFavorite decides each card's heart.
func (g *ResultGrid) Render(state model.ResultState, results []model.RecipeSummary, err error, idleText string, isFavorite func(id int) bool) {
	g.state = state

	if state != model.ResultLoading {
		g.progress.Stop()
		g.progress.Hide()
	}

	switch state {
	case model.ResultLoading:
		g.showMessage(g.localization.GetText(KeyLoading), "")
		g.progress.Show()
		g.progress.Start()
	case model.ResultError:
		g.showMessage(g.localization.GetText(KeySomethingWrong), errorDetail(g.localization, err))
		g.titleLabel.Importance = widget.DangerImportance
		g.titleLabel.Refresh()
	case model.ResultEmpty:
		g.showMessage(g.localization.GetText(KeyNoRecipes), g.localization.GetText(KeyNoRecipesHint))
	case model.ResultReady:
		g.showCards(results, isFavorite)
	default:
		g.showMessage("", idleText)
	}
}

// UpdateFavorites refreshes the hearts without rebuilding the cards
func (g *ResultGrid) UpdateFavorites(isFavorite func(id int) bool) {
	for _, card := range g.cards {
		card.SetSaved(isFavorite != nil && isFavorite(card.Recipe().ID))
	}
}

func (g *ResultGrid) showMessage(title, detail string) {
	g.cards = nil
	g.grid.RemoveAll()
	g.scroll.Hide()

	g.titleLabel.Importance = widget.MediumImportance
	setOptionalText(g.titleLabel, title)
	setOptionalText(g.detailLabel, detail)
	g.message.Show()
}

func (g *ResultGrid) showCards(results []model.RecipeSummary, isFavorite func(id int) bool) {
	g.message.Hide()
	g.grid.RemoveAll()
	g.cards = g.cards[:0]

	for _, r := range results {
		saved := isFavorite != nil && isFavorite(r.ID)
		card := NewRecipeCard(r, saved, g.localization, g.images)
		card.SetCallbacks(g.onView, g.onToggleFavorite)
		g.cards = append(g.cards, card)
		g.grid.Add(card)
	}

	g.scroll.Show()
	g.scroll.ScrollToTop()
}

// errorDetail turns a fetch error into the message under the error heading
func errorDetail(l *Localization, err error) string {
	switch {
	case err == nil:
		return l.GetText(KeyFetchErrorFallback)
	case spoonacular.IsQuotaExceeded(err):
		return err.Error() + "\n" + l.GetText(KeyQuotaHint)
	case spoonacular.IsUnauthorized(err):
		return err.Error() + "\n" + l.GetText(KeyUnauthorizedHint)
	default:
		return err.Error()
	}
}
