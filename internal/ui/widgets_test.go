package ui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipe-finder/internal/model"
	"github.com/ytget/recipe-finder/internal/spoonacular"
)

func TestSearchBar_SubmitAndBusy(t *testing.T) {
	test.NewTempApp(t)

	var submitted []string
	sb := NewSearchBar("placeholder", NewLocalization(), func(text string) {
		submitted = append(submitted, text)
	})

	if !sb.submitBtn.Disabled() {
		t.Error("submit should be disabled for blank text")
	}
	sb.Submit()
	if len(submitted) != 0 {
		t.Fatal("blank text must not be submitted")
	}

	sb.SetText("  pasta  ")
	test.Tap(sb.submitBtn)
	if len(submitted) != 1 || submitted[0] != "pasta" {
		t.Fatalf("expected [pasta], got %v", submitted)
	}

	sb.SetBusy(true)
	if !sb.submitBtn.Disabled() {
		t.Error("submit should be disabled while busy")
	}
	sb.Submit()
	if len(submitted) != 1 {
		t.Error("busy bar must not submit")
	}

	sb.SetBusy(false)
	test.Tap(sb.clearBtn)
	if sb.Text() != "" {
		t.Errorf("expected cleared text, got %q", sb.Text())
	}
	if !sb.submitBtn.Disabled() {
		t.Error("submit should be disabled after clear")
	}
}

func TestFilterBar_ApplyRemoveClear(t *testing.T) {
	test.NewTempApp(t)

	var applied []model.FilterState
	fb := NewFilterBar(model.EmptyFilters(), NewLocalization(), func(f model.FilterState) {
		applied = append(applied, f)
	})

	fb.Open()
	if !fb.IsOpen() {
		t.Fatal("panel should be open")
	}

	fb.dietGroup.SetSelected(model.DietVegan.Label())
	test.Tap(fb.intolerance[model.IntoleranceDairy])
	fb.readyGroup.SetSelected(model.ReadyTimeLabel(30))
	if len(applied) != 0 {
		t.Fatal("draft edits must not be applied")
	}

	test.Tap(fb.applyBtn)
	if len(applied) != 1 {
		t.Fatalf("expected one apply, got %d", len(applied))
	}
	got := applied[0]
	if got.Diet != model.DietVegan || !got.HasIntolerance(model.IntoleranceDairy) || got.MaxReadyTime != 30 {
		t.Errorf("unexpected applied filters %+v", got)
	}
	if fb.IsOpen() {
		t.Error("apply should close the panel")
	}
	if fb.toggleBtn.Text != "Filters (3)" {
		t.Errorf("unexpected button text %q", fb.toggleBtn.Text)
	}
	if len(fb.badges.Objects) != 3 {
		t.Fatalf("expected 3 badges, got %d", len(fb.badges.Objects))
	}

	// The first badge is the diet
	test.Tap(fb.badges.Objects[0].(*widget.Button))
	if len(applied) != 2 || applied[1].Diet != model.DietNone {
		t.Fatalf("badge removal should apply at once, got %+v", applied)
	}
	if len(fb.badges.Objects) != 2 {
		t.Errorf("expected 2 badges, got %d", len(fb.badges.Objects))
	}

	fb.Open()
	test.Tap(fb.clearBtn)
	if len(applied) != 3 || !applied[2].IsEmpty() {
		t.Fatalf("clear should apply empty filters, got %+v", applied)
	}
	if fb.toggleBtn.Text != "Filters" {
		t.Errorf("unexpected button text %q", fb.toggleBtn.Text)
	}
	if len(fb.badges.Objects) != 0 {
		t.Errorf("expected no badges, got %d", len(fb.badges.Objects))
	}
}

func TestFilterBar_CloseDiscardsDraft(t *testing.T) {
	test.NewTempApp(t)

	fb := NewFilterBar(model.FilterState{Diet: model.DietKetogenic}, NewLocalization(), nil)

	fb.Open()
	if fb.dietGroup.Selected != model.DietKetogenic.Label() {
		t.Errorf("panel should show the applied diet, got %q", fb.dietGroup.Selected)
	}
	fb.dietGroup.SetSelected(model.DietPaleo.Label())
	fb.Close()

	if d := fb.Editor().Applied().Diet; d != model.DietKetogenic {
		t.Errorf("applied diet changed to %q", d)
	}
	if d := fb.Editor().Draft().Diet; d != model.DietKetogenic {
		t.Errorf("draft should be reset, got %q", d)
	}
}

func TestFilterBar_BadgeRemovalKeepsOpenPanelEdits(t *testing.T) {
	test.NewTempApp(t)

	initial := model.FilterState{Diet: model.DietVegan, Intolerances: []model.Intolerance{model.IntoleranceDairy}}
	fb := NewFilterBar(initial, NewLocalization(), nil)

	fb.Open()
	fb.readyGroup.SetSelected(model.ReadyTimeLabel(60))

	// The first badge is the diet
	test.Tap(fb.badges.Objects[0].(*widget.Button))

	if !fb.IsOpen() {
		t.Fatal("badge removal should not close the panel")
	}
	if fb.dietGroup.Selected != model.DietNone.Label() {
		t.Errorf("panel should drop the removed diet, got %q", fb.dietGroup.Selected)
	}
	if fb.readyGroup.Selected != model.ReadyTimeLabel(60) {
		t.Errorf("pending ready time lost, got %q", fb.readyGroup.Selected)
	}
	if !fb.intolerance[model.IntoleranceDairy].Checked {
		t.Error("untouched intolerance should stay checked")
	}
	if fb.Editor().Applied().MaxReadyTime != model.NoTimeLimit {
		t.Error("pending ready time must not be applied by a badge removal")
	}
}

func TestResultGrid_States(t *testing.T) {
	test.NewTempApp(t)
	g := NewResultGrid(NewLocalization(), nil)

	g.Render(model.ResultIdle, nil, nil, "Search for recipes to get started!", nil)
	if g.detailLabel.Text != "Search for recipes to get started!" {
		t.Errorf("unexpected idle text %q", g.detailLabel.Text)
	}

	g.Render(model.ResultLoading, nil, nil, "", nil)
	if !g.progress.Visible() || g.State() != model.ResultLoading {
		t.Error("loading should show the progress bar")
	}

	g.Render(model.ResultError, nil, &spoonacular.HTTPError{StatusCode: 402}, "", nil)
	if g.progress.Visible() {
		t.Error("progress should hide after loading")
	}
	if g.titleLabel.Text != "Something went wrong" {
		t.Errorf("unexpected error title %q", g.titleLabel.Text)
	}
	if !strings.Contains(g.detailLabel.Text, "API Error: 402") || !strings.Contains(g.detailLabel.Text, "quota") {
		t.Errorf("unexpected error detail %q", g.detailLabel.Text)
	}

	g.Render(model.ResultEmpty, nil, nil, "", nil)
	if g.titleLabel.Text != "No recipes found" {
		t.Errorf("unexpected empty title %q", g.titleLabel.Text)
	}

	results := []model.RecipeSummary{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}, {ID: 3, Title: "C"}}
	g.Render(model.ResultReady, results, nil, "", func(id int) bool { return id == 2 })
	if g.CardCount() != 3 {
		t.Fatalf("expected 3 cards, got %d", g.CardCount())
	}
	if g.message.Visible() || !g.scroll.Visible() {
		t.Error("cards should replace the message")
	}
	if !g.cards[1].saved || g.cards[0].saved {
		t.Error("hearts should follow isFavorite")
	}

	g.UpdateFavorites(func(int) bool { return false })
	if g.cards[1].saved {
		t.Error("UpdateFavorites should clear the heart")
	}
}

func TestRecipeCard_Content(t *testing.T) {
	test.NewTempApp(t)
	l := NewLocalization()

	recipe := model.RecipeSummary{
		ID: 7, Title: "Tomato\nSoup ", ReadyInMinutes: 45, Servings: 4, Likes: 1234, Vegan: true,
	}
	card := NewRecipeCard(recipe, false, l, nil)

	var viewed int
	var toggled []int
	card.SetCallbacks(func(id int) { viewed = id }, func(r model.RecipeSummary) { toggled = append(toggled, r.ID) })

	if card.titleLabel.Text != "Tomato Soup" {
		t.Errorf("unexpected title %q", card.titleLabel.Text)
	}
	if card.metaLabel.Text != IconClock+" 45 min · "+IconServings+" 4 servings" {
		t.Errorf("unexpected meta %q", card.metaLabel.Text)
	}
	if card.likesLabel.Text != IconLikes+" 1,234 likes" {
		t.Errorf("unexpected likes %q", card.likesLabel.Text)
	}
	if card.matchLabel.Visible() {
		t.Error("match counts are only shown for ingredient results")
	}
	if len(card.badges.Objects) != 1 {
		t.Errorf("expected one diet badge, got %d", len(card.badges.Objects))
	}

	test.Tap(card.heartBtn)
	if len(toggled) != 1 || toggled[0] != 7 {
		t.Errorf("heart should report the recipe, got %v", toggled)
	}
	card.SetSaved(true)
	if card.heartBtn.Text != IconHeart+" Saved" {
		t.Errorf("unexpected heart text %q", card.heartBtn.Text)
	}

	test.Tap(card.viewBtn)
	if viewed != 7 {
		t.Errorf("expected view of 7, got %d", viewed)
	}
}

func TestRecipeCard_IngredientMatch(t *testing.T) {
	test.NewTempApp(t)

	card := NewRecipeCard(model.RecipeSummary{ID: 3, Title: "Omelette", UsedIngredientCount: 3, MissedIngredientCount: 2}, false, NewLocalization(), nil)
	if !card.matchLabel.Visible() || card.matchLabel.Text != "3 used · 2 missing" {
		t.Errorf("unexpected match label %q", card.matchLabel.Text)
	}
	if card.metaLabel.Visible() {
		t.Error("meta should hide without time or servings")
	}
}

func TestFormatIngredient(t *testing.T) {
	tests := []struct {
		name     string
		in       model.Ingredient
		expected string
	}{
		{"amount unit name", model.Ingredient{Amount: 1.5, Unit: "cups", Name: "flour"}, "1.5 cups flour"},
		{"whole amount", model.Ingredient{Amount: 2, Name: "eggs"}, "2 eggs"},
		{"rounded", model.Ingredient{Amount: 0.333333, Unit: "tsp", Name: "salt"}, "0.33 tsp salt"},
		{"original fallback", model.Ingredient{Original: "pepper to taste"}, "pepper to taste"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatIngredient(tt.in); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDetailView(t *testing.T) {
	test.NewTempApp(t)
	l := NewLocalization()

	detail := model.RecipeDetail{
		RecipeSummary: model.RecipeSummary{ID: 9, Title: "Risotto", SourceURL: "https://www.example.com/risotto"},
		ExtendedIngredients: []model.Ingredient{
			{Amount: 1, Unit: "cup", Name: "rice"},
			{Amount: 2, Unit: "cups", Name: "stock"},
		},
	}

	var toggled int
	dv := NewDetailView(detail, true, l, nil, func(r model.RecipeSummary) { toggled = r.ID })

	if dv.sourceURL == nil || dv.sourceURL.Text != "View Original "+IconLink+" example.com" {
		t.Fatalf("unexpected source link %+v", dv.sourceURL)
	}
	if dv.favBtn.Text != IconHeart+" Saved" {
		t.Errorf("unexpected favorite text %q", dv.favBtn.Text)
	}
	test.Tap(dv.favBtn)
	if toggled != 9 {
		t.Errorf("expected toggle of 9, got %d", toggled)
	}

	if len(dv.tabs.Items) != 2 {
		t.Fatalf("expected 2 tabs, got %d", len(dv.tabs.Items))
	}
	list, ok := dv.tabs.Items[0].Content.(*fyne.Container)
	if !ok || len(list.Objects) != 2 {
		t.Errorf("expected two ingredient lines")
	}
	instructions, ok := dv.tabs.Items[1].Content.(*widget.Label)
	if !ok || instructions.Text != l.GetText(KeyNoInstructions) {
		t.Errorf("missing instructions should show the fallback text")
	}
}

func TestDetailView_RejectsUnsafeLinks(t *testing.T) {
	test.NewTempApp(t)

	detail := model.RecipeDetail{RecipeSummary: model.RecipeSummary{ID: 1, SourceURL: "javascript:alert(1)"}}
	dv := NewDetailView(detail, false, NewLocalization(), nil, nil)
	if dv.sourceURL != nil {
		t.Error("non-http links must not be rendered")
	}
}

func TestFavoritesPanel(t *testing.T) {
	test.NewTempApp(t)

	var opened, removed int
	fp := NewFavoritesPanel(NewLocalization(), func(id int) { opened = id }, func(id int) { removed = id })

	fp.Update(nil)
	if !fp.empty.Visible() || fp.list.Visible() {
		t.Error("empty state should show without favorites")
	}

	fp.Update([]model.RecipeSummary{{ID: 4, Title: "Pie"}, {ID: 5, Title: "Tart"}})
	if fp.Len() != 2 || fp.empty.Visible() {
		t.Fatal("favorites should be listed")
	}

	fp.list.Select(1)
	if opened != 5 {
		t.Errorf("expected open of 5, got %d", opened)
	}
	fp.onRemove(4)
	if removed != 4 {
		t.Errorf("expected remove of 4, got %d", removed)
	}
}

func TestSameRecipes(t *testing.T) {
	a := []model.RecipeSummary{{ID: 1}, {ID: 2}}
	tests := []struct {
		name     string
		b        []model.RecipeSummary
		expected bool
	}{
		{"same ids", []model.RecipeSummary{{ID: 1, Title: "x"}, {ID: 2}}, true},
		{"different order", []model.RecipeSummary{{ID: 2}, {ID: 1}}, false},
		{"different length", []model.RecipeSummary{{ID: 1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameRecipes(a, tt.b); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
