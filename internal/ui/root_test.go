package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/go-logr/logr"
	"golang.org/x/time/rate"

	"github.com/ytget/recipe-finder/internal/config"
	"github.com/ytget/recipe-finder/internal/favorites"
	"github.com/ytget/recipe-finder/internal/finder"
	"github.com/ytget/recipe-finder/internal/model"
	"github.com/ytget/recipe-finder/internal/spoonacular"
)

type rootFixture struct {
	ui          *RootUI
	window      fyne.Window
	settings    *config.Settings
	credentials *config.CredentialStore
	coordinator *finder.Coordinator
}

func newRootFixture(t *testing.T) *rootFixture {
	t.Helper()

	app := test.NewTempApp(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/recipes/complexSearch":
			_, _ = w.Write([]byte(`{"results":[{"id":1,"title":"Pasta"},{"id":2,"title":"Pesto"}],"totalResults":2}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	settings := config.NewSettings(app)
	creds := config.NewCredentialStore(settings.Preferences())
	favs := favorites.NewStore(settings.Preferences(), logr.Discard())
	client := spoonacular.NewClient(
		spoonacular.WithBaseURL(srv.URL),
		spoonacular.WithHTTPClient(srv.Client()),
		spoonacular.WithRateLimit(rate.Inf, 1),
		spoonacular.WithLogger(logr.Discard()),
	)
	coordinator := finder.NewCoordinator(client, creds, favs, settings.GetResultsPerPage(), logr.Discard())

	w := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(w.Close)

	return &rootFixture{
		ui:          NewRootUI(w, settings, creds, coordinator, nil, logr.Discard()),
		window:      w,
		settings:    settings,
		credentials: creds,
		coordinator: coordinator,
	}
}

func TestRootUI_WithoutCredential(t *testing.T) {
	f := newRootFixture(t)

	if !f.ui.keyCard.Visible() || f.ui.searchSection.Visible() {
		t.Error("the API key card should replace the search section")
	}
	if f.ui.resultGrid.detailLabel.Text != f.ui.localization.GetText(KeyAddKeyToStart) {
		t.Errorf("unexpected idle text %q", f.ui.resultGrid.detailLabel.Text)
	}
	if f.window.Title() != "Recipe Finder" {
		t.Errorf("unexpected title %q", f.window.Title())
	}
}

func TestRootUI_SearchAndFavorite(t *testing.T) {
	f := newRootFixture(t)

	f.credentials.Set("test-key")
	f.ui.render()
	if f.ui.keyCard.Visible() || !f.ui.searchSection.Visible() {
		t.Fatal("search section should show once a key is set")
	}

	f.coordinator.Submit(context.Background(), "pasta")
	f.ui.render()

	if f.ui.resultGrid.CardCount() != 2 {
		t.Fatalf("expected 2 cards, got %d", f.ui.resultGrid.CardCount())
	}
	if f.ui.resultsHeading.Text != `Recipe Results: "pasta"` {
		t.Errorf("unexpected heading %q", f.ui.resultsHeading.Text)
	}

	test.Tap(f.ui.resultGrid.cards[0].heartBtn)
	f.ui.render()

	if f.ui.favoritesBtn.Text != "Favorites (1)" {
		t.Errorf("unexpected favorites button %q", f.ui.favoritesBtn.Text)
	}
	if f.ui.resultsTabs.Items[1].Text != "Favorites (1)" {
		t.Errorf("unexpected favorites tab %q", f.ui.resultsTabs.Items[1].Text)
	}
	if f.ui.favoritesGrid.CardCount() != 1 {
		t.Errorf("expected 1 favorite card, got %d", f.ui.favoritesGrid.CardCount())
	}
	if !f.ui.resultGrid.cards[0].saved {
		t.Error("heart should show the saved state")
	}
}

func TestRootUI_TabsDriveCoordinator(t *testing.T) {
	f := newRootFixture(t)
	f.credentials.Set("test-key")

	f.ui.modeTabs.SelectIndex(1)
	if f.coordinator.Snapshot().Mode != model.SearchByIngredient {
		t.Error("mode tab should switch the search mode")
	}

	f.ui.resultsTabs.SelectIndex(1)
	f.ui.render()
	if f.coordinator.Snapshot().View != model.ViewFavorites {
		t.Error("results tab should switch the view")
	}
	if f.ui.resultsHeading.Text != "My Favorite Recipes" {
		t.Errorf("unexpected heading %q", f.ui.resultsHeading.Text)
	}
}

func TestRootUI_LanguageChangeKeepsText(t *testing.T) {
	f := newRootFixture(t)
	f.credentials.Set("test-key")

	f.ui.textSearch.SetText("soup")
	f.ui.onLanguageChange("ru")

	if f.window.Title() != "Поиск рецептов" {
		t.Errorf("unexpected title %q", f.window.Title())
	}
	if f.ui.textSearch.Text() != "soup" {
		t.Errorf("search text lost, got %q", f.ui.textSearch.Text())
	}
	if f.settings.GetLanguage() != "ru" {
		t.Errorf("language not stored, got %q", f.settings.GetLanguage())
	}
}

func TestSettingsDialog_KeyAndPreferences(t *testing.T) {
	app := test.NewTempApp(t)
	settings := config.NewSettings(app)
	creds := config.NewCredentialStore(settings.Preferences())
	w := test.NewWindow(widget.NewLabel(""))
	defer w.Close()

	changed, saved := 0, 0
	sd := NewSettingsDialog(settings, creds, NewLocalization(), w, func() { changed++ }, func() { saved++ })
	sd.Show()

	if !sd.saveKeyBtn.Disabled() || sd.clearKeyBtn.Visible() || sd.keyStatus.Visible() {
		t.Error("without a key only the entry should be active")
	}

	sd.keyEntry.SetText("  abc123 ")
	if sd.saveKeyBtn.Disabled() {
		t.Fatal("save should enable after typing")
	}
	test.Tap(sd.saveKeyBtn)
	if key, ok := creds.Credential(); !ok || key != "abc123" {
		t.Errorf("expected trimmed key, got %q", key)
	}
	if changed != 1 || !sd.keyStatus.Visible() {
		t.Error("saving should report the change and show the status")
	}

	test.Tap(sd.revealBtn)
	if sd.keyEntry.Password || sd.revealBtn.Text != "Hide" {
		t.Error("reveal should show the key")
	}

	test.Tap(sd.clearKeyBtn)
	if creds.HasCredential() || sd.keyEntry.Text != "" || changed != 2 {
		t.Error("clear should remove the key")
	}

	sd.pageSizeSelect.SetSelected("24")
	sd.languageSelect.SetSelected("Português")
	sd.onSave(false)
	if saved != 0 || settings.GetResultsPerPage() != config.DefaultResultsPerPage {
		t.Error("cancel must not store settings")
	}

	sd.onSave(true)
	if saved != 1 {
		t.Errorf("expected one save callback, got %d", saved)
	}
	if settings.GetResultsPerPage() != 24 || settings.GetLanguage() != "pt" {
		t.Errorf("unexpected stored settings: %d %q", settings.GetResultsPerPage(), settings.GetLanguage())
	}
}
