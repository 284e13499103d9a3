package ui

import (
	"context"
	"net/url"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/go-logr/logr"

	"github.com/ytget/recipe-finder/internal/config"
	"github.com/ytget/recipe-finder/internal/finder"
	"github.com/ytget/recipe-finder/internal/model"
)

// Notification timing
const (
	NotificationDuration = 3 * time.Second
	LogoSize             = 32
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	credentials  *config.CredentialStore
	coordinator  *finder.Coordinator
	images       ImageSource
	localization *Localization
	presenter    ModalPresenter
	log          logr.Logger

	// Header
	favoritesBtn *widget.Button
	apiKeyBtn    *widget.Button

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationTimer     *time.Timer

	// Search section
	keyCard          *fyne.Container
	searchSection    *fyne.Container
	modeTabs         *container.AppTabs
	textSearch       *SearchBar
	ingredientSearch *SearchBar
	filterBar        *FilterBar

	// Results section
	resultsHeading *widget.Label
	resultsTabs    *container.AppTabs
	resultGrid     *ResultGrid
	favoritesGrid  *ResultGrid

	// Modals
	detailModal    Modal
	detailView     *DetailView
	favoritesModal Modal
	favoritesPanel *FavoritesPanel

	// rendered tracks what the result grid shows, to avoid rebuilding cards
	renderedState     model.ResultState
	renderedResults   []model.RecipeSummary
	renderedErr       error
	renderedFavorites []model.RecipeSummary

	// syncing is set while widgets are updated from coordinator state
	syncing bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, credentials *config.CredentialStore, coordinator *finder.Coordinator, images ImageSource, log logr.Logger) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		credentials:  credentials,
		coordinator:  coordinator,
		images:       images,
		localization: localization,
		log:          log.WithName("ui"),
	}
	ui.presenter = NewAdaptivePresenter(window, func() string {
		return ui.localization.GetText(KeyClose)
	})

	// State changes may arrive from request goroutines
	coordinator.OnChange(func() { fyne.Do(ui.render) })
	credentials.OnChange(func(bool) { fyne.Do(ui.render) })

	ui.setupUI()
	ui.render()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	l := ui.localization

	// Set window title
	ui.window.SetTitle(l.GetText(KeyAppTitle))

	// Create menu
	ui.createMenu()

	// Header with logo, title, favorites and API key buttons
	logoImage := canvas.NewImageFromResource(LogoResource)
	logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
	logoImage.FillMode = canvas.ImageFillContain

	title := widget.NewLabelWithStyle(l.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	ui.favoritesBtn = widget.NewButtonWithIcon("", theme.ListIcon(), ui.showFavorites)
	ui.apiKeyBtn = widget.NewButtonWithIcon(l.GetText(KeyAPIKey), theme.SettingsIcon(), func() { ui.onShowSettings() })
	ui.apiKeyBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil,
		container.NewHBox(logoImage, title), container.NewHBox(ui.favoritesBtn, ui.apiKeyBtn))

	// Create notification panel under the header (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	tagline := widget.NewLabelWithStyle(l.GetText(KeyTagline), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	taglineDetail := widget.NewLabel(l.GetText(KeyTaglineDetail))
	taglineDetail.Alignment = fyne.TextAlignCenter
	taglineDetail.Wrapping = fyne.TextWrapWord

	// API key required card
	keyTitle := widget.NewLabelWithStyle(l.GetText(KeyAPIKeyRequired), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	keyTitle.Importance = widget.WarningImportance
	keyHint := widget.NewLabel(l.GetText(KeyAPIKeyRequiredHint))
	keyHint.Wrapping = fyne.TextWrapWord
	addKeyBtn := widget.NewButtonWithIcon(l.GetText(KeyAddAPIKey), theme.LoginIcon(), func() {
		sd := ui.onShowSettings()
		sd.FocusKey()
	})
	addKeyBtn.Importance = widget.WarningImportance
	ui.keyCard = container.NewVBox(keyTitle, keyHint, container.NewHBox(addKeyBtn))

	// Search bars, one per mode so each keeps its own text
	previousText, previousIngredients := "", ""
	if ui.textSearch != nil {
		previousText = ui.textSearch.entry.Text
		previousIngredients = ui.ingredientSearch.entry.Text
	}
	ui.textSearch = NewSearchBar(l.GetText(KeyRecipePlaceholder), l, ui.submit)
	ui.textSearch.SetText(previousText)
	ui.ingredientSearch = NewSearchBar(l.GetText(KeyIngredientPlaceholder), l, ui.submit)
	ui.ingredientSearch.SetText(previousIngredients)

	ui.filterBar = NewFilterBar(ui.coordinator.Snapshot().Filters, l, ui.applyFilters)

	ui.modeTabs = container.NewAppTabs(
		container.NewTabItem(l.GetText(KeySearchByRecipe), container.NewVBox(ui.textSearch.Object(), ui.filterBar.Object())),
		container.NewTabItem(l.GetText(KeySearchByIngredients), ui.ingredientSearch.Object()),
	)
	ui.modeTabs.OnSelected = func(*container.TabItem) {
		if ui.syncing {
			return
		}
		mode := model.SearchByText
		if ui.modeTabs.SelectedIndex() == 1 {
			mode = model.SearchByIngredient
		}
		ui.coordinator.SetMode(mode)
	}
	ui.searchSection = container.NewVBox(ui.modeTabs)

	// Results section
	ui.resultsHeading = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	ui.resultGrid = NewResultGrid(l, ui.images)
	ui.resultGrid.SetCallbacks(ui.openRecipe, ui.toggleFavorite)
	ui.favoritesGrid = NewResultGrid(l, ui.images)
	ui.favoritesGrid.SetCallbacks(ui.openRecipe, ui.toggleFavorite)
	ui.renderedState = ""
	ui.renderedResults = nil
	ui.renderedErr = nil
	ui.renderedFavorites = nil

	ui.resultsTabs = container.NewAppTabs(
		container.NewTabItem(l.GetText(KeySearchResults), ui.resultGrid.Object()),
		container.NewTabItem(l.Format(KeyFavoritesCount, 0), ui.favoritesGrid.Object()),
	)
	ui.resultsTabs.OnSelected = func(*container.TabItem) {
		if ui.syncing {
			return
		}
		view := model.ViewSearch
		if ui.resultsTabs.SelectedIndex() == 1 {
			view = model.ViewFavorites
		}
		ui.coordinator.SetView(view)
	}

	// Footer
	spoonacularURL, _ := url.Parse(SpoonacularHomeURL)
	poweredBy := widget.NewLabel(l.GetText(KeyPoweredBy))
	poweredBy.Importance = widget.LowImportance
	footer := container.NewCenter(container.NewHBox(poweredBy, widget.NewHyperlink("Spoonacular API", spoonacularURL)))

	top := container.NewVBox(
		header,
		ui.notificationContainer,
		tagline,
		taglineDetail,
		ui.keyCard,
		ui.searchSection,
		widget.NewSeparator(),
		ui.resultsHeading,
	)

	// Create main layout
	content := container.NewBorder(
		top,            // top
		footer,         // bottom
		nil,            // left
		nil,            // right
		ui.resultsTabs, // center
	)

	ui.window.SetContent(content)
	ui.log.V(1).Info("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), func() { ui.onShowSettings() })
	favoritesItem := fyne.NewMenuItem(ui.localization.GetText(KeyFavoriteRecipes), ui.showFavorites)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for _, code := range []string{"en", "ru", "pt"} {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyAppTitle), favoritesItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.rebuild()
}

// rebuild recreates every widget with the current language
func (ui *RootUI) rebuild() {
	ui.closeDetail()
	ui.closeFavorites()
	ui.setupUI()
	ui.render()
}

// render brings every widget in line with the coordinator state
func (ui *RootUI) render() {
	st := ui.coordinator.Snapshot()
	hasKey := ui.coordinator.HasCredential()
	favCount := ui.coordinator.FavoriteCount()
	l := ui.localization

	ui.syncing = true
	defer func() { ui.syncing = false }()

	// Header
	ui.favoritesBtn.SetText(l.Format(KeyFavoritesCount, favCount))

	// Search section
	if hasKey {
		ui.keyCard.Hide()
		ui.searchSection.Show()
	} else {
		ui.keyCard.Show()
		ui.searchSection.Hide()
	}
	ui.textSearch.SetBusy(st.Loading)
	ui.ingredientSearch.SetBusy(st.Loading)

	modeIndex := 0
	if st.Mode == model.SearchByIngredient {
		modeIndex = 1
	}
	if ui.modeTabs.SelectedIndex() != modeIndex {
		ui.modeTabs.SelectIndex(modeIndex)
	}

	// Results section
	ui.resultsTabs.Items[1].Text = l.Format(KeyFavoritesCount, favCount)
	viewIndex := 0
	if st.View == model.ViewFavorites {
		viewIndex = 1
	}
	if ui.resultsTabs.SelectedIndex() != viewIndex {
		ui.resultsTabs.SelectIndex(viewIndex)
	}
	ui.resultsTabs.Refresh()
	ui.resultsHeading.SetText(ui.heading(st))

	state := st.ResultState()
	if state != ui.renderedState || st.Err != ui.renderedErr || !sameRecipes(st.Results, ui.renderedResults) {
		idle := l.GetText(KeyStartSearching)
		if !hasKey {
			idle = l.GetText(KeyAddKeyToStart)
		}
		ui.resultGrid.Render(state, st.Results, st.Err, idle, ui.coordinator.IsFavorite)
		ui.renderedState = state
		ui.renderedResults = st.Results
		ui.renderedErr = st.Err
	} else {
		ui.resultGrid.UpdateFavorites(ui.coordinator.IsFavorite)
	}

	favorites := ui.coordinator.Favorites()
	if ui.renderedFavorites == nil || !sameRecipes(favorites, ui.renderedFavorites) {
		favState := model.ResultReady
		if len(favorites) == 0 {
			favState = model.ResultIdle
		}
		ui.favoritesGrid.Render(favState, favorites, nil, l.GetText(KeyNoFavoritesHint), ui.coordinator.IsFavorite)
		ui.renderedFavorites = append([]model.RecipeSummary{}, favorites...)
	}
	if ui.favoritesPanel != nil {
		ui.favoritesPanel.Update(favorites)
	}

	// Detail
	if st.DetailOpen && st.Detail != nil {
		if ui.detailView == nil || ui.detailView.RecipeID() != st.Detail.ID {
			ui.closeDetail()
			ui.showDetail(*st.Detail)
		} else {
			ui.detailView.SetSaved(ui.coordinator.IsFavorite(st.Detail.ID))
		}
	} else {
		ui.closeDetail()
	}
}

// heading returns the text above the results
func (ui *RootUI) heading(st finder.State) string {
	l := ui.localization
	switch {
	case st.View == model.ViewFavorites:
		return l.GetText(KeyMyFavorites)
	case st.Searched && st.QueryMode == model.SearchByIngredient:
		return l.Format(KeyIngredientResults, st.Query)
	case st.Searched:
		return l.Format(KeyRecipeResults, st.Query)
	default:
		return l.GetText(KeySearchResults)
	}
}

// submit runs a search off the UI goroutine
func (ui *RootUI) submit(text string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), SearchTimeout)
		defer cancel()
		ui.coordinator.Submit(ctx, text)
	}()
}

// applyFilters stores the filters and re-runs the current text search
func (ui *RootUI) applyFilters(filters model.FilterState) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), SearchTimeout)
		defer cancel()
		ui.coordinator.ApplyFilters(ctx, filters)
	}()
}

// openRecipe fetches and opens a recipe's detail
func (ui *RootUI) openRecipe(id int) {
	ui.closeFavorites()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), SearchTimeout)
		defer cancel()
		ui.coordinator.Select(ctx, id)
	}()
}

func (ui *RootUI) toggleFavorite(recipe model.RecipeSummary) {
	ui.coordinator.ToggleFavorite(recipe)
}

func (ui *RootUI) showDetail(detail model.RecipeDetail) {
	ui.detailView = NewDetailView(detail, ui.coordinator.IsFavorite(detail.ID), ui.localization, ui.images, ui.toggleFavorite)

	var m Modal
	m = ui.presenter.Present(cleanText(detail.Title), ui.detailView.Object(), func() {
		// Only a dismissal by the user closes the detail in the coordinator
		if ui.detailModal == m {
			ui.detailModal = nil
			ui.detailView = nil
			ui.coordinator.CloseDetail()
		}
	})
	ui.detailModal = m
}

// closeDetail hides the detail modal without touching the coordinator
func (ui *RootUI) closeDetail() {
	m := ui.detailModal
	ui.detailModal = nil
	ui.detailView = nil
	if m != nil {
		m.Dismiss()
	}
}

// showFavorites presents the favorites panel
func (ui *RootUI) showFavorites() {
	if ui.favoritesModal != nil {
		return
	}
	ui.favoritesPanel = NewFavoritesPanel(ui.localization, ui.openRecipe, ui.coordinator.RemoveFavorite)
	ui.favoritesPanel.Update(ui.coordinator.Favorites())

	var m Modal
	m = ui.presenter.Present(ui.localization.GetText(KeyFavoriteRecipes), ui.favoritesPanel.Object(), func() {
		if ui.favoritesModal == m {
			ui.favoritesModal = nil
			ui.favoritesPanel = nil
		}
	})
	ui.favoritesModal = m
}

func (ui *RootUI) closeFavorites() {
	m := ui.favoritesModal
	ui.favoritesModal = nil
	ui.favoritesPanel = nil
	if m != nil {
		m.Dismiss()
	}
}

// showNotification displays a message in the notification panel under the header
func (ui *RootUI) showNotification(message string) {
	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()

	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
	}
	ui.notificationTimer = time.AfterFunc(NotificationDuration, func() {
		fyne.Do(ui.notificationContainer.Hide)
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() *SettingsDialog {
	sd := NewSettingsDialog(ui.settings, ui.credentials, ui.localization, ui.window,
		func() {
			if ui.credentials.HasCredential() {
				ui.showNotification(ui.localization.GetText(KeyKeySaved))
			} else {
				ui.showNotification(ui.localization.GetText(KeyKeyCleared))
			}
		},
		ui.onSettingsSaved,
	)
	sd.Show()
	return sd
}

// onSettingsSaved applies stored settings to the running app
func (ui *RootUI) onSettingsSaved() {
	ui.coordinator.SetPageSize(ui.settings.GetResultsPerPage())

	lang := ui.settings.GetLanguage()
	if lang == "system" {
		lang = "en"
	}
	if lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.rebuild()
	}
	ui.showNotification(ui.localization.GetText(KeySettingsSaved))
}

// sameRecipes compares result lists by recipe id
func sameRecipes(a, b []model.RecipeSummary) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
