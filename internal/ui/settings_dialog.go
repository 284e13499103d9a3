package ui

import (
	"net/url"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipe-finder/internal/config"
)

// CredentialEditor reads and changes the stored API key
type CredentialEditor interface {
	Credential() (string, bool)
	Set(key string)
	Clear()
}

// Settings dialog size constants
const (
	SettingsDialogWidth  = 520
	SettingsDialogHeight = 520
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	credentials  CredentialEditor
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	keyEntry       *widget.Entry
	revealBtn      *widget.Button
	saveKeyBtn     *widget.Button
	clearKeyBtn    *widget.Button
	keyStatus      *widget.Label
	pageSizeSelect *widget.Select
	languageSelect *widget.Select
	form           *fyne.Container

	// languageCodes maps select labels back to language codes
	languageCodes map[string]string

	onCredentialChanged func()
	onSaved             func()
}

// NewSettingsDialog creates a new settings dialog. onCredentialChanged runs
// after Save Key or Clear Key; onSaved after the other settings are stored.
func NewSettingsDialog(settings *config.Settings, credentials CredentialEditor, localization *Localization, window fyne.Window, onCredentialChanged, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:            settings,
		credentials:         credentials,
		localization:        localization,
		window:              window,
		languageCodes:       make(map[string]string),
		onCredentialChanged: onCredentialChanged,
		onSaved:             onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// FocusKey moves keyboard focus to the API key entry
func (sd *SettingsDialog) FocusKey() {
	sd.window.Canvas().Focus(sd.keyEntry)
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// API key section
	sd.keyEntry = widget.NewPasswordEntry()
	sd.keyEntry.SetPlaceHolder(l.GetText(KeyAPIKeyPlaceholder))
	sd.keyEntry.OnChanged = func(string) { sd.updateKeyButtons() }
	sd.keyEntry.OnSubmitted = func(string) { sd.saveKey() }

	sd.revealBtn = widget.NewButton(l.GetText(KeyShow), sd.toggleReveal)
	sd.saveKeyBtn = widget.NewButton(l.GetText(KeySaveKey), sd.saveKey)
	sd.saveKeyBtn.Importance = widget.HighImportance
	sd.clearKeyBtn = widget.NewButton(l.GetText(KeyClearKey), sd.clearKey)
	sd.clearKeyBtn.Importance = widget.DangerImportance

	sd.keyStatus = widget.NewLabel(l.GetText(KeyKeyIsSet))
	sd.keyStatus.Importance = widget.SuccessImportance

	description := widget.NewLabel(l.GetText(KeyAPIKeyDescription))
	description.Wrapping = fyne.TextWrapWord
	getOne := widget.NewLabel(l.GetText(KeyAPIKeyGetOne))
	getOne.Wrapping = fyne.TextWrapWord
	signupURL, _ := url.Parse(SpoonacularSignupURL)
	signup := widget.NewHyperlink("spoonacular.com", signupURL)

	keyRow := container.NewBorder(nil, nil, nil, sd.revealBtn, sd.keyEntry)

	// Results per page
	pageOptions := []string{}
	for _, n := range sd.settings.GetResultsPerPageOptions() {
		pageOptions = append(pageOptions, strconv.Itoa(n))
	}
	sd.pageSizeSelect = widget.NewSelect(pageOptions, nil)

	// Language selection
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	note := widget.NewLabel(l.GetText(KeyStorageNote))
	note.Importance = widget.LowImportance
	note.Wrapping = fyne.TextWrapWord

	// Create form
	sd.form = container.NewVBox(
		widget.NewLabelWithStyle(l.GetText(KeyAPIKeyTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		description,
		keyRow,
		container.NewHBox(sd.saveKeyBtn, sd.clearKeyBtn),
		sd.keyStatus,
		container.NewHBox(getOne, signup),

		widget.NewSeparator(),
		widget.NewLabelWithStyle(l.GetText(KeyInterface), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyResultsPerPage)+":"),
		sd.pageSizeSelect,

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		note,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		container.NewVScroll(sd.form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	key, _ := sd.credentials.Credential()
	sd.keyEntry.SetText(key)
	sd.pageSizeSelect.SetSelected(strconv.Itoa(sd.settings.GetResultsPerPage()))

	lang := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == lang {
			sd.languageSelect.SetSelected(name)
		}
	}
	sd.updateKeyButtons()
}

func (sd *SettingsDialog) toggleReveal() {
	sd.keyEntry.Password = !sd.keyEntry.Password
	if sd.keyEntry.Password {
		sd.revealBtn.SetText(sd.localization.GetText(KeyShow))
	} else {
		sd.revealBtn.SetText(sd.localization.GetText(KeyHide))
	}
	sd.keyEntry.Refresh()
}

// saveKey stores the entered key at once, without waiting for the dialog's Save
func (sd *SettingsDialog) saveKey() {
	sd.credentials.Set(sd.keyEntry.Text)
	sd.updateKeyButtons()
	if sd.onCredentialChanged != nil {
		sd.onCredentialChanged()
	}
}

func (sd *SettingsDialog) clearKey() {
	sd.credentials.Clear()
	sd.keyEntry.SetText("")
	sd.updateKeyButtons()
	if sd.onCredentialChanged != nil {
		sd.onCredentialChanged()
	}
}

func (sd *SettingsDialog) updateKeyButtons() {
	stored, present := sd.credentials.Credential()

	if present {
		sd.keyStatus.Show()
		sd.clearKeyBtn.Show()
	} else {
		sd.keyStatus.Hide()
		sd.clearKeyBtn.Hide()
	}

	entered := sd.keyEntry.Text
	if entered == "" || entered == stored {
		sd.saveKeyBtn.Disable()
	} else {
		sd.saveKeyBtn.Enable()
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Save results per page
	if sd.pageSizeSelect.Selected != "" {
		if n, err := strconv.Atoi(sd.pageSizeSelect.Selected); err == nil {
			sd.settings.SetResultsPerPage(n)
		}
	}

	// Save language
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
