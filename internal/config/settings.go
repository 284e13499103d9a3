package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyAPIKey         = "spoonacular_api_key"
	KeyFavorites      = "recipe_favorites"
	KeyResultsPerPage = "results_per_page"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultResultsPerPage = 12
	DefaultLanguage       = "system"

	MinResultsPerPage = 1
	MaxResultsPerPage = 100
)

// Settings manages application configuration
type Settings struct {
	prefs fyne.Preferences
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{prefs: app.Preferences()}
}

// Preferences exposes the backing store so the credential and favorites
// stores persist next to the rest of the settings.
func (s *Settings) Preferences() fyne.Preferences {
	return s.prefs
}

// GetResultsPerPage returns how many recipes a search asks for
func (s *Settings) GetResultsPerPage() int {
	value := s.prefs.Int(KeyResultsPerPage)
	if value <= 0 {
		s.SetResultsPerPage(DefaultResultsPerPage)
		return DefaultResultsPerPage
	}
	return value
}

// SetResultsPerPage sets how many recipes a search asks for
func (s *Settings) SetResultsPerPage(count int) {
	if count < MinResultsPerPage {
		count = MinResultsPerPage
	}
	if count > MaxResultsPerPage {
		count = MaxResultsPerPage
	}
	s.prefs.SetInt(KeyResultsPerPage, count)
}

// GetResultsPerPageOptions returns the page sizes offered in the settings dialog
func (s *Settings) GetResultsPerPageOptions() []int {
	return []int{6, 12, 24, 48}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.prefs.String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.prefs.SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
