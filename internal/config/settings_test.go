package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.Preferences() != app.Preferences() {
		t.Error("Settings preferences should match the app preferences")
	}
}

func TestResultsPerPage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	count := settings.GetResultsPerPage()
	if count != DefaultResultsPerPage {
		t.Errorf("Expected default results per page %d, got %d", DefaultResultsPerPage, count)
	}

	// Test setting custom value
	settings.SetResultsPerPage(24)

	if got := settings.GetResultsPerPage(); got != 24 {
		t.Errorf("Expected results per page 24, got %d", got)
	}

	// Test boundary values
	settings.SetResultsPerPage(0) // Should be clamped to 1
	if settings.GetResultsPerPage() != MinResultsPerPage {
		t.Error("Results per page should be clamped to minimum 1")
	}

	settings.SetResultsPerPage(500) // Should be clamped to 100
	if settings.GetResultsPerPage() != MaxResultsPerPage {
		t.Error("Results per page should be clamped to maximum 100")
	}
}

func TestGetResultsPerPageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetResultsPerPageOptions()
	found := false
	for _, opt := range options {
		if opt < MinResultsPerPage || opt > MaxResultsPerPage {
			t.Errorf("Option %d is outside the allowed range", opt)
		}
		if opt == DefaultResultsPerPage {
			found = true
		}
	}
	if !found {
		t.Errorf("Options should include the default %d", DefaultResultsPerPage)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
