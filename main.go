package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/go-logr/stdr"

	"github.com/ytget/recipe-finder/internal/config"
	"github.com/ytget/recipe-finder/internal/favorites"
	"github.com/ytget/recipe-finder/internal/finder"
	"github.com/ytget/recipe-finder/internal/platform"
	"github.com/ytget/recipe-finder/internal/spoonacular"
	"github.com/ytget/recipe-finder/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.recipe-finder"
	AppName = "Recipe Finder"

	WindowWidth  = 1100
	WindowHeight = 800
)

func main() {
	env, envErr := config.LoadEnv()

	stdr.SetVerbosity(env.LogVerbosity)
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithName("recipe-finder")

	// Log version information
	logger.Info("starting", "app", AppName, "version", version)
	if envErr != nil {
		logger.Error(envErr, "failed to load environment overrides, using defaults")
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.LogoResource)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	credentials := config.NewCredentialStore(settings.Preferences())
	favoriteStore := favorites.NewStore(settings.Preferences(), logger)

	client := spoonacular.NewClient(
		spoonacular.WithBaseURL(env.APIBaseURL),
		spoonacular.WithLogger(logger),
	)
	coordinator := finder.NewCoordinator(client, credentials, favoriteStore, settings.GetResultsPerPage(), logger)

	images := platform.NewImageLoader(nil, logger, platform.DefaultThumbnailWidth, platform.DefaultThumbnailHeight)

	// Create and setup UI
	ui.NewRootUI(myWindow, settings, credentials, coordinator, images, logger)

	// Show and run
	myWindow.ShowAndRun()
}
