package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "recipe-finder.svg"
)

//go:embed assets/logo.svg
var logoSVG []byte

// LogoResource is the embedded application logo
var LogoResource = fyne.NewStaticResource(AppIcon, logoSVG)
