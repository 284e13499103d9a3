package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconHeart        = "♥"
	IconHeartOutline = "♡"
	IconClock        = "⏱"
	IconServings     = "🍽"
	IconLikes        = "👍"
	IconClose        = "×"
	IconPot          = "🍲"
	IconLink         = "↗"
	IconBullet       = "•"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	BadgeRemoveSuffix  = " ×"
)

// Layout sizing (cards / grids)
const (
	CardWidth       float32 = 260
	CardHeight      float32 = 330
	CardImageHeight float32 = 150
	ListThumbSize   float32 = 56
	DetailImageH    float32 = 220

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44

	// Width below which modals are shown as bottom sheets
	CompactWidthBreakpoint float32 = 768

	// Sheet height as a fraction of the window
	SheetHeightRatio float32 = 0.85
	// Overlay size as a fraction of the window
	OverlaySizeRatio float32 = 0.8

	DragHandleWidth  float32 = 48
	DragHandleHeight float32 = 5
)

// Request timeouts started from the UI
const (
	SearchTimeout = 30 * time.Second
	ImageTimeout  = 20 * time.Second
)

// Spoonacular links
const (
	SpoonacularSignupURL = "https://spoonacular.com/food-api/console#Dashboard"
	SpoonacularHomeURL   = "https://spoonacular.com/food-api"
)
