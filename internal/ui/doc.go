// Package ui contains the Fyne-based user interface for the application.
// RootUI renders the finder.Coordinator state: search bars per mode, the
// filter bar, result cards, and the detail and favorites modals, which are
// shown as overlays on wide windows and as bottom sheets on narrow ones.
// All UI strings are localized via Localization.
package ui
