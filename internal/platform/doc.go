package platform

// Package platform contains glue to the outside world that is not the recipe
// API itself: image download and thumbnailing, and validation of external
// links before they are opened in the OS browser.
