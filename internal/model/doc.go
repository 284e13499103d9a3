// Package model defines the domain data structures shared across the app:
// recipe summaries and details as returned by the recipe API, filter state,
// and the small status enums the coordinator and UI switch on.
package model
