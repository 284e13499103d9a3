package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Diet is a single dietary category understood by the recipe API.
type Diet string

const (
	DietNone        Diet = ""
	DietVegetarian  Diet = "vegetarian"
	DietVegan       Diet = "vegan"
	DietGlutenFree  Diet = "gluten free"
	DietKetogenic   Diet = "ketogenic"
	DietPescetarian Diet = "pescetarian"
	DietPaleo       Diet = "paleo"
)

// Intolerance is an allergen or exclusion tag.
type Intolerance string

const (
	IntoleranceDairy     Intolerance = "dairy"
	IntoleranceEgg       Intolerance = "egg"
	IntoleranceGluten    Intolerance = "gluten"
	IntoleranceGrain     Intolerance = "grain"
	IntolerancePeanut    Intolerance = "peanut"
	IntoleranceSeafood   Intolerance = "seafood"
	IntoleranceSesame    Intolerance = "sesame"
	IntoleranceShellfish Intolerance = "shellfish"
	IntoleranceSoy       Intolerance = "soy"
	IntoleranceSulfite   Intolerance = "sulfite"
	IntoleranceTreeNut   Intolerance = "tree nut"
	IntoleranceWheat     Intolerance = "wheat"
)

// NoTimeLimit is the MaxReadyTime value meaning "any time".
const NoTimeLimit = 0

// DietOptions lists the selectable diets, DietNone first.
var DietOptions = []Diet{
	DietNone, DietVegetarian, DietVegan, DietGlutenFree,
	DietKetogenic, DietPescetarian, DietPaleo,
}

// IntoleranceOptions lists the selectable intolerances in display order.
var IntoleranceOptions = []Intolerance{
	IntoleranceDairy, IntoleranceEgg, IntoleranceGluten, IntoleranceGrain,
	IntolerancePeanut, IntoleranceSeafood, IntoleranceSesame, IntoleranceShellfish,
	IntoleranceSoy, IntoleranceSulfite, IntoleranceTreeNut, IntoleranceWheat,
}

// ReadyTimeOptions lists the selectable ready-time ceilings in minutes.
var ReadyTimeOptions = []int{15, 30, 60}

// Label returns the display label, e.g. "Gluten Free". DietNone is "Any".
func (d Diet) Label() string {
	if d == DietNone {
		return "Any"
	}
	return titleCase(string(d))
}

// IsValid reports whether d is one of DietOptions.
func (d Diet) IsValid() bool {
	for _, opt := range DietOptions {
		if opt == d {
			return true
		}
	}
	return false
}

// Label returns the display label, e.g. "Tree Nut".
func (i Intolerance) Label() string {
	return titleCase(string(i))
}

// IsValid reports whether i is one of IntoleranceOptions.
func (i Intolerance) IsValid() bool {
	return intoleranceRank(i) >= 0
}

// titleCase builds a fresh Caser per call; a Caser is not safe for
// concurrent use.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func intoleranceRank(i Intolerance) int {
	for n, opt := range IntoleranceOptions {
		if opt == i {
			return n
		}
	}
	return -1
}

// ParseDiet converts a label or API value into a Diet.
func ParseDiet(s string) (Diet, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if norm == "" || norm == "any" {
		return DietNone, nil
	}
	d := Diet(norm)
	if !d.IsValid() {
		return DietNone, fmt.Errorf("unknown diet: %q", s)
	}
	return d, nil
}

// ParseIntolerance converts a label or API value into an Intolerance.
func ParseIntolerance(s string) (Intolerance, error) {
	i := Intolerance(strings.ToLower(strings.TrimSpace(s)))
	if !i.IsValid() {
		return "", fmt.Errorf("unknown intolerance: %q", s)
	}
	return i, nil
}

// ReadyTimeLabel returns the display label for a ready-time ceiling.
func ReadyTimeLabel(minutes int) string {
	if minutes == NoTimeLimit {
		return "Any time"
	}
	return fmt.Sprintf("%d minutes or less", minutes)
}

// FilterState describes the active search constraints. It is a value type:
// callers replace it wholesale instead of mutating a shared instance.
type FilterState struct {
	Diet         Diet
	Intolerances []Intolerance
	MaxReadyTime int
}

// EmptyFilters returns the state with no constraints.
func EmptyFilters() FilterState {
	return FilterState{}
}

// Clone returns a copy that shares no memory with f.
func (f FilterState) Clone() FilterState {
	out := FilterState{Diet: f.Diet, MaxReadyTime: f.MaxReadyTime}
	if len(f.Intolerances) > 0 {
		out.Intolerances = append([]Intolerance(nil), f.Intolerances...)
	}
	return out
}

// IsEmpty reports whether no constraint is active.
func (f FilterState) IsEmpty() bool {
	return f.ActiveCount() == 0
}

// ActiveCount returns the number of active badges: one for a diet, one per
// intolerance and one for a time ceiling.
func (f FilterState) ActiveCount() int {
	n := len(f.Intolerances)
	if f.Diet != DietNone {
		n++
	}
	if f.MaxReadyTime != NoTimeLimit {
		n++
	}
	return n
}

// HasIntolerance reports whether i is active.
func (f FilterState) HasIntolerance(i Intolerance) bool {
	for _, v := range f.Intolerances {
		if v == i {
			return true
		}
	}
	return false
}

// WithIntoleranceToggled returns a copy with i added or removed.
func (f FilterState) WithIntoleranceToggled(i Intolerance) FilterState {
	if f.HasIntolerance(i) {
		return f.WithoutIntolerance(i)
	}
	out := f.Clone()
	out.Intolerances = append(out.Intolerances, i)
	return out
}

// WithoutDiet returns a copy with the diet cleared.
func (f FilterState) WithoutDiet() FilterState {
	out := f.Clone()
	out.Diet = DietNone
	return out
}

// WithoutIntolerance returns a copy with i removed.
func (f FilterState) WithoutIntolerance(i Intolerance) FilterState {
	out := f.Clone()
	out.Intolerances = out.Intolerances[:0]
	for _, v := range f.Intolerances {
		if v != i {
			out.Intolerances = append(out.Intolerances, v)
		}
	}
	if len(out.Intolerances) == 0 {
		out.Intolerances = nil
	}
	return out
}

// WithoutMaxReadyTime returns a copy with the time ceiling cleared.
func (f FilterState) WithoutMaxReadyTime() FilterState {
	out := f.Clone()
	out.MaxReadyTime = NoTimeLimit
	return out
}

// SortedIntolerances returns the active intolerances in enumeration order
// with duplicates removed.
func (f FilterState) SortedIntolerances() []Intolerance {
	var out []Intolerance
	for _, opt := range IntoleranceOptions {
		if f.HasIntolerance(opt) {
			out = append(out, opt)
		}
	}
	return out
}

// IntoleranceParam returns the comma-joined intolerance list as sent to the
// API, or "" when none are active.
func (f FilterState) IntoleranceParam() string {
	sorted := f.SortedIntolerances()
	parts := make([]string, len(sorted))
	for n, i := range sorted {
		parts[n] = string(i)
	}
	return strings.Join(parts, ",")
}

// Equal compares two filter states; intolerance order is irrelevant.
func (f FilterState) Equal(other FilterState) bool {
	if f.Diet != other.Diet || f.MaxReadyTime != other.MaxReadyTime {
		return false
	}
	return f.IntoleranceParam() == other.IntoleranceParam()
}
