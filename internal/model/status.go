package model

// FetchStatus is the API client's shared in-flight state. Only one error
// context exists at a time: a new call clears it.
type FetchStatus struct {
	Loading bool
	Err     error
}

// SearchMode selects how a query is interpreted.
type SearchMode string

const (
	// SearchByText treats the query as a recipe name and applies filters
	SearchByText SearchMode = "by_text"

	// SearchByIngredient treats the query as an ingredient list
	SearchByIngredient SearchMode = "by_ingredient"
)

// String returns the string representation of SearchMode
func (m SearchMode) String() string {
	return string(m)
}

// View is the result section currently shown.
type View string

const (
	ViewSearch    View = "search"
	ViewFavorites View = "favorites"
)

// String returns the string representation of View
func (v View) String() string {
	return string(v)
}

// ResultState is what the result section renders.
type ResultState string

const (
	// ResultIdle means no search has been submitted yet
	ResultIdle ResultState = "Idle"

	// ResultLoading means a request is outstanding
	ResultLoading ResultState = "Loading"

	// ResultError means the last request failed
	ResultError ResultState = "Error"

	// ResultEmpty means the search succeeded with zero matches
	ResultEmpty ResultState = "Empty"

	// ResultReady means there are results to show
	ResultReady ResultState = "Ready"
)

// String returns the string representation of ResultState
func (rs ResultState) String() string {
	return string(rs)
}

// IsFinished returns true if no request is pending for this state
func (rs ResultState) IsFinished() bool {
	return rs == ResultError || rs == ResultEmpty || rs == ResultReady
}

// DeriveResultState applies the display precedence: loading and error are
// mutually exclusive and both win over an empty result set.
func DeriveResultState(searched bool, status FetchStatus, resultCount int) ResultState {
	switch {
	case status.Loading:
		return ResultLoading
	case status.Err != nil:
		return ResultError
	case !searched:
		return ResultIdle
	case resultCount == 0:
		return ResultEmpty
	default:
		return ResultReady
	}
}
