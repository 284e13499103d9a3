// Package finder holds the application state machine: which view is active,
// how queries are interpreted, what the last search returned and which
// recipe is open. Widgets send intents here and re-render from Snapshot.
package finder

import (
	"context"
	"strings"
	"sync"

	"github.com/go-logr/logr"

	"github.com/ytget/recipe-finder/internal/model"
)

// RecipeAPI is the recipe service the coordinator calls.
type RecipeAPI interface {
	SearchByText(ctx context.Context, credential, query string, filters model.FilterState, pageSize int) (model.SearchResult, error)
	SearchByIngredients(ctx context.Context, credential, ingredients string, pageSize int) ([]model.RecipeSummary, error)
	FetchDetail(ctx context.Context, credential string, id int) (*model.RecipeDetail, error)
	Status() model.FetchStatus
}

// CredentialSource supplies the API key.
type CredentialSource interface {
	Credential() (string, bool)
}

// FavoriteStore is the persisted favorites collection.
type FavoriteStore interface {
	IsFavorite(id int) bool
	Toggle(recipe model.RecipeSummary) bool
	Remove(id int) bool
	List() []model.RecipeSummary
	Len() int
}

// State is a point-in-time copy of the coordinator state.
type State struct {
	View model.View
	Mode model.SearchMode

	// Query and QueryMode describe the last submitted search
	Query     string
	QueryMode model.SearchMode

	Results      []model.RecipeSummary
	TotalResults int
	Searched     bool

	// Loading and Err combine the API client's shared status with the
	// outcome of the latest search, which a detail fetch cannot mask
	Loading bool
	Err     error

	Filters model.FilterState

	Detail     *model.RecipeDetail
	DetailOpen bool
}

// ResultState derives what the results section should render.
func (s State) ResultState() model.ResultState {
	return model.DeriveResultState(s.Searched, model.FetchStatus{Loading: s.Loading, Err: s.Err}, len(s.Results))
}

// Coordinator owns the search session and routes intents to the API client
// and the favorites store. Responses are applied only when they belong to
// the latest request of their kind.
type Coordinator struct {
	api       RecipeAPI
	creds     CredentialSource
	favorites FavoriteStore
	log       logr.Logger

	mu           sync.Mutex
	pageSize     int
	view         model.View
	mode         model.SearchMode
	query        string
	queryMode    model.SearchMode
	results      []model.RecipeSummary
	totalResults int
	searched     bool
	searching    bool
	searchErr    error
	filters      model.FilterState
	detail       *model.RecipeDetail
	detailOpen   bool

	searchSeq uint64
	detailSeq uint64

	listeners []func()
}

// NewCoordinator creates a coordinator in search view, text mode, with no
// filters.
func NewCoordinator(api RecipeAPI, creds CredentialSource, favorites FavoriteStore, pageSize int, log logr.Logger) *Coordinator {
	c := &Coordinator{
		api:       api,
		creds:     creds,
		favorites: favorites,
		log:       log.WithName("finder"),
		pageSize:  pageSize,
		view:      model.ViewSearch,
		mode:      model.SearchByText,
		queryMode: model.SearchByText,
		filters:   model.EmptyFilters(),
	}

	// Loading and error flags live on the client, so their changes are
	// forwarded to listeners too.
	if src, ok := api.(statusSource); ok {
		src.OnStatusChange(func(model.FetchStatus) { c.notify() })
	}
	return c
}

type statusSource interface {
	OnStatusChange(func(model.FetchStatus))
}

// OnChange registers a callback invoked after every state change.
func (c *Coordinator) OnChange(callback func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, callback)
}

// Snapshot returns a copy of the current state.
func (c *Coordinator) Snapshot() State {
	st := c.api.Status()

	c.mu.Lock()
	defer c.mu.Unlock()

	loading, err := st.Loading || c.searching, st.Err
	if err == nil {
		err = c.searchErr
	}

	s := State{
		View:         c.view,
		Mode:         c.mode,
		Query:        c.query,
		QueryMode:    c.queryMode,
		Results:      append([]model.RecipeSummary(nil), c.results...),
		TotalResults: c.totalResults,
		Searched:     c.searched,
		Loading:      loading,
		Err:          err,
		Filters:      c.filters.Clone(),
		DetailOpen:   c.detailOpen,
	}
	if c.detail != nil {
		d := *c.detail
		s.Detail = &d
	}
	return s
}

// HasCredential reports whether searches can be issued.
func (c *Coordinator) HasCredential() bool {
	_, ok := c.creds.Credential()
	return ok
}

// SetPageSize changes how many results later searches ask for.
func (c *Coordinator) SetPageSize(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n > 0 {
		c.pageSize = n
	}
}

// SetMode switches how the next query is interpreted. The last query and
// the filters are kept.
func (c *Coordinator) SetMode(mode model.SearchMode) {
	c.mu.Lock()
	if c.mode == mode {
		c.mu.Unlock()
		return
	}
	c.mode = mode
	c.mu.Unlock()
	c.notify()
}

// SetView switches between search results and favorites.
func (c *Coordinator) SetView(view model.View) {
	c.mu.Lock()
	if c.view == view {
		c.mu.Unlock()
		return
	}
	c.view = view
	c.mu.Unlock()
	c.notify()
}

// Submit runs a search for text in the current mode and blocks until the
// response has been applied. Blank text and a missing credential are
// no-ops.
func (c *Coordinator) Submit(ctx context.Context, text string) {
	query := strings.TrimSpace(text)
	if query == "" {
		return
	}
	credential, ok := c.creds.Credential()
	if !ok {
		c.log.V(1).Info("search skipped, no API key")
		return
	}

	c.mu.Lock()
	c.view = model.ViewSearch
	c.query = query
	c.queryMode = c.mode
	c.searched = true
	c.searching = true
	c.searchErr = nil
	c.searchSeq++
	seq := c.searchSeq
	mode := c.mode
	filters := c.filters.Clone()
	pageSize := c.pageSize
	c.mu.Unlock()
	c.notify()

	c.search(ctx, seq, credential, mode, query, filters, pageSize)
}

// ApplyFilters replaces the filters. When a query is active and the text
// mode is selected, the query is re-issued under the new filters.
func (c *Coordinator) ApplyFilters(ctx context.Context, filters model.FilterState) {
	c.mu.Lock()
	c.filters = filters.Clone()
	rerun := c.mode == model.SearchByText && c.query != ""
	query := c.query
	c.mu.Unlock()
	c.notify()

	if rerun {
		c.Submit(ctx, query)
	}
}

func (c *Coordinator) search(ctx context.Context, seq uint64, credential string, mode model.SearchMode, query string, filters model.FilterState, pageSize int) {
	var (
		results []model.RecipeSummary
		total   int
		err     error
	)

	switch mode {
	case model.SearchByIngredient:
		var recipes []model.RecipeSummary
		recipes, err = c.api.SearchByIngredients(ctx, credential, query, pageSize)
		results, total = recipes, len(recipes)
	default:
		var res model.SearchResult
		res, err = c.api.SearchByText(ctx, credential, query, filters, pageSize)
		results, total = res.Results, res.TotalResults
	}
	if err != nil {
		c.log.V(1).Info("search failed", "mode", mode.String(), "error", err.Error())
	}

	c.mu.Lock()
	if seq != c.searchSeq {
		c.mu.Unlock()
		c.log.V(1).Info("discarding superseded search", "query", query)
		return
	}
	if results == nil {
		results = []model.RecipeSummary{}
	}
	c.results = results
	c.totalResults = total
	c.searching = false
	c.searchErr = err
	c.mu.Unlock()
	c.notify()
}

// Select fetches the recipe's detail and opens it. A missing credential or
// a failed fetch leaves the view unchanged; the failure is visible only
// through the API client's status.
func (c *Coordinator) Select(ctx context.Context, id int) {
	credential, ok := c.creds.Credential()
	if !ok {
		return
	}

	c.mu.Lock()
	c.detailSeq++
	seq := c.detailSeq
	c.mu.Unlock()
	c.notify()

	detail, err := c.api.FetchDetail(ctx, credential, id)

	c.mu.Lock()
	if seq != c.detailSeq {
		c.mu.Unlock()
		return
	}
	if err != nil || detail == nil {
		c.mu.Unlock()
		if err != nil {
			c.log.V(1).Info("detail fetch failed", "recipeID", id, "error", err.Error())
		}
		c.notify()
		return
	}
	c.detail = detail
	c.detailOpen = true
	c.mu.Unlock()
	c.notify()
}

// CloseDetail hides the detail view. The last detail is kept.
func (c *Coordinator) CloseDetail() {
	c.mu.Lock()
	if !c.detailOpen {
		c.mu.Unlock()
		return
	}
	c.detailOpen = false
	c.mu.Unlock()
	c.notify()
}

// ToggleFavorite saves or unsaves the recipe and returns the new state.
func (c *Coordinator) ToggleFavorite(recipe model.RecipeSummary) bool {
	now := c.favorites.Toggle(recipe)
	c.notify()
	return now
}

// RemoveFavorite unsaves the recipe.
func (c *Coordinator) RemoveFavorite(id int) {
	if c.favorites.Remove(id) {
		c.notify()
	}
}

// IsFavorite reads the favorites store.
func (c *Coordinator) IsFavorite(id int) bool {
	return c.favorites.IsFavorite(id)
}

// Favorites returns the saved recipes in insertion order.
func (c *Coordinator) Favorites() []model.RecipeSummary {
	return c.favorites.List()
}

// FavoriteCount returns the number of saved recipes.
func (c *Coordinator) FavoriteCount() int {
	return c.favorites.Len()
}

// Refresh notifies listeners without changing state, e.g. after the API
// client's status moved.
func (c *Coordinator) Refresh() {
	c.notify()
}

func (c *Coordinator) notify() {
	c.mu.Lock()
	listeners := append([]func(){}, c.listeners...)
	c.mu.Unlock()

	for _, l := range listeners {
		l()
	}
}
