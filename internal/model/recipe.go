package model

// RecipeSummary is a recipe as it appears in a search result list.
// Only ID is guaranteed; which other fields are filled depends on the
// endpoint that produced the record.
type RecipeSummary struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Image     string `json:"image,omitempty"`
	ImageType string `json:"imageType,omitempty"`
	Likes     int    `json:"likes,omitempty"`

	ReadyInMinutes int    `json:"readyInMinutes,omitempty"`
	Servings       int    `json:"servings,omitempty"`
	SourceURL      string `json:"sourceUrl,omitempty"`

	Vegetarian  bool `json:"vegetarian,omitempty"`
	Vegan       bool `json:"vegan,omitempty"`
	GlutenFree  bool `json:"glutenFree,omitempty"`
	DairyFree   bool `json:"dairyFree,omitempty"`
	VeryHealthy bool `json:"veryHealthy,omitempty"`

	// Populated by ingredient search only
	UsedIngredientCount   int          `json:"usedIngredientCount,omitempty"`
	MissedIngredientCount int          `json:"missedIngredientCount,omitempty"`
	UsedIngredients       []Ingredient `json:"usedIngredients,omitempty"`
	MissedIngredients     []Ingredient `json:"missedIngredients,omitempty"`
	UnusedIngredients     []Ingredient `json:"unusedIngredients,omitempty"`
}

// HasIngredientMatch reports whether the record came from an ingredient search.
func (r RecipeSummary) HasIngredientMatch() bool {
	return r.UsedIngredientCount > 0 || r.MissedIngredientCount > 0
}

// DietLabels returns display labels for the dietary flags that are set,
// in a fixed order.
func (r RecipeSummary) DietLabels() []string {
	var labels []string
	if r.Vegetarian {
		labels = append(labels, "Vegetarian")
	}
	if r.Vegan {
		labels = append(labels, "Vegan")
	}
	if r.GlutenFree {
		labels = append(labels, "Gluten-Free")
	}
	if r.DairyFree {
		labels = append(labels, "Dairy-Free")
	}
	if r.VeryHealthy {
		labels = append(labels, "Healthy")
	}
	return labels
}

// RecipeDetail is the full record for a single recipe. Instructions and
// Summary hold sanitized plain text, never markup.
type RecipeDetail struct {
	RecipeSummary

	ExtendedIngredients []Ingredient `json:"extendedIngredients"`
	Instructions        string       `json:"instructions"`
	Summary             string       `json:"summary"`

	SourceName  string `json:"sourceName,omitempty"`
	CreditsText string `json:"creditsText,omitempty"`

	Cheap       bool `json:"cheap,omitempty"`
	VeryPopular bool `json:"veryPopular,omitempty"`
	Sustainable bool `json:"sustainable,omitempty"`
	LowFodmap   bool `json:"lowFodmap,omitempty"`

	HealthScore        float64  `json:"healthScore,omitempty"`
	PricePerServing    float64  `json:"pricePerServing,omitempty"`
	PreparationMinutes int      `json:"preparationMinutes,omitempty"`
	CookingMinutes     int      `json:"cookingMinutes,omitempty"`
	AggregateLikes     int      `json:"aggregateLikes,omitempty"`
	Diets              []string `json:"diets,omitempty"`
}

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	ID           int      `json:"id"`
	Amount       float64  `json:"amount"`
	Unit         string   `json:"unit"`
	UnitLong     string   `json:"unitLong,omitempty"`
	UnitShort    string   `json:"unitShort,omitempty"`
	Aisle        string   `json:"aisle,omitempty"`
	Name         string   `json:"name"`
	Original     string   `json:"original,omitempty"`
	OriginalName string   `json:"originalName,omitempty"`
	Meta         []string `json:"meta,omitempty"`
	Image        string   `json:"image,omitempty"`
}

// SearchResult is the payload of a text search.
type SearchResult struct {
	Results      []RecipeSummary `json:"results"`
	TotalResults int             `json:"totalResults"`
}
