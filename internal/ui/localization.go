package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle              = "app_title"
	KeyTagline               = "tagline"
	KeyTaglineDetail         = "tagline_detail"
	KeyFavorites             = "favorites"
	KeyFavoritesCount        = "favorites_count"
	KeyFavoriteRecipes       = "favorite_recipes"
	KeyAPIKey                = "api_key"
	KeyAPIKeyRequired        = "api_key_required"
	KeyAPIKeyRequiredHint    = "api_key_required_hint"
	KeyAddAPIKey             = "add_api_key"
	KeySearchByRecipe        = "search_by_recipe"
	KeySearchByIngredients   = "search_by_ingredients"
	KeyRecipePlaceholder     = "recipe_placeholder"
	KeyIngredientPlaceholder = "ingredient_placeholder"
	KeySearch                = "search"
	KeyClear                 = "clear"
	KeyFilters               = "filters"
	KeyDiet                  = "diet"
	KeyIntolerances          = "intolerances"
	KeyMaxReadyTime          = "max_ready_time"
	KeyApplyFilters          = "apply_filters"
	KeyClearFilters          = "clear_filters"
	KeySearchResults         = "search_results"
	KeyRecipeResults         = "recipe_results"
	KeyIngredientResults     = "ingredient_results"
	KeyMyFavorites           = "my_favorites"
	KeyLoading               = "loading"
	KeySomethingWrong        = "something_wrong"
	KeyFetchErrorFallback    = "fetch_error_fallback"
	KeyQuotaHint             = "quota_hint"
	KeyUnauthorizedHint      = "unauthorized_hint"
	KeyNoRecipes             = "no_recipes"
	KeyNoRecipesHint         = "no_recipes_hint"
	KeyStartSearching        = "start_searching"
	KeyAddKeyToStart         = "add_key_to_start"
	KeyNoFavorites           = "no_favorites"
	KeyNoFavoritesHint       = "no_favorites_hint"
	KeySave                  = "save"
	KeySaved                 = "saved"
	KeyViewRecipe            = "view_recipe"
	KeyMinutesShort          = "minutes_short"
	KeyMinutesLong           = "minutes_long"
	KeyServings              = "servings"
	KeyLikes                 = "likes"
	KeyIngredientMatch       = "ingredient_match"
	KeyViewOriginal          = "view_original"
	KeyIngredients           = "ingredients"
	KeyInstructions          = "instructions"
	KeyNoInstructions        = "no_instructions"
	KeyRemove                = "remove"
	KeyClose                 = "close"
	KeySettings              = "settings"
	KeyLanguage              = "language"
	KeyResultsPerPage        = "results_per_page"
	KeyAPIKeyTitle           = "api_key_title"
	KeyAPIKeyDescription     = "api_key_description"
	KeyAPIKeyGetOne          = "api_key_get_one"
	KeyAPIKeyPlaceholder     = "api_key_placeholder"
	KeyShow                  = "show"
	KeyHide                  = "hide"
	KeySaveKey               = "save_key"
	KeyClearKey              = "clear_key"
	KeyKeyIsSet              = "key_is_set"
	KeyKeySaved              = "key_saved"
	KeyKeyCleared            = "key_cleared"
	KeySettingsSaved         = "settings_saved"
	KeyCancel                = "cancel"
	KeyPoweredBy             = "powered_by"
	KeyStorageNote           = "storage_note"
	KeyInterface             = "interface"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key with args substituted
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:              "Recipe Finder",
		KeyTagline:               "Find Your Next Favorite Recipe",
		KeyTaglineDetail:         "Search by recipe name or ingredients to discover delicious meals tailored to your preferences.",
		KeyFavorites:             "Favorites",
		KeyFavoritesCount:        "Favorites (%d)",
		KeyFavoriteRecipes:       "Favorite Recipes",
		KeyAPIKey:                "API Key",
		KeyAPIKeyRequired:        "API Key Required",
		KeyAPIKeyRequiredHint:    "Please add your Spoonacular API key to start searching for recipes.",
		KeyAddAPIKey:             "Add API Key",
		KeySearchByRecipe:        "Search by Recipe",
		KeySearchByIngredients:   "Search by Ingredients",
		KeyRecipePlaceholder:     "Search for recipes (e.g., pasta, chocolate cake)...",
		KeyIngredientPlaceholder: "Enter ingredients (e.g., chicken, rice, tomatoes)...",
		KeySearch:                "Search",
		KeyClear:                 "Clear",
		KeyFilters:               "Filters",
		KeyDiet:                  "Diet",
		KeyIntolerances:          "Intolerances",
		KeyMaxReadyTime:          "Max Ready Time",
		KeyApplyFilters:          "Apply Filters",
		KeyClearFilters:          "Clear All",
		KeySearchResults:         "Search Results",
		KeyRecipeResults:         "Recipe Results: \"%s\"",
		KeyIngredientResults:     "Ingredient Results: \"%s\"",
		KeyMyFavorites:           "My Favorite Recipes",
		KeyLoading:               "Loading recipes...",
		KeySomethingWrong:        "Something went wrong",
		KeyFetchErrorFallback:    "There was an error fetching recipes. Please try again.",
		KeyQuotaHint:             "The daily API quota for this key is used up.",
		KeyUnauthorizedHint:      "The API key was rejected. Check it in the API Key settings.",
		KeyNoRecipes:             "No recipes found",
		KeyNoRecipesHint:         "Try adjusting your search or filters to find something delicious!",
		KeyStartSearching:        "Search for recipes to get started!",
		KeyAddKeyToStart:         "Add your API key to start exploring recipes.",
		KeyNoFavorites:           "You haven't saved any recipes yet",
		KeyNoFavoritesHint:       "No favorite recipes yet. Start by saving some recipes!",
		KeySave:                  "Save",
		KeySaved:                 "Saved",
		KeyViewRecipe:            "View Recipe",
		KeyMinutesShort:          "%d min",
		KeyMinutesLong:           "%d minutes",
		KeyServings:              "%d servings",
		KeyLikes:                 "%s likes",
		KeyIngredientMatch:       "%d used · %d missing",
		KeyViewOriginal:          "View Original",
		KeyIngredients:           "Ingredients",
		KeyInstructions:          "Instructions",
		KeyNoInstructions:        "No instructions available. Please check the original recipe link.",
		KeyRemove:                "Remove",
		KeyClose:                 "Close",
		KeySettings:              "Settings",
		KeyLanguage:              "Language",
		KeyResultsPerPage:        "Results per page",
		KeyAPIKeyTitle:           "Spoonacular API Key",
		KeyAPIKeyDescription:     "Enter your Spoonacular API key to access recipe search functionality.",
		KeyAPIKeyGetOne:          "You'll need a Spoonacular API key to use this app. You can get one for free at",
		KeyAPIKeyPlaceholder:     "Enter your Spoonacular API key",
		KeyShow:                  "Show",
		KeyHide:                  "Hide",
		KeySaveKey:               "Save Key",
		KeyClearKey:              "Clear Key",
		KeyKeyIsSet:              "API key is set and ready to use!",
		KeyKeySaved:              "API key saved",
		KeyKeyCleared:            "API key cleared",
		KeySettingsSaved:         "Settings saved",
		KeyCancel:                "Cancel",
		KeyPoweredBy:             "Recipe data powered by",
		KeyStorageNote:           "This app stores your API key and favorites on this device.",
		KeyInterface:             "Interface",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:              "Поиск рецептов",
		KeyTagline:               "Найдите свой новый любимый рецепт",
		KeyTaglineDetail:         "Ищите по названию или ингредиентам и находите блюда на свой вкус.",
		KeyFavorites:             "Избранное",
		KeyFavoritesCount:        "Избранное (%d)",
		KeyFavoriteRecipes:       "Избранные рецепты",
		KeyAPIKey:                "API ключ",
		KeyAPIKeyRequired:        "Нужен API ключ",
		KeyAPIKeyRequiredHint:    "Добавьте ключ Spoonacular API, чтобы начать поиск рецептов.",
		KeyAddAPIKey:             "Добавить ключ",
		KeySearchByRecipe:        "По названию",
		KeySearchByIngredients:   "По ингредиентам",
		KeyRecipePlaceholder:     "Найти рецепт (например, паста, шоколадный торт)...",
		KeyIngredientPlaceholder: "Введите ингредиенты (например, курица, рис, помидоры)...",
		KeySearch:                "Найти",
		KeyClear:                 "Очистить",
		KeyFilters:               "Фильтры",
		KeyDiet:                  "Диета",
		KeyIntolerances:          "Непереносимость",
		KeyMaxReadyTime:          "Время приготовления",
		KeyApplyFilters:          "Применить",
		KeyClearFilters:          "Сбросить все",
		KeySearchResults:         "Результаты поиска",
		KeyRecipeResults:         "Рецепты: \"%s\"",
		KeyIngredientResults:     "По ингредиентам: \"%s\"",
		KeyMyFavorites:           "Мои избранные рецепты",
		KeyLoading:               "Загрузка рецептов...",
		KeySomethingWrong:        "Что-то пошло не так",
		KeyFetchErrorFallback:    "Не удалось загрузить рецепты. Попробуйте ещё раз.",
		KeyQuotaHint:             "Дневная квота API для этого ключа исчерпана.",
		KeyUnauthorizedHint:      "API ключ отклонён. Проверьте его в настройках.",
		KeyNoRecipes:             "Рецепты не найдены",
		KeyNoRecipesHint:         "Измените запрос или фильтры, чтобы найти что-нибудь вкусное!",
		KeyStartSearching:        "Начните с поиска рецептов!",
		KeyAddKeyToStart:         "Добавьте API ключ, чтобы искать рецепты.",
		KeyNoFavorites:           "Вы ещё не сохранили ни одного рецепта",
		KeyNoFavoritesHint:       "Избранных рецептов пока нет. Сохраните что-нибудь!",
		KeySave:                  "Сохранить",
		KeySaved:                 "Сохранено",
		KeyViewRecipe:            "Открыть рецепт",
		KeyMinutesShort:          "%d мин",
		KeyMinutesLong:           "%d минут",
		KeyServings:              "Порций: %d",
		KeyLikes:                 "Лайков: %s",
		KeyIngredientMatch:       "есть %d · не хватает %d",
		KeyViewOriginal:          "Оригинал",
		KeyIngredients:           "Ингредиенты",
		KeyInstructions:          "Приготовление",
		KeyNoInstructions:        "Инструкции нет. Посмотрите оригинальный рецепт.",
		KeyRemove:                "Удалить",
		KeyClose:                 "Закрыть",
		KeySettings:              "Настройки",
		KeyLanguage:              "Язык",
		KeyResultsPerPage:        "Результатов на странице",
		KeyAPIKeyTitle:           "Ключ Spoonacular API",
		KeyAPIKeyDescription:     "Введите ключ Spoonacular API для доступа к поиску рецептов.",
		KeyAPIKeyGetOne:          "Для работы нужен ключ Spoonacular API. Бесплатно его можно получить на",
		KeyAPIKeyPlaceholder:     "Введите ключ Spoonacular API",
		KeyShow:                  "Показать",
		KeyHide:                  "Скрыть",
		KeySaveKey:               "Сохранить ключ",
		KeyClearKey:              "Удалить ключ",
		KeyKeyIsSet:              "API ключ установлен и готов к работе!",
		KeyKeySaved:              "API ключ сохранён",
		KeyKeyCleared:            "API ключ удалён",
		KeySettingsSaved:         "Настройки сохранены",
		KeyCancel:                "Отмена",
		KeyPoweredBy:             "Данные о рецептах предоставлены",
		KeyStorageNote:           "Приложение хранит API ключ и избранное на этом устройстве.",
		KeyInterface:             "Интерфейс",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:              "Buscador de Receitas",
		KeyTagline:               "Encontre Sua Próxima Receita Favorita",
		KeyTaglineDetail:         "Pesquise por nome ou ingredientes e descubra pratos deliciosos do seu jeito.",
		KeyFavorites:             "Favoritos",
		KeyFavoritesCount:        "Favoritos (%d)",
		KeyFavoriteRecipes:       "Receitas Favoritas",
		KeyAPIKey:                "Chave API",
		KeyAPIKeyRequired:        "Chave API Necessária",
		KeyAPIKeyRequiredHint:    "Adicione sua chave da API Spoonacular para começar a buscar receitas.",
		KeyAddAPIKey:             "Adicionar Chave",
		KeySearchByRecipe:        "Buscar por Receita",
		KeySearchByIngredients:   "Buscar por Ingredientes",
		KeyRecipePlaceholder:     "Busque receitas (ex.: macarrão, bolo de chocolate)...",
		KeyIngredientPlaceholder: "Digite ingredientes (ex.: frango, arroz, tomate)...",
		KeySearch:                "Buscar",
		KeyClear:                 "Limpar",
		KeyFilters:               "Filtros",
		KeyDiet:                  "Dieta",
		KeyIntolerances:          "Intolerâncias",
		KeyMaxReadyTime:          "Tempo Máximo de Preparo",
		KeyApplyFilters:          "Aplicar Filtros",
		KeyClearFilters:          "Limpar Tudo",
		KeySearchResults:         "Resultados da Busca",
		KeyRecipeResults:         "Receitas: \"%s\"",
		KeyIngredientResults:     "Por ingredientes: \"%s\"",
		KeyMyFavorites:           "Minhas Receitas Favoritas",
		KeyLoading:               "Carregando receitas...",
		KeySomethingWrong:        "Algo deu errado",
		KeyFetchErrorFallback:    "Erro ao buscar receitas. Tente novamente.",
		KeyQuotaHint:             "A cota diária da API para esta chave acabou.",
		KeyUnauthorizedHint:      "A chave API foi recusada. Verifique-a nas configurações.",
		KeyNoRecipes:             "Nenhuma receita encontrada",
		KeyNoRecipesHint:         "Ajuste sua busca ou filtros para encontrar algo delicioso!",
		KeyStartSearching:        "Busque receitas para começar!",
		KeyAddKeyToStart:         "Adicione sua chave API para explorar receitas.",
		KeyNoFavorites:           "Você ainda não salvou nenhuma receita",
		KeyNoFavoritesHint:       "Nenhuma receita favorita ainda. Comece salvando algumas!",
		KeySave:                  "Salvar",
		KeySaved:                 "Salva",
		KeyViewRecipe:            "Ver Receita",
		KeyMinutesShort:          "%d min",
		KeyMinutesLong:           "%d minutos",
		KeyServings:              "%d porções",
		KeyLikes:                 "%s curtidas",
		KeyIngredientMatch:       "%d usados · %d faltando",
		KeyViewOriginal:          "Ver Original",
		KeyIngredients:           "Ingredientes",
		KeyInstructions:          "Modo de Preparo",
		KeyNoInstructions:        "Sem instruções disponíveis. Consulte a receita original.",
		KeyRemove:                "Remover",
		KeyClose:                 "Fechar",
		KeySettings:              "Configurações",
		KeyLanguage:              "Idioma",
		KeyResultsPerPage:        "Resultados por página",
		KeyAPIKeyTitle:           "Chave da API Spoonacular",
		KeyAPIKeyDescription:     "Digite sua chave da API Spoonacular para acessar a busca de receitas.",
		KeyAPIKeyGetOne:          "Você precisa de uma chave da API Spoonacular. Obtenha uma grátis em",
		KeyAPIKeyPlaceholder:     "Digite sua chave da API Spoonacular",
		KeyShow:                  "Mostrar",
		KeyHide:                  "Ocultar",
		KeySaveKey:               "Salvar Chave",
		KeyClearKey:              "Remover Chave",
		KeyKeyIsSet:              "Chave API definida e pronta para uso!",
		KeyKeySaved:              "Chave API salva",
		KeyKeyCleared:            "Chave API removida",
		KeySettingsSaved:         "Configurações salvas",
		KeyCancel:                "Cancelar",
		KeyPoweredBy:             "Dados de receitas fornecidos por",
		KeyStorageNote:           "Este app guarda sua chave API e favoritos neste dispositivo.",
		KeyInterface:             "Interface",
	}
}
