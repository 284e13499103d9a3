package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvAPIBaseURL   = "RECIPE_FINDER_API_BASE_URL"
	EnvLogVerbosity = "RECIPE_FINDER_LOG_VERBOSITY"
)

// DefaultAPIBaseURL is the public Spoonacular endpoint.
const DefaultAPIBaseURL = "https://api.spoonacular.com"

// Env holds developer overrides that never reach the settings dialog.
type Env struct {
	APIBaseURL   string
	LogVerbosity int
}

// LoadEnv reads overrides from the process environment after loading any of
// the given dotenv files (".env" when none are given). Missing files are
// ignored; malformed files are returned as an error alongside the defaults.
func LoadEnv(files ...string) (Env, error) {
	var loadErr error
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		loadErr = err
	}

	env := Env{
		APIBaseURL: DefaultAPIBaseURL,
	}

	if v := strings.TrimSpace(os.Getenv(EnvAPIBaseURL)); v != "" {
		env.APIBaseURL = strings.TrimRight(v, "/")
	}

	if v := strings.TrimSpace(os.Getenv(EnvLogVerbosity)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			if loadErr == nil {
				loadErr = errors.New(EnvLogVerbosity + " must be a non-negative integer")
			}
		} else {
			env.LogVerbosity = n
		}
	}

	return env, loadErr
}
