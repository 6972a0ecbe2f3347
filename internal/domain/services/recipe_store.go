package services

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ochairo/cookbook/internal/domain/entities"
	"github.com/ochairo/cookbook/internal/domain/interfaces"
)

// CalorieThreshold is the total above which a newly added recipe triggers
// the calories-exceeded notification. Exactly CalorieThreshold does not.
const CalorieThreshold = 300

// CaloriesExceededListener is called with a recipe whose total calories
// exceed CalorieThreshold, right after it has been stored.
type CaloriesExceededListener func(recipe *entities.Recipe) error

// NotificationError reports a listener failure. The recipe it carries was
// stored before the listener ran and stays in the store.
type NotificationError struct {
	Recipe *entities.Recipe
	Err    error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("calories exceeded listener for %q: %v", e.Recipe.Name(), e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

// RecipeStore holds recipes in memory, unique by case-insensitive name.
//
// It is not safe for concurrent use; callers sharing a store across
// goroutines must serialize access themselves.
type RecipeStore struct {
	recipes   []*entities.Recipe
	byName    map[string]*entities.Recipe
	listeners []CaloriesExceededListener
	logger    interfaces.Logger
}

// NewRecipeStore creates an empty store. A nil logger discards log output.
func NewRecipeStore(logger interfaces.Logger) *RecipeStore {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &RecipeStore{
		byName: make(map[string]*entities.Recipe),
		logger: logger,
	}
}

// OnCaloriesExceeded registers a listener. Listeners run synchronously in
// registration order.
func (s *RecipeStore) OnCaloriesExceeded(listener CaloriesExceededListener) {
	if listener == nil {
		return
	}
	s.listeners = append(s.listeners, listener)
}

// AddRecipe validates and stores a new recipe.
//
// A name already present in any letter case fails with
// entities.ErrDuplicateName; validation failures return the matching
// entities error. Neither changes the store.
//
// When the new recipe's total is above CalorieThreshold the listeners are
// notified after it is stored. The first listener error stops notification
// and is returned as a *NotificationError together with the stored recipe.
func (s *RecipeStore) AddRecipe(name string, ingredients []entities.Ingredient, steps []string) (*entities.Recipe, error) {
	if strings.TrimSpace(name) == "" {
		s.logger.Warn("recipe rejected", interfaces.F("reason", "empty name"))
		return nil, fmt.Errorf("recipe: %w", entities.ErrEmptyName)
	}

	if s.Contains(name) {
		s.logger.Warn("recipe rejected", interfaces.F("name", name), interfaces.F("reason", "duplicate"))
		return nil, fmt.Errorf("%w: %q", entities.ErrDuplicateName, strings.TrimSpace(name))
	}

	recipe, err := entities.NewRecipe(name, ingredients, steps)
	if err != nil {
		s.logger.Warn("recipe rejected", interfaces.F("name", name), interfaces.F("error", err))
		return nil, err
	}

	s.recipes = append(s.recipes, recipe)
	s.byName[foldName(recipe.Name())] = recipe

	total := recipe.TotalCalories()
	s.logger.Debug("recipe added",
		interfaces.F("name", recipe.Name()),
		interfaces.F("ingredients", len(recipe.Ingredients())),
		interfaces.F("steps", len(recipe.Steps())),
		interfaces.F("calories", total))

	if total > CalorieThreshold {
		if err := s.notify(recipe); err != nil {
			return recipe, err
		}
	}

	return recipe, nil
}

func (s *RecipeStore) notify(recipe *entities.Recipe) error {
	for _, listener := range s.listeners {
		if err := listener(recipe); err != nil {
			return &NotificationError{Recipe: recipe, Err: err}
		}
	}
	return nil
}

// ListRecipeNames returns all recipe names in ordinal (byte-wise) ascending
// order. An empty store yields an empty, non-nil slice.
func (s *RecipeStore) ListRecipeNames() []string {
	names := make([]string, 0, len(s.recipes))
	for _, r := range s.recipes {
		names = append(names, r.Name())
	}
	slices.Sort(names)
	return names
}

// Recipes returns all stored recipes ordered like ListRecipeNames
func (s *RecipeStore) Recipes() []*entities.Recipe {
	out := slices.Clone(s.recipes)
	slices.SortStableFunc(out, func(a, b *entities.Recipe) int {
		return strings.Compare(a.Name(), b.Name())
	})
	if out == nil {
		out = []*entities.Recipe{}
	}
	return out
}

// FindRecipe looks a recipe up by name, ignoring letter case.
// A missing recipe is reported through ok, not an error.
func (s *RecipeStore) FindRecipe(name string) (recipe *entities.Recipe, ok bool) {
	recipe, ok = s.byName[foldName(name)]
	return recipe, ok
}

// Contains reports whether a recipe with this name exists in any letter case
func (s *RecipeStore) Contains(name string) bool {
	_, ok := s.byName[foldName(name)]
	return ok
}

// Len returns the number of stored recipes
func (s *RecipeStore) Len() int {
	return len(s.recipes)
}

// foldName is the index key for a recipe name: trimmed and upper-cased one
// rune at a time, so "Straße" and "STRASSE" stay distinct
func foldName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
