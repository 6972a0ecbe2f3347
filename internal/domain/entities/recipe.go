package entities

import (
	"fmt"
	"strings"
)

// Recipe is a named list of ingredients and preparation steps.
// It cannot be changed once built; accessors hand out copies.
type Recipe struct {
	name        string
	ingredients []Ingredient
	steps       []string
}

// NewRecipe validates its inputs and builds a recipe.
// The name and each ingredient name are trimmed; steps are kept verbatim.
func NewRecipe(name string, ingredients []Ingredient, steps []string) (*Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("recipe: %w", ErrEmptyName)
	}

	r := &Recipe{
		name:        name,
		ingredients: make([]Ingredient, 0, len(ingredients)),
		steps:       make([]string, 0, len(steps)),
	}

	for idx, ing := range ingredients {
		if err := ing.Validate(); err != nil {
			return nil, fmt.Errorf("recipe %q ingredient %d: %w", name, idx+1, err)
		}
		ing.Name = strings.TrimSpace(ing.Name)
		r.ingredients = append(r.ingredients, ing)
	}

	for idx, step := range steps {
		if strings.TrimSpace(step) == "" {
			return nil, fmt.Errorf("recipe %q step %d: %w", name, idx+1, ErrEmptyStep)
		}
		r.steps = append(r.steps, step)
	}

	return r, nil
}

// Name returns the recipe name as entered
func (r *Recipe) Name() string {
	return r.name
}

// Ingredients returns a copy of the ingredient list in entry order
func (r *Recipe) Ingredients() []Ingredient {
	out := make([]Ingredient, len(r.ingredients))
	copy(out, r.ingredients)
	return out
}

// Steps returns a copy of the preparation steps in order
func (r *Recipe) Steps() []string {
	out := make([]string, len(r.steps))
	copy(out, r.steps)
	return out
}

// TotalCalories sums the calories of all ingredients. An empty list yields 0.
func (r *Recipe) TotalCalories() int {
	total := 0
	for _, ing := range r.ingredients {
		total += ing.Calories
	}
	return total
}
