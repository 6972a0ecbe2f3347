package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxCalories is the largest calorie count a single ingredient may carry.
// It keeps recipe totals far away from integer overflow.
const MaxCalories = 1_000_000

// Ingredient is one line of a recipe's ingredient list
type Ingredient struct {
	Name      string
	Calories  int
	FoodGroup FoodGroup
}

// NewIngredient builds a validated ingredient. The name is trimmed.
func NewIngredient(name string, calories int, group FoodGroup) (Ingredient, error) {
	ing := Ingredient{
		Name:      strings.TrimSpace(name),
		Calories:  calories,
		FoodGroup: group,
	}
	if err := ing.Validate(); err != nil {
		return Ingredient{}, err
	}
	return ing, nil
}

// ParseIngredient builds an ingredient from raw text fields as typed by a user
func ParseIngredient(name, calories, group string) (Ingredient, error) {
	cal, err := ParseCalories(calories)
	if err != nil {
		return Ingredient{}, err
	}
	fg, err := ParseFoodGroup(group)
	if err != nil {
		return Ingredient{}, err
	}
	return NewIngredient(name, cal, fg)
}

// ParseCalories parses an integer calorie count between 0 and MaxCalories
func ParseCalories(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > MaxCalories {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCalories, s)
	}
	return n, nil
}

// Validate checks the ingredient invariants
func (i Ingredient) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("ingredient: %w", ErrEmptyName)
	}
	if i.Calories < 0 || i.Calories > MaxCalories {
		return fmt.Errorf("ingredient %q: %w: %d", i.Name, ErrInvalidCalories, i.Calories)
	}
	if !i.FoodGroup.Valid() {
		return fmt.Errorf("ingredient %q: %w: %q", i.Name, ErrInvalidFoodGroup, string(i.FoodGroup))
	}
	return nil
}
