package entities

import (
	"fmt"
	"strings"
)

// FoodGroup classifies an ingredient
type FoodGroup string

// The five food groups. No other values are valid.
const (
	FoodGroupDairy     FoodGroup = "Dairy"
	FoodGroupFruit     FoodGroup = "Fruit"
	FoodGroupGrain     FoodGroup = "Grain"
	FoodGroupProtein   FoodGroup = "Protein"
	FoodGroupVegetable FoodGroup = "Vegetable"
)

// FoodGroups lists every food group in declaration order
func FoodGroups() []FoodGroup {
	return []FoodGroup{
		FoodGroupDairy,
		FoodGroupFruit,
		FoodGroupGrain,
		FoodGroupProtein,
		FoodGroupVegetable,
	}
}

// ParseFoodGroup matches s case-insensitively against the food group names.
// Surrounding whitespace is ignored.
func ParseFoodGroup(s string) (FoodGroup, error) {
	s = strings.TrimSpace(s)
	for _, g := range FoodGroups() {
		if strings.EqualFold(s, string(g)) {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFoodGroup, s)
}

// Valid reports whether g is one of the five food groups
func (g FoodGroup) Valid() bool {
	switch g {
	case FoodGroupDairy, FoodGroupFruit, FoodGroupGrain, FoodGroupProtein, FoodGroupVegetable:
		return true
	}
	return false
}

func (g FoodGroup) String() string {
	return string(g)
}
