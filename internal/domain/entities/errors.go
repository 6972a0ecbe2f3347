package entities

import "errors"

// Validation and store errors. Callers match them with errors.Is.
var (
	// ErrEmptyName is returned when a recipe or ingredient name is blank
	ErrEmptyName = errors.New("name must not be empty")

	// ErrInvalidCalories is returned when a calorie value is not an integer in [0, MaxCalories]
	ErrInvalidCalories = errors.New("calories must be a whole number from 0 to 1000000")

	// ErrInvalidFoodGroup is returned for anything outside the five food groups
	ErrInvalidFoodGroup = errors.New("food group must be one of Dairy, Fruit, Grain, Protein, Vegetable")

	// ErrEmptyStep is returned when a preparation step is blank
	ErrEmptyStep = errors.New("step must not be empty")

	// ErrDuplicateName is returned when a recipe name is already taken (case-insensitive)
	ErrDuplicateName = errors.New("a recipe with this name already exists")
)
