// Package console implements the interactive recipe menu over line-based text I/O.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ochairo/cookbook/internal/domain/entities"
	"github.com/ochairo/cookbook/internal/domain/interfaces"
	"github.com/ochairo/cookbook/internal/domain/services"
)

// Shell reads menu choices and recipe fields from a line-based input and
// prints results. It subscribes to the store's calories-exceeded
// notification when created.
type Shell struct {
	store  *services.RecipeStore
	in     *bufio.Scanner
	out    io.Writer
	logger interfaces.Logger
}

// NewShell creates a shell over store and registers its calorie warning
func NewShell(store *services.RecipeStore, in io.Reader, out io.Writer, logger interfaces.Logger) *Shell {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	s := &Shell{
		store:  store,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
	store.OnCaloriesExceeded(s.warnCaloriesExceeded)

	return s
}

// Run shows the menu until the user exits, input ends or ctx is done
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printf("\n--- Recipe Manager ---\n")
		s.printf("1. Add a recipe\n")
		s.printf("2. Display all recipes\n")
		s.printf("3. Display a recipe\n")
		s.printf("4. Exit\n")

		option, err := s.prompt("Choose an option (1-4): ")
		if err != nil {
			return eofIsExit(err)
		}

		switch strings.TrimSpace(option) {
		case "1":
			err = s.addRecipe()
		case "2":
			s.displayRecipes()
		case "3":
			var name string
			name, err = s.prompt("Enter recipe name: ")
			if err == nil {
				s.displayRecipe(name)
			}
		case "4":
			s.printf("Exiting...\n")
			return nil
		default:
			s.printf("Invalid option. Please select from 1 to 4.\n")
		}

		if err != nil {
			return eofIsExit(err)
		}
	}
}

func (s *Shell) addRecipe() error {
	var name string
	for {
		line, err := s.prompt("Enter recipe name: ")
		if err != nil {
			return err
		}
		name = strings.TrimSpace(line)
		if name != "" {
			break
		}
		s.printf("Recipe name cannot be empty. Try again.\n")
	}

	if s.store.Contains(name) {
		s.printf("A recipe with this name already exists. Try another name.\n")
		return nil
	}

	ingredients, err := s.readIngredients()
	if err != nil {
		return err
	}

	steps, err := s.readSteps()
	if err != nil {
		return err
	}

	recipe, err := s.store.AddRecipe(name, ingredients, steps)
	if err != nil {
		var nerr *services.NotificationError
		if !errors.As(err, &nerr) {
			s.printf("Could not add recipe: %v\n", err)
			return nil
		}
		s.logger.Error("calories exceeded listener failed", interfaces.F("error", err))
	}

	s.printf("\nRecipe '%s' added successfully! Total Calories: %d\n", recipe.Name(), recipe.TotalCalories())
	return nil
}

func (s *Shell) readIngredients() ([]entities.Ingredient, error) {
	ingredients := make([]entities.Ingredient, 0)

	s.printf("\nEnter ingredients for the recipe (press Enter to finish):\n")
	for {
		name, err := s.prompt("Enter ingredient name: ")
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(name) == "" {
			return ingredients, nil
		}

		var calories int
		for {
			line, err := s.prompt("Enter calories: ")
			if err != nil {
				return nil, err
			}
			calories, err = entities.ParseCalories(line)
			if err == nil {
				break
			}
			s.printf("Invalid input. Please enter a whole number from 0 to %d.\n", entities.MaxCalories)
		}

		var group entities.FoodGroup
		for {
			line, err := s.prompt(fmt.Sprintf("Enter food group (%s): ", foodGroupChoices()))
			if err != nil {
				return nil, err
			}
			group, err = entities.ParseFoodGroup(line)
			if err == nil {
				break
			}
			s.printf("Invalid food group. Try again.\n")
		}

		ing, err := entities.NewIngredient(name, calories, group)
		if err != nil {
			// Name, calories and group are already checked above
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}
}

func (s *Shell) readSteps() ([]string, error) {
	steps := make([]string, 0)

	s.printf("\nEnter recipe steps (press Enter to finish):\n")
	for {
		step, err := s.prompt("Step: ")
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(step) == "" {
			return steps, nil
		}
		steps = append(steps, step)
	}
}

func (s *Shell) displayRecipes() {
	names := s.store.ListRecipeNames()
	if len(names) == 0 {
		s.printf("No recipes to display.\n")
		return
	}

	s.printf("\n--- All Recipes ---\n")
	for _, name := range names {
		s.printf("- %s\n", name)
	}
}

func (s *Shell) displayRecipe(name string) {
	recipe, ok := s.store.FindRecipe(name)
	if !ok {
		s.printf("Recipe not found.\n")
		return
	}

	WriteRecipe(s.out, recipe)
}

// WriteRecipe prints the full detail of a recipe
func WriteRecipe(w io.Writer, recipe *entities.Recipe) {
	fmt.Fprintf(w, "\n--- %s ---\n", recipe.Name())
	fmt.Fprintf(w, "Ingredients:\n")
	for _, ing := range recipe.Ingredients() {
		fmt.Fprintf(w, "- %s (%d cal, %s)\n", ing.Name, ing.Calories, ing.FoodGroup)
	}

	fmt.Fprintf(w, "\nSteps:\n")
	for i, step := range recipe.Steps() {
		fmt.Fprintf(w, "%d. %s\n", i+1, step)
	}

	fmt.Fprintf(w, "\nTotal Calories: %d\n", recipe.TotalCalories())
}

// CaloriesWarning is the message shown for a recipe above the calorie threshold
func CaloriesWarning(recipe *entities.Recipe) string {
	return fmt.Sprintf("Warning: The total calories of recipe '%s' exceed %d.", recipe.Name(), services.CalorieThreshold)
}

func (s *Shell) warnCaloriesExceeded(recipe *entities.Recipe) error {
	_, err := fmt.Fprintf(s.out, "\n%s\n", CaloriesWarning(recipe))
	return err
}

func (s *Shell) prompt(text string) (string, error) {
	s.printf("%s", text)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func foodGroupChoices() string {
	groups := entities.FoodGroups()
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.String())
	}
	return strings.Join(names, ", ")
}

func eofIsExit(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
