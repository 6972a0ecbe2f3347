package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/ochairo/cookbook/internal/domain/services"
	"github.com/ochairo/cookbook/internal/external-adapters/console"
)

func runShow(ctx context.Context, args []string, st streams) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	var bf bookFlags
	bf.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `Usage: cookbook show --book <file> [options] <recipe name>

Show the ingredients, steps and total calories of one recipe.
The name is matched without regard to letter case.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), `
Examples:
  cookbook show --book family.yml salad
  cookbook show --book family.yml "Apple pie"
`)
	}

	if code, done := parseFlags(fs, args, st); done {
		return code
	}
	if bf.book == "" {
		return fail(st, "--book is required")
	}
	name := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if name == "" {
		return fail(st, "recipe name is required")
	}

	logger := bf.logger(st.err)
	store := services.NewRecipeStore(logger)
	if _, err := bf.importBook(ctx, store, logger); err != nil {
		return fail(st, "%v", err)
	}

	recipe, ok := store.FindRecipe(name)
	if !ok {
		fmt.Fprintln(st.out, "Recipe not found.")
		return 1
	}

	console.WriteRecipe(st.out, recipe)
	if recipe.TotalCalories() > services.CalorieThreshold {
		fmt.Fprintf(st.out, "\n%s\n", console.CaloriesWarning(recipe))
	}

	return 0
}
