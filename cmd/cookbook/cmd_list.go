package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/ochairo/cookbook/internal/domain/services"
)

func runList(ctx context.Context, args []string, st streams) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	var bf bookFlags
	bf.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `Usage: cookbook list --book <file> [options]

List the recipes in a recipe book, sorted by name.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), `
Examples:
  cookbook list --book family.yml
  cookbook list --book shared.yml --signature shared.yml.asc --keyring keys.asc
`)
	}

	if code, done := parseFlags(fs, args, st); done {
		return code
	}
	if bf.book == "" {
		return fail(st, "--book is required")
	}

	logger := bf.logger(st.err)
	store := services.NewRecipeStore(logger)
	if _, err := bf.importBook(ctx, store, logger); err != nil {
		return fail(st, "%v", err)
	}

	names := store.ListRecipeNames()
	fmt.Fprintf(st.out, "Recipes in %s (%d total):\n\n", bf.book, len(names))
	for _, name := range names {
		recipe, _ := store.FindRecipe(name)
		marker := ""
		if recipe.TotalCalories() > services.CalorieThreshold {
			marker = " ⚠"
		}
		fmt.Fprintf(st.out, "  %-30s %5d cal%s\n", name, recipe.TotalCalories(), marker)
	}

	return 0
}
