package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/ochairo/cookbook/internal/domain/services"
	"github.com/ochairo/cookbook/internal/external-adapters/console"
	"github.com/ochairo/cookbook/internal/external-adapters/yaml"
)

func runShell(ctx context.Context, args []string, st streams) int {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	var bf bookFlags
	bf.register(fs)
	exportPath := fs.String("export", "", "Write all recipes to this YAML book on exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `Usage: cookbook shell [options]

Start the interactive recipe manager. Recipes live in memory for the
session; --book seeds the session and --export saves it on exit.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), `
Examples:
  cookbook shell
  cookbook shell --book family.yml --export family.yml
  cookbook shell --book shared.yml --signature shared.yml.asc --keyring keys.asc
`)
	}

	if code, done := parseFlags(fs, args, st); done {
		return code
	}

	logger := bf.logger(st.err)
	store := services.NewRecipeStore(logger)
	sh := console.NewShell(store, st.in, st.out, logger)

	if bf.book != "" {
		result, err := bf.importBook(ctx, store, logger)
		if err != nil {
			return fail(st, "importing recipe book: %v", err)
		}
		fmt.Fprintf(st.out, "Imported %d recipe(s) from %s", len(result.Added), bf.book)
		if len(result.Skipped) > 0 {
			fmt.Fprintf(st.out, " (skipped %d duplicate(s))", len(result.Skipped))
		}
		fmt.Fprintln(st.out)
	}

	if err := sh.Run(ctx); err != nil {
		return fail(st, "%v", err)
	}

	if *exportPath != "" {
		recipes := store.Recipes()
		if err := yaml.NewBookRepository(*exportPath).Save(ctx, recipes); err != nil {
			return fail(st, "exporting recipe book: %v", err)
		}
		fmt.Fprintf(st.out, "Exported %d recipe(s) to %s\n", len(recipes), *exportPath)
	}

	return 0
}
