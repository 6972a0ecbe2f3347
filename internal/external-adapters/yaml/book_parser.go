// Package yaml provides the YAML recipe book parser and file repository.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ochairo/cookbook/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlBook represents the raw YAML structure of a recipe book
type yamlBook struct {
	Recipes []yamlRecipe `yaml:"recipes"`
}

type yamlRecipe struct {
	Name        string           `yaml:"name"`
	Ingredients []yamlIngredient `yaml:"ingredients,omitempty"`
	Steps       []string         `yaml:"steps,omitempty"`
}

type yamlIngredient struct {
	Name      string `yaml:"name"`
	Calories  int    `yaml:"calories"`
	FoodGroup string `yaml:"food_group"`
}

// BookParser converts between YAML recipe books and recipe entities
type BookParser struct{}

// NewBookParser creates a new YAML parser
func NewBookParser() *BookParser {
	return &BookParser{}
}

// Parse parses YAML bytes into recipes, validating every entry with the
// same rules the store applies. Duplicate names are left to the store.
func (p *BookParser) Parse(data []byte) ([]*entities.Recipe, error) {
	var book yamlBook
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&book); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	recipes := make([]*entities.Recipe, 0, len(book.Recipes))
	for idx, yr := range book.Recipes {
		r, err := convertRecipe(yr)
		if err != nil {
			return nil, fmt.Errorf("recipe #%d: %w", idx+1, err)
		}
		recipes = append(recipes, r)
	}

	return recipes, nil
}

// Marshal renders recipes as a YAML recipe book
func (p *BookParser) Marshal(recipes []*entities.Recipe) ([]byte, error) {
	book := yamlBook{Recipes: make([]yamlRecipe, 0, len(recipes))}
	for _, r := range recipes {
		yr := yamlRecipe{Name: r.Name(), Steps: r.Steps()}
		for _, ing := range r.Ingredients() {
			yr.Ingredients = append(yr.Ingredients, yamlIngredient{
				Name:      ing.Name,
				Calories:  ing.Calories,
				FoodGroup: ing.FoodGroup.String(),
			})
		}
		book.Recipes = append(book.Recipes, yr)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(book); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}

	return buf.Bytes(), nil
}

func convertRecipe(yr yamlRecipe) (*entities.Recipe, error) {
	ingredients := make([]entities.Ingredient, 0, len(yr.Ingredients))
	for idx, yi := range yr.Ingredients {
		group, err := entities.ParseFoodGroup(yi.FoodGroup)
		if err != nil {
			return nil, fmt.Errorf("ingredient %d: %w", idx+1, err)
		}
		ing, err := entities.NewIngredient(yi.Name, yi.Calories, group)
		if err != nil {
			return nil, fmt.Errorf("ingredient %d: %w", idx+1, err)
		}
		ingredients = append(ingredients, ing)
	}

	return entities.NewRecipe(yr.Name, ingredients, yr.Steps)
}
