package orchestrators

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ochairo/cookbook/internal/domain/entities"
	"github.com/ochairo/cookbook/internal/domain/services"
)

// Mock implementations for testing
type mockRecipeBook struct {
	recipes []*entities.Recipe
	err     error
	loads   int
}

func (m *mockRecipeBook) Load(_ context.Context) ([]*entities.Recipe, error) {
	m.loads++
	if m.err != nil {
		return nil, m.err
	}
	return m.recipes, nil
}

func (m *mockRecipeBook) Save(_ context.Context, _ []*entities.Recipe) error {
	return errors.New("not implemented")
}

// mockRawBook serves fixed bytes and decodes them into fixed recipes
type mockRawBook struct {
	mockRecipeBook
	data    []byte
	reads   int
	decoded [][]byte
}

func (m *mockRawBook) Path() string { return "book.yml" }

func (m *mockRawBook) ReadRaw(_ context.Context) ([]byte, error) {
	m.reads++
	return m.data, nil
}

func (m *mockRawBook) Decode(data []byte) ([]*entities.Recipe, error) {
	m.decoded = append(m.decoded, data)
	return m.recipes, nil
}

type mockVerifier struct {
	signer  string
	err     error
	sigPath string
	data    []byte
}

func (m *mockVerifier) VerifyBytes(data []byte, sigPath string) (string, error) {
	m.data = data
	m.sigPath = sigPath
	return m.signer, m.err
}

func mustRecipe(t *testing.T, name string, calories ...int) *entities.Recipe {
	t.Helper()
	ings := make([]entities.Ingredient, 0, len(calories))
	for _, c := range calories {
		ings = append(ings, entities.Ingredient{Name: "item", Calories: c, FoodGroup: entities.FoodGroupGrain})
	}
	r, err := entities.NewRecipe(name, ings, []string{"Mix"})
	require.NoError(t, err)
	return r
}

func TestImportOrchestrator_Import(t *testing.T) {
	store := services.NewRecipeStore(nil)
	_, err := store.AddRecipe("Soup", nil, nil)
	require.NoError(t, err)

	var warned []string
	store.OnCaloriesExceeded(func(r *entities.Recipe) error {
		warned = append(warned, r.Name())
		return nil
	})

	book := &mockRecipeBook{recipes: []*entities.Recipe{
		mustRecipe(t, "Pancakes", 200, 200),
		mustRecipe(t, "soup", 50),
		mustRecipe(t, "Toast", 120),
		mustRecipe(t, "PANCAKES", 10),
	}}

	orch := NewImportOrchestrator(store, nil, nil)
	result, err := orch.Import(context.Background(), book, ImportOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Pancakes", "Toast"}, result.Added)
	assert.Equal(t, []string{"soup", "PANCAKES"}, result.Skipped)
	assert.Empty(t, result.Signer)
	assert.Equal(t, []string{"Pancakes", "Soup", "Toast"}, store.ListRecipeNames())
	assert.Equal(t, []string{"Pancakes"}, warned)

	pancakes, ok := store.FindRecipe("pancakes")
	require.True(t, ok)
	assert.Equal(t, 400, pancakes.TotalCalories())
	assert.Equal(t, []string{"Mix"}, pancakes.Steps())
}

func TestImportOrchestrator_VerifiesTheBytesItImports(t *testing.T) {
	store := services.NewRecipeStore(nil)
	verifier := &mockVerifier{signer: "ABCDEF"}
	book := &mockRawBook{
		mockRecipeBook: mockRecipeBook{recipes: []*entities.Recipe{mustRecipe(t, "Oats", 150)}},
		data:           []byte("recipes:\n  - name: Oats\n"),
	}

	orch := NewImportOrchestrator(store, verifier, nil)
	result, err := orch.Import(context.Background(), book, ImportOptions{SignaturePath: "book.yml.asc"})
	require.NoError(t, err)

	assert.Equal(t, "book.yml.asc", verifier.sigPath)
	assert.Equal(t, 1, book.reads)
	assert.Zero(t, book.loads, "a signed import must not read the book a second time")
	require.Len(t, book.decoded, 1)
	assert.Equal(t, verifier.data, book.decoded[0])
	assert.Equal(t, "ABCDEF", result.Signer)
	assert.Equal(t, 1, store.Len())
}

func TestImportOrchestrator_BadSignatureLeavesStoreUntouched(t *testing.T) {
	store := services.NewRecipeStore(nil)
	verifier := &mockVerifier{err: errors.New("signature verification failed")}
	book := &mockRawBook{
		mockRecipeBook: mockRecipeBook{recipes: []*entities.Recipe{mustRecipe(t, "Oats", 150)}},
		data:           []byte("tampered"),
	}

	orch := NewImportOrchestrator(store, verifier, nil)
	_, err := orch.Import(context.Background(), book, ImportOptions{SignaturePath: "b.asc"})
	require.ErrorContains(t, err, "signature verification failed")

	assert.Empty(t, book.decoded)
	assert.Zero(t, book.loads)
	assert.Zero(t, store.Len())
}

func TestImportOrchestrator_SignedImportNeedsRawBook(t *testing.T) {
	orch := NewImportOrchestrator(services.NewRecipeStore(nil), &mockVerifier{}, nil)

	_, err := orch.Import(context.Background(), &mockRecipeBook{}, ImportOptions{SignaturePath: "b.asc"})
	assert.ErrorContains(t, err, "does not expose its bytes")
}

func TestImportOrchestrator_SignatureWithoutVerifier(t *testing.T) {
	orch := NewImportOrchestrator(services.NewRecipeStore(nil), nil, nil)

	_, err := orch.Import(context.Background(), &mockRawBook{}, ImportOptions{SignaturePath: "b.asc"})
	assert.ErrorContains(t, err, "no keyring")
}

func TestImportOrchestrator_LoadError(t *testing.T) {
	orch := NewImportOrchestrator(services.NewRecipeStore(nil), nil, nil)

	_, err := orch.Import(context.Background(), &mockRecipeBook{err: errors.New("disk on fire")}, ImportOptions{})
	assert.ErrorContains(t, err, "disk on fire")
}

func TestImportOrchestrator_ListenerErrorStopsImport(t *testing.T) {
	store := services.NewRecipeStore(nil)
	store.OnCaloriesExceeded(func(*entities.Recipe) error { return errors.New("listener failed") })

	book := &mockRecipeBook{recipes: []*entities.Recipe{
		mustRecipe(t, "Light", 10),
		mustRecipe(t, "Heavy", 500),
		mustRecipe(t, "Later", 10),
	}}

	result, err := NewImportOrchestrator(store, nil, nil).Import(context.Background(), book, ImportOptions{})
	require.Error(t, err)

	var nerr *services.NotificationError
	assert.ErrorAs(t, err, &nerr)
	assert.Equal(t, []string{"Light", "Heavy"}, result.Added)
	assert.Equal(t, []string{"Heavy", "Light"}, store.ListRecipeNames())
}

func TestImportOrchestrator_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := services.NewRecipeStore(nil)
	book := &mockRecipeBook{recipes: []*entities.Recipe{mustRecipe(t, "Oats", 150)}}

	_, err := NewImportOrchestrator(store, nil, nil).Import(ctx, book, ImportOptions{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, store.Len())
}
