package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mytheresa/cookbook/models"
)

type ingredientMutation struct {
	Ingredient *ingredient `json:"ingredient"`
	Ok         bool        `json:"ok"`
}

func TestCreateIngredient(t *testing.T) {
	t.Run("Links the category", func(t *testing.T) {
		schema := newTestSchema(t, models.NewMemoryRepository())
		categoryID, ingredientID := seed(t, schema)

		var data struct {
			Ingredient ingredient `json:"ingredient"`
		}
		mustExec(t, schema, `query($id: Int) { ingredient(id: $id) { id name notes category { id name } } }`,
			map[string]interface{}{"id": ingredientID}, &data)

		assert.Equal(t, "Milk", data.Ingredient.Name)
		assert.Equal(t, "2%", data.Ingredient.Notes)
		require.NotNil(t, data.Ingredient.Category)
		assert.Equal(t, categoryID, data.Ingredient.Category.ID)
		assert.Equal(t, "Dairy", data.Ingredient.Category.Name)
	})

	t.Run("Unknown category creates nothing", func(t *testing.T) {
		schema := newTestSchema(t, models.NewMemoryRepository())

		var data struct {
			CreateIngredient *ingredientMutation `json:"createIngredient"`
		}
		errs := exec(t, schema, `mutation { createIngredient(name: "Milk", notes: "", category: 7) { ingredient { id } ok } }`, nil, &data)
		require.Len(t, errs, 1)
		assert.Equal(t, codeNotFound, errorCode(errs[0]))
		assert.Nil(t, data.CreateIngredient)

		var all struct {
			AllIngredients []ingredient `json:"allIngredients"`
		}
		mustExec(t, schema, `{ allIngredients { id } }`, nil, &all)
		assert.Empty(t, all.AllIngredients)
	})
}

func TestIngredientLookup(t *testing.T) {
	schema := newTestSchema(t, models.NewMemoryRepository())
	_, ingredientID := seed(t, schema)

	var byName struct {
		Ingredient *ingredient `json:"ingredient"`
	}
	mustExec(t, schema, `{ ingredient(name: "Milk") { id } }`, nil, &byName)
	require.NotNil(t, byName.Ingredient)
	assert.Equal(t, ingredientID, byName.Ingredient.ID)

	var none struct {
		Ingredient *ingredient `json:"ingredient"`
	}
	mustExec(t, schema, `{ ingredient { id } }`, nil, &none)
	assert.Nil(t, none.Ingredient)

	errs := exec(t, schema, `{ ingredient(name: "Eggs") { id } }`, nil, nil)
	require.Len(t, errs, 1)
	assert.Equal(t, codeNotFound, errorCode(errs[0]))
}

func TestUpdateIngredient(t *testing.T) {
	testCases := []struct {
		name             string
		query            string
		expectedOK       bool
		expectedName     string
		expectedNotes    string
		expectedCategory string
		expectedCode     interface{}
	}{
		{
			name:             "Notes only keeps the category",
			query:            `mutation($id: Int!) { updateIngredient(id: $id, notes: "whole") { ingredient { name notes category { name } } ok } }`,
			expectedOK:       true,
			expectedName:     "Milk",
			expectedNotes:    "whole",
			expectedCategory: "Dairy",
		},
		{
			name:             "Re-point the category",
			query:            `mutation($id: Int!, $c: Int) { updateIngredient(id: $id, category: $c) { ingredient { name notes category { name } } ok } }`,
			expectedOK:       true,
			expectedName:     "Milk",
			expectedNotes:    "2%",
			expectedCategory: "Drinks",
		},
		{
			name:             "No fields",
			query:            `mutation($id: Int!) { updateIngredient(id: $id) { ingredient { name notes category { name } } ok } }`,
			expectedOK:       false,
			expectedName:     "Milk",
			expectedNotes:    "2%",
			expectedCategory: "Dairy",
		},
		{
			name:         "Unknown category",
			query:        `mutation($id: Int!) { updateIngredient(id: $id, name: "Oat milk", category: 999) { ok } }`,
			expectedCode: codeNotFound,
		},
		{
			name:         "Category zero is resolved too",
			query:        `mutation($id: Int!) { updateIngredient(id: $id, category: 0) { ok } }`,
			expectedCode: codeNotFound,
		},
		{
			name:         "Unknown ingredient",
			query:        `mutation { updateIngredient(id: 999, notes: "whole") { ok } }`,
			expectedCode: codeNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			schema := newTestSchema(t, models.NewMemoryRepository())
			_, ingredientID := seed(t, schema)

			var drinks struct {
				CreateCategory struct {
					Category category `json:"category"`
				} `json:"createCategory"`
			}
			mustExec(t, schema, `mutation { createCategory(name: "Drinks") { category { id } ok } }`, nil, &drinks)

			vars := map[string]interface{}{
				"id": ingredientID,
				"c":  drinks.CreateCategory.Category.ID,
			}
			var data struct {
				UpdateIngredient *ingredientMutation `json:"updateIngredient"`
			}
			errs := exec(t, schema, tc.query, vars, &data)

			var after struct {
				Ingredient ingredient `json:"ingredient"`
			}
			mustExec(t, schema, `query($id: Int) { ingredient(id: $id) { name notes category { name } } }`,
				map[string]interface{}{"id": ingredientID}, &after)

			if tc.expectedCode != nil {
				require.Len(t, errs, 1)
				assert.Equal(t, tc.expectedCode, errorCode(errs[0]))
				assert.Nil(t, data.UpdateIngredient)
				assert.Equal(t, "Milk", after.Ingredient.Name, "failed update must not write")
				return
			}
			require.Empty(t, errs)
			require.NotNil(t, data.UpdateIngredient)
			assert.Equal(t, tc.expectedOK, data.UpdateIngredient.Ok)
			assert.Equal(t, tc.expectedNotes, data.UpdateIngredient.Ingredient.Notes)
			assert.Equal(t, tc.expectedCategory, data.UpdateIngredient.Ingredient.Category.Name)

			assert.Equal(t, tc.expectedName, after.Ingredient.Name)
			assert.Equal(t, tc.expectedNotes, after.Ingredient.Notes)
			assert.Equal(t, tc.expectedCategory, after.Ingredient.Category.Name)
		})
	}
}

func TestDeleteIngredient(t *testing.T) {
	schema := newTestSchema(t, models.NewMemoryRepository())
	categoryID, ingredientID := seed(t, schema)
	vars := map[string]interface{}{"id": ingredientID}

	var data struct {
		DeleteIngredient struct {
			Ok bool `json:"ok"`
		} `json:"deleteIngredient"`
	}
	mustExec(t, schema, `mutation($id: Int!) { deleteIngredient(id: $id) { ok } }`, vars, &data)
	assert.True(t, data.DeleteIngredient.Ok)

	errs := exec(t, schema, `query($id: Int) { ingredient(id: $id) { id } }`, vars, nil)
	require.Len(t, errs, 1)
	assert.Equal(t, codeNotFound, errorCode(errs[0]))

	errs = exec(t, schema, `mutation($id: Int!) { deleteIngredient(id: $id) { ok } }`, vars, nil)
	require.Len(t, errs, 1)
	assert.Equal(t, codeNotFound, errorCode(errs[0]))

	// With no ingredients left the category can go.
	mustExec(t, schema, `mutation($id: Int!) { deleteCategory(id: $id) { ok } }`,
		map[string]interface{}{"id": categoryID}, nil)
}
