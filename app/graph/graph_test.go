package graph

import (
	"context"
	"encoding/json"
	"testing"

	graphql "github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"
	"github.com/stretchr/testify/require"

	"github.com/mytheresa/cookbook/models"
)

type category struct {
	ID          int32        `json:"id"`
	Name        string       `json:"name"`
	Ingredients []ingredient `json:"ingredients"`
}

type ingredient struct {
	ID       int32     `json:"id"`
	Name     string    `json:"name"`
	Notes    string    `json:"notes"`
	Category *category `json:"category"`
}

func newTestSchema(t *testing.T, repo models.Repository) *graphql.Schema {
	t.Helper()
	schema, err := NewSchema(repo, nil)
	require.NoError(t, err)
	return schema
}

// exec runs a document and decodes its data into out.
func exec(t *testing.T, schema *graphql.Schema, query string, vars map[string]interface{}, out interface{}) []*gqlerrors.QueryError {
	t.Helper()
	resp := schema.Exec(context.Background(), query, "", vars)
	if out != nil && len(resp.Data) > 0 {
		require.NoError(t, json.Unmarshal(resp.Data, out))
	}
	return resp.Errors
}

func mustExec(t *testing.T, schema *graphql.Schema, query string, vars map[string]interface{}, out interface{}) {
	t.Helper()
	errs := exec(t, schema, query, vars, out)
	require.Empty(t, errs)
}

func errorCode(err *gqlerrors.QueryError) interface{} {
	if err == nil || err.Extensions == nil {
		return nil
	}
	return err.Extensions["code"]
}

// seed creates the Dairy category and the Milk ingredient.
func seed(t *testing.T, schema *graphql.Schema) (categoryID, ingredientID int32) {
	t.Helper()

	var created struct {
		CreateCategory struct {
			Category category `json:"category"`
			Ok       bool     `json:"ok"`
		} `json:"createCategory"`
	}
	mustExec(t, schema, `mutation { createCategory(name: "Dairy") { category { id name } ok } }`, nil, &created)
	require.True(t, created.CreateCategory.Ok)

	var milk struct {
		CreateIngredient struct {
			Ingredient ingredient `json:"ingredient"`
			Ok         bool       `json:"ok"`
		} `json:"createIngredient"`
	}
	mustExec(t, schema, `mutation($c: Int!) {
		createIngredient(name: "Milk", notes: "2%", category: $c) { ingredient { id } ok }
	}`, map[string]interface{}{"c": created.CreateCategory.Category.ID}, &milk)
	require.True(t, milk.CreateIngredient.Ok)

	return created.CreateCategory.Category.ID, milk.CreateIngredient.Ingredient.ID
}
