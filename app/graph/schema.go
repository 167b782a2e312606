package graph

import (
	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"github.com/mytheresa/cookbook/models"
)

const schemaSDL = `
schema {
	query: Query
	mutation: Mutation
}

type Query {
	category(id: Int, name: String): Category
	allCategories: [Category!]!
	ingredient(id: Int, name: String): Ingredient
	allIngredients: [Ingredient!]!
}

type Mutation {
	createCategory(name: String!): CategoryPayload
	updateCategory(id: Int!, name: String): CategoryPayload
	deleteCategory(id: Int!): DeletePayload
	createIngredient(name: String!, notes: String!, category: Int!): IngredientPayload
	updateIngredient(id: Int!, name: String, notes: String, category: Int): IngredientPayload
	deleteIngredient(id: Int!): DeletePayload
}

type Category {
	id: Int!
	name: String!
	ingredients: [Ingredient!]!
}

type Ingredient {
	id: Int!
	name: String!
	notes: String!
	category: Category!
}

type CategoryPayload {
	category: Category
	ok: Boolean!
}

type IngredientPayload {
	ingredient: Ingredient
	ok: Boolean!
}

type DeletePayload {
	ok: Boolean!
}
`

// NewSchema parses the cookbook schema and binds it to a resolver over repo.
func NewSchema(repo models.Repository, log *zap.Logger) (*graphql.Schema, error) {
	resolver := NewResolver(repo, log)
	return graphql.ParseSchema(schemaSDL, resolver,
		graphql.Logger(panicLogger{log: resolver.log}),
	)
}
