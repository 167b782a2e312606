package models

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrCategoryNotFound is returned when a category lookup matches no row.
	ErrCategoryNotFound = errors.New("category matching query does not exist")
	// ErrIngredientNotFound is returned when an ingredient lookup matches no row.
	ErrIngredientNotFound = errors.New("ingredient matching query does not exist")
	// ErrCategoryInUse is returned when deleting a category that ingredients still reference.
	ErrCategoryInUse = errors.New("category is referenced by ingredients")
)

// IsNotFound reports whether err is one of the lookup-miss errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound) || errors.Is(err, ErrIngredientNotFound)
}

type CategoryRepository interface {
	GetCategoryByID(ctx context.Context, id uint) (*Category, error)
	GetCategoryByName(ctx context.Context, name string) (*Category, error)
	GetAllCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, category *Category) error
	// UpdateCategory applies the present fields and reports whether a row matched.
	UpdateCategory(ctx context.Context, id uint, fields CategoryUpdate) (bool, error)
	// DeleteCategory reports whether a row was removed.
	DeleteCategory(ctx context.Context, id uint) (bool, error)
}

type IngredientRepository interface {
	GetIngredientByID(ctx context.Context, id uint) (*Ingredient, error)
	GetIngredientByName(ctx context.Context, name string) (*Ingredient, error)
	GetAllIngredients(ctx context.Context) ([]Ingredient, error)
	GetIngredientsByCategory(ctx context.Context, categoryID uint) ([]Ingredient, error)
	CountIngredientsByCategory(ctx context.Context, categoryID uint) (int64, error)
	CreateIngredient(ctx context.Context, ingredient *Ingredient) error
	UpdateIngredient(ctx context.Context, id uint, fields IngredientUpdate) (bool, error)
	DeleteIngredient(ctx context.Context, id uint) (bool, error)
}

// Repository is the persistence handle the resolvers are built on.
type Repository interface {
	CategoryRepository
	IngredientRepository

	// Atomic runs fn against a repository bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	Atomic(ctx context.Context, fn func(tx Repository) error) error
}
