package graph

import (
	"context"

	"go.uber.org/zap"

	"github.com/mytheresa/cookbook/models"
)

type categoryResolver struct {
	root     *Resolver
	category models.Category
}

func (r *Resolver) newCategory(c *models.Category) *categoryResolver {
	return &categoryResolver{root: r, category: *c}
}

func (c *categoryResolver) ID() int32 { return int32(c.category.ID) }

func (c *categoryResolver) Name() string { return c.category.Name }

// Ingredients resolves the reverse side of Ingredient.category.
func (c *categoryResolver) Ingredients(ctx context.Context) ([]*ingredientResolver, error) {
	ingredients, err := c.root.repo.GetIngredientsByCategory(ctx, c.category.ID)
	if err != nil {
		return nil, c.root.fail("category.ingredients", err)
	}
	out := make([]*ingredientResolver, len(ingredients))
	for i := range ingredients {
		out[i] = c.root.newIngredient(&ingredients[i])
	}
	return out, nil
}

type categoryPayload struct {
	category *categoryResolver
	ok       bool
}

func (p *categoryPayload) Category() *categoryResolver { return p.category }

func (p *categoryPayload) Ok() bool { return p.ok }

type categoryArgs struct {
	ID   *int32
	Name *string
}

// Category looks a category up by id, falling back to name. With neither
// argument it resolves to null.
func (r *Resolver) Category(ctx context.Context, args categoryArgs) (*categoryResolver, error) {
	var (
		category *models.Category
		err      error
	)
	switch {
	case args.ID != nil:
		category, err = r.repo.GetCategoryByID(ctx, toID(*args.ID))
	case args.Name != nil:
		category, err = r.repo.GetCategoryByName(ctx, *args.Name)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, r.fail("category", err)
	}
	return r.newCategory(category), nil
}

func (r *Resolver) AllCategories(ctx context.Context) ([]*categoryResolver, error) {
	categories, err := r.repo.GetAllCategories(ctx)
	if err != nil {
		return nil, r.fail("allCategories", err)
	}
	out := make([]*categoryResolver, len(categories))
	for i := range categories {
		out[i] = r.newCategory(&categories[i])
	}
	return out, nil
}

func (r *Resolver) CreateCategory(ctx context.Context, args struct{ Name string }) (*categoryPayload, error) {
	category := &models.Category{Name: args.Name}
	err := r.repo.Atomic(ctx, func(tx models.Repository) error {
		return tx.CreateCategory(ctx, category)
	})
	if err != nil {
		return nil, r.fail("createCategory", err)
	}
	r.log.Debug("category created", zap.Uint("id", category.ID))
	return &categoryPayload{category: r.newCategory(category), ok: true}, nil
}

type updateCategoryArgs struct {
	ID   int32
	Name *string
}

// UpdateCategory applies the present fields, then returns the row as stored.
// ok is false when no field was given or no row matched.
func (r *Resolver) UpdateCategory(ctx context.Context, args updateCategoryArgs) (*categoryPayload, error) {
	id := toID(args.ID)
	var payload categoryPayload
	err := r.repo.Atomic(ctx, func(tx models.Repository) error {
		ok, err := tx.UpdateCategory(ctx, id, models.CategoryUpdate{Name: args.Name})
		if err != nil {
			return err
		}
		category, err := tx.GetCategoryByID(ctx, id)
		if err != nil {
			return err
		}
		payload = categoryPayload{category: r.newCategory(category), ok: ok}
		return nil
	})
	if err != nil {
		return nil, r.fail("updateCategory", err)
	}
	r.log.Debug("category updated", zap.Uint("id", id), zap.Bool("ok", payload.ok))
	return &payload, nil
}

// DeleteCategory refuses to remove a category that ingredients still reference.
func (r *Resolver) DeleteCategory(ctx context.Context, args struct{ ID int32 }) (*deletePayload, error) {
	id := toID(args.ID)
	var ok bool
	err := r.repo.Atomic(ctx, func(tx models.Repository) error {
		if _, err := tx.GetCategoryByID(ctx, id); err != nil {
			return err
		}
		n, err := tx.CountIngredientsByCategory(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return models.ErrCategoryInUse
		}
		ok, err = tx.DeleteCategory(ctx, id)
		return err
	})
	if err != nil {
		return nil, r.fail("deleteCategory", err)
	}
	r.log.Debug("category deleted", zap.Uint("id", id), zap.Bool("ok", ok))
	return &deletePayload{ok: ok}, nil
}
