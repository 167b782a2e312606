package graph

import (
	"context"

	"go.uber.org/zap"

	"github.com/mytheresa/cookbook/models"
)

type ingredientResolver struct {
	root       *Resolver
	ingredient models.Ingredient
}

func (r *Resolver) newIngredient(i *models.Ingredient) *ingredientResolver {
	return &ingredientResolver{root: r, ingredient: *i}
}

func (i *ingredientResolver) ID() int32 { return int32(i.ingredient.ID) }

func (i *ingredientResolver) Name() string { return i.ingredient.Name }

func (i *ingredientResolver) Notes() string { return i.ingredient.Notes }

func (i *ingredientResolver) Category(ctx context.Context) (*categoryResolver, error) {
	category, err := i.root.repo.GetCategoryByID(ctx, i.ingredient.CategoryID)
	if err != nil {
		return nil, i.root.fail("ingredient.category", err)
	}
	return i.root.newCategory(category), nil
}

type ingredientPayload struct {
	ingredient *ingredientResolver
	ok         bool
}

func (p *ingredientPayload) Ingredient() *ingredientResolver { return p.ingredient }

func (p *ingredientPayload) Ok() bool { return p.ok }

type ingredientArgs struct {
	ID   *int32
	Name *string
}

func (r *Resolver) Ingredient(ctx context.Context, args ingredientArgs) (*ingredientResolver, error) {
	var (
		ingredient *models.Ingredient
		err        error
	)
	switch {
	case args.ID != nil:
		ingredient, err = r.repo.GetIngredientByID(ctx, toID(*args.ID))
	case args.Name != nil:
		ingredient, err = r.repo.GetIngredientByName(ctx, *args.Name)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, r.fail("ingredient", err)
	}
	return r.newIngredient(ingredient), nil
}

func (r *Resolver) AllIngredients(ctx context.Context) ([]*ingredientResolver, error) {
	ingredients, err := r.repo.GetAllIngredients(ctx)
	if err != nil {
		return nil, r.fail("allIngredients", err)
	}
	out := make([]*ingredientResolver, len(ingredients))
	for i := range ingredients {
		out[i] = r.newIngredient(&ingredients[i])
	}
	return out, nil
}

type createIngredientArgs struct {
	Name     string
	Notes    string
	Category int32
}

// CreateIngredient resolves the category reference before inserting, so an
// unknown category fails with NotFound and writes nothing.
func (r *Resolver) CreateIngredient(ctx context.Context, args createIngredientArgs) (*ingredientPayload, error) {
	var ingredient *models.Ingredient
	err := r.repo.Atomic(ctx, func(tx models.Repository) error {
		category, err := tx.GetCategoryByID(ctx, toID(args.Category))
		if err != nil {
			return err
		}
		ingredient = &models.Ingredient{
			Name:       args.Name,
			Notes:      args.Notes,
			CategoryID: category.ID,
		}
		return tx.CreateIngredient(ctx, ingredient)
	})
	if err != nil {
		return nil, r.fail("createIngredient", err)
	}
	r.log.Debug("ingredient created", zap.Uint("id", ingredient.ID), zap.Uint("category", ingredient.CategoryID))
	return &ingredientPayload{ingredient: r.newIngredient(ingredient), ok: true}, nil
}

type updateIngredientArgs struct {
	ID       int32
	Name     *string
	Notes    *string
	Category *int32
}

func (r *Resolver) UpdateIngredient(ctx context.Context, args updateIngredientArgs) (*ingredientPayload, error) {
	id := toID(args.ID)
	var payload ingredientPayload
	err := r.repo.Atomic(ctx, func(tx models.Repository) error {
		fields := models.IngredientUpdate{Name: args.Name, Notes: args.Notes}
		if args.Category != nil {
			category, err := tx.GetCategoryByID(ctx, toID(*args.Category))
			if err != nil {
				return err
			}
			fields.CategoryID = &category.ID
		}
		ok, err := tx.UpdateIngredient(ctx, id, fields)
		if err != nil {
			return err
		}
		ingredient, err := tx.GetIngredientByID(ctx, id)
		if err != nil {
			return err
		}
		payload = ingredientPayload{ingredient: r.newIngredient(ingredient), ok: ok}
		return nil
	})
	if err != nil {
		return nil, r.fail("updateIngredient", err)
	}
	r.log.Debug("ingredient updated", zap.Uint("id", id), zap.Bool("ok", payload.ok))
	return &payload, nil
}

func (r *Resolver) DeleteIngredient(ctx context.Context, args struct{ ID int32 }) (*deletePayload, error) {
	id := toID(args.ID)
	var ok bool
	err := r.repo.Atomic(ctx, func(tx models.Repository) error {
		if _, err := tx.GetIngredientByID(ctx, id); err != nil {
			return err
		}
		var err error
		ok, err = tx.DeleteIngredient(ctx, id)
		return err
	})
	if err != nil {
		return nil, r.fail("deleteIngredient", err)
	}
	r.log.Debug("ingredient deleted", zap.Uint("id", id), zap.Bool("ok", ok))
	return &deletePayload{ok: ok}, nil
}
