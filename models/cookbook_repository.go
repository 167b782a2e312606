package models

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CookbookRepository implements Repository on top of gorm.
type CookbookRepository struct {
	db *gorm.DB
}

func NewCookbookRepository(db *gorm.DB) *CookbookRepository {
	return &CookbookRepository{
		db: db,
	}
}

// Atomic runs fn inside a database transaction.
func (r *CookbookRepository) Atomic(ctx context.Context, fn func(tx Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&CookbookRepository{db: tx})
	})
}

func (r *CookbookRepository) GetCategoryByID(ctx context.Context, id uint) (*Category, error) {
	var category Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, errors.Wrapf(err, "get category %d", id)
	}
	return &category, nil
}

func (r *CookbookRepository) GetCategoryByName(ctx context.Context, name string) (*Category, error) {
	var category Category
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, errors.Wrapf(err, "get category %q", name)
	}
	return &category, nil
}

func (r *CookbookRepository) GetAllCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return categories, nil
}

func (r *CookbookRepository) CreateCategory(ctx context.Context, category *Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return errors.Wrap(err, "create category")
	}
	return nil
}

func (r *CookbookRepository) UpdateCategory(ctx context.Context, id uint, fields CategoryUpdate) (bool, error) {
	if fields.IsEmpty() {
		return false, nil
	}
	res := r.db.WithContext(ctx).
		Model(&Category{}).
		Where("id = ?", id).
		Updates(fields.columns())
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "update category %d", id)
	}
	return res.RowsAffected > 0, nil
}

func (r *CookbookRepository) DeleteCategory(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&Category{}, id)
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "delete category %d", id)
	}
	return res.RowsAffected > 0, nil
}

func (r *CookbookRepository) GetIngredientByID(ctx context.Context, id uint) (*Ingredient, error) {
	var ingredient Ingredient
	if err := r.db.WithContext(ctx).First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, errors.Wrapf(err, "get ingredient %d", id)
	}
	return &ingredient, nil
}

func (r *CookbookRepository) GetIngredientByName(ctx context.Context, name string) (*Ingredient, error) {
	var ingredient Ingredient
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, errors.Wrapf(err, "get ingredient %q", name)
	}
	return &ingredient, nil
}

func (r *CookbookRepository) GetAllIngredients(ctx context.Context) ([]Ingredient, error) {
	var ingredients []Ingredient
	if err := r.db.WithContext(ctx).Order("id").Find(&ingredients).Error; err != nil {
		return nil, errors.Wrap(err, "list ingredients")
	}
	return ingredients, nil
}

func (r *CookbookRepository) GetIngredientsByCategory(ctx context.Context, categoryID uint) ([]Ingredient, error) {
	var ingredients []Ingredient
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&ingredients).Error; err != nil {
		return nil, errors.Wrapf(err, "list ingredients of category %d", categoryID)
	}
	return ingredients, nil
}

func (r *CookbookRepository) CountIngredientsByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&Ingredient{}).
		Where("category_id = ?", categoryID).
		Count(&total).Error; err != nil {
		return 0, errors.Wrapf(err, "count ingredients of category %d", categoryID)
	}
	return total, nil
}

func (r *CookbookRepository) CreateIngredient(ctx context.Context, ingredient *Ingredient) error {
	// The category is resolved by the caller; never upsert it from here.
	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(ingredient).Error; err != nil {
		return errors.Wrap(err, "create ingredient")
	}
	return nil
}

func (r *CookbookRepository) UpdateIngredient(ctx context.Context, id uint, fields IngredientUpdate) (bool, error) {
	if fields.IsEmpty() {
		return false, nil
	}
	res := r.db.WithContext(ctx).
		Model(&Ingredient{}).
		Where("id = ?", id).
		Updates(fields.columns())
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "update ingredient %d", id)
	}
	return res.RowsAffected > 0, nil
}

func (r *CookbookRepository) DeleteIngredient(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&Ingredient{}, id)
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "delete ingredient %d", id)
	}
	return res.RowsAffected > 0, nil
}
