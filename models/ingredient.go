package models

// Ingredient represents an ingredient in the cookbook.
// It belongs to exactly one category; many ingredients may share a category.
type Ingredient struct {
	ID         uint     `gorm:"primaryKey"`
	Name       string   `gorm:"not null"`
	Notes      string   `gorm:"type:text;not null"`
	CategoryID uint     `gorm:"not null;index"`
	Category   Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (i *Ingredient) TableName() string {
	return "ingredients"
}

// IngredientUpdate holds the ingredient fields a partial update may change.
// CategoryID must already be resolved to an existing category.
type IngredientUpdate struct {
	Name       *string
	Notes      *string
	CategoryID *uint
}

func (u IngredientUpdate) IsEmpty() bool {
	return u.Name == nil && u.Notes == nil && u.CategoryID == nil
}

func (u IngredientUpdate) columns() map[string]any {
	cols := map[string]any{}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Notes != nil {
		cols["notes"] = *u.Notes
	}
	if u.CategoryID != nil {
		cols["category_id"] = *u.CategoryID
	}
	return cols
}
