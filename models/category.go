package models

// Category groups ingredients.
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (c *Category) TableName() string {
	return "categories"
}

// CategoryUpdate holds the category fields a partial update may change.
// Nil fields are left untouched.
type CategoryUpdate struct {
	Name *string
}

// IsEmpty reports whether the update carries no fields.
func (u CategoryUpdate) IsEmpty() bool {
	return u.Name == nil
}

func (u CategoryUpdate) columns() map[string]any {
	cols := map[string]any{}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	return cols
}
