package models

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository is a Repository kept entirely in process memory.
// Atomic works on a copy of the data that replaces the live copy on success.
type MemoryRepository struct {
	mu   *sync.Mutex
	data *memoryData
	inTx bool
}

type memoryData struct {
	categories       map[uint]Category
	ingredients      map[uint]Ingredient
	nextCategoryID   uint
	nextIngredientID uint
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		mu: &sync.Mutex{},
		data: &memoryData{
			categories:  map[uint]Category{},
			ingredients: map[uint]Ingredient{},
		},
	}
}

func (d *memoryData) clone() *memoryData {
	c := &memoryData{
		categories:       make(map[uint]Category, len(d.categories)),
		ingredients:      make(map[uint]Ingredient, len(d.ingredients)),
		nextCategoryID:   d.nextCategoryID,
		nextIngredientID: d.nextIngredientID,
	}
	for id, v := range d.categories {
		c.categories[id] = v
	}
	for id, v := range d.ingredients {
		c.ingredients[id] = v
	}
	return c
}

// lock is a no-op inside Atomic, which already holds the mutex.
func (r *MemoryRepository) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *MemoryRepository) Atomic(ctx context.Context, fn func(tx Repository) error) error {
	if r.inTx {
		return fn(r)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	tx := &MemoryRepository{mu: r.mu, data: r.data.clone(), inTx: true}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.data = tx.data
	return nil
}

func (r *MemoryRepository) GetCategoryByID(_ context.Context, id uint) (*Category, error) {
	defer r.lock()()
	c, ok := r.data.categories[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return &c, nil
}

func (r *MemoryRepository) GetCategoryByName(_ context.Context, name string) (*Category, error) {
	defer r.lock()()
	for _, c := range r.data.sortedCategories() {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, ErrCategoryNotFound
}

func (r *MemoryRepository) GetAllCategories(_ context.Context) ([]Category, error) {
	defer r.lock()()
	return r.data.sortedCategories(), nil
}

func (r *MemoryRepository) CreateCategory(_ context.Context, category *Category) error {
	defer r.lock()()
	r.data.nextCategoryID++
	category.ID = r.data.nextCategoryID
	r.data.categories[category.ID] = *category
	return nil
}

func (r *MemoryRepository) UpdateCategory(_ context.Context, id uint, fields CategoryUpdate) (bool, error) {
	if fields.IsEmpty() {
		return false, nil
	}
	defer r.lock()()
	c, ok := r.data.categories[id]
	if !ok {
		return false, nil
	}
	if fields.Name != nil {
		c.Name = *fields.Name
	}
	r.data.categories[id] = c
	return true, nil
}

func (r *MemoryRepository) DeleteCategory(_ context.Context, id uint) (bool, error) {
	defer r.lock()()
	if _, ok := r.data.categories[id]; !ok {
		return false, nil
	}
	for _, i := range r.data.ingredients {
		if i.CategoryID == id {
			return false, ErrCategoryInUse
		}
	}
	delete(r.data.categories, id)
	return true, nil
}

func (r *MemoryRepository) GetIngredientByID(_ context.Context, id uint) (*Ingredient, error) {
	defer r.lock()()
	i, ok := r.data.ingredients[id]
	if !ok {
		return nil, ErrIngredientNotFound
	}
	return &i, nil
}

func (r *MemoryRepository) GetIngredientByName(_ context.Context, name string) (*Ingredient, error) {
	defer r.lock()()
	for _, i := range r.data.sortedIngredients() {
		if i.Name == name {
			return &i, nil
		}
	}
	return nil, ErrIngredientNotFound
}

func (r *MemoryRepository) GetAllIngredients(_ context.Context) ([]Ingredient, error) {
	defer r.lock()()
	return r.data.sortedIngredients(), nil
}

func (r *MemoryRepository) GetIngredientsByCategory(_ context.Context, categoryID uint) ([]Ingredient, error) {
	defer r.lock()()
	var out []Ingredient
	for _, i := range r.data.sortedIngredients() {
		if i.CategoryID == categoryID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *MemoryRepository) CountIngredientsByCategory(ctx context.Context, categoryID uint) (int64, error) {
	ingredients, err := r.GetIngredientsByCategory(ctx, categoryID)
	if err != nil {
		return 0, err
	}
	return int64(len(ingredients)), nil
}

func (r *MemoryRepository) CreateIngredient(_ context.Context, ingredient *Ingredient) error {
	defer r.lock()()
	if _, ok := r.data.categories[ingredient.CategoryID]; !ok {
		return ErrCategoryNotFound
	}
	r.data.nextIngredientID++
	ingredient.ID = r.data.nextIngredientID
	stored := *ingredient
	stored.Category = Category{}
	r.data.ingredients[ingredient.ID] = stored
	return nil
}

func (r *MemoryRepository) UpdateIngredient(_ context.Context, id uint, fields IngredientUpdate) (bool, error) {
	if fields.IsEmpty() {
		return false, nil
	}
	defer r.lock()()
	i, ok := r.data.ingredients[id]
	if !ok {
		return false, nil
	}
	if fields.CategoryID != nil {
		if _, ok := r.data.categories[*fields.CategoryID]; !ok {
			return false, ErrCategoryNotFound
		}
		i.CategoryID = *fields.CategoryID
	}
	if fields.Name != nil {
		i.Name = *fields.Name
	}
	if fields.Notes != nil {
		i.Notes = *fields.Notes
	}
	r.data.ingredients[id] = i
	return true, nil
}

func (r *MemoryRepository) DeleteIngredient(_ context.Context, id uint) (bool, error) {
	defer r.lock()()
	if _, ok := r.data.ingredients[id]; !ok {
		return false, nil
	}
	delete(r.data.ingredients, id)
	return true, nil
}

func (d *memoryData) sortedCategories() []Category {
	out := make([]Category, 0, len(d.categories))
	for _, c := range d.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}

func (d *memoryData) sortedIngredients() []Ingredient {
	out := make([]Ingredient, 0, len(d.ingredients))
	for _, i := range d.ingredients {
		out = append(out, i)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}
