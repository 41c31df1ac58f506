package postgres

import (
	"context"

	"moviecatalog/category"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryModel represents the database model for categories
type CategoryModel struct {
	ID   string `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// CategoryRepository implements category.Repository interface
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, c category.Category) (category.Category, error) {
	model := CategoryModel{
		ID:   uuid.NewString(),
		Name: c.Name,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return category.Category{}, err
	}
	return category.Category{ID: model.ID, Name: model.Name}, nil
}

func (r *CategoryRepository) CategoriesByIDs(ctx context.Context, ids []string) ([]category.Category, error) {
	if len(ids) == 0 {
		return []category.Category{}, nil
	}

	var models []CategoryModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]CategoryModel, len(models))
	for _, model := range models {
		byID[model.ID] = model
	}
	categories := make([]category.Category, 0, len(ids))
	for _, id := range ids {
		if model, ok := byID[id]; ok {
			categories = append(categories, category.Category{ID: model.ID, Name: model.Name})
		}
	}
	return categories, nil
}
