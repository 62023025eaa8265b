package repository

import (
	"resto_manager/internal/models"

	"gorm.io/gorm"
)

// MenuItemFilter narrows menu item listings.
type MenuItemFilter struct {
	CategoryID  uint
	Search      string
	IsAvailable *bool
	IsActive    *bool
	Page        int
	Limit       int
}

type MenuRepository interface {
	Create(item *models.MenuItem) error
	GetByID(id uint) (*models.MenuItem, error)
	List(filter MenuItemFilter) ([]models.MenuItem, int64, error)
	GetAvailableByCategory(categoryID uint) ([]models.MenuItem, error)
	CountByCategory(categoryID uint) (int64, error)
	Update(item *models.MenuItem) error
	ReplaceIngredients(itemID uint, ingredients []models.MenuItemIngredient) error
	Delete(id uint) error
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *menuRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.Preload("Category").Preload("Ingredients.InventoryItem").First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) List(filter MenuItemFilter) ([]models.MenuItem, int64, error) {
	query := r.db.Model(&models.MenuItem{})
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.IsAvailable != nil {
		query = query.Where("is_available = ?", *filter.IsAvailable)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.MenuItem
	err := query.
		Preload("Category").
		Preload("Ingredients.InventoryItem").
		Order("sort_order, name").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&items).Error
	return items, total, err
}

func (r *menuRepository) GetAvailableByCategory(categoryID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.
		Where("category_id = ? AND is_available = ? AND is_active = ?", categoryID, true, true).
		Order("sort_order, name").
		Find(&items).Error
	return items, err
}

func (r *menuRepository) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.MenuItem{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *menuRepository) Update(item *models.MenuItem) error {
	return r.db.Omit("Ingredients", "Category").Save(item).Error
}

// ReplaceIngredients swaps the full ingredient list of a menu item.
func (r *menuRepository) ReplaceIngredients(itemID uint, ingredients []models.MenuItemIngredient) error {
	if err := r.db.Where("menu_item_id = ?", itemID).Delete(&models.MenuItemIngredient{}).Error; err != nil {
		return err
	}
	if len(ingredients) == 0 {
		return nil
	}
	for i := range ingredients {
		ingredients[i].ID = 0
		ingredients[i].MenuItemID = itemID
	}
	return r.db.Create(&ingredients).Error
}

func (r *menuRepository) Delete(id uint) error {
	return r.db.Delete(&models.MenuItem{}, id).Error
}
