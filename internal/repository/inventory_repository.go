package repository

import (
	"time"

	"resto_manager/internal/models"

	"gorm.io/gorm"
)

// InventoryFilter narrows inventory listings.
type InventoryFilter struct {
	Category    string
	Search      string
	StockStatus string
	IsActive    *bool
	Page        int
	Limit       int
}

type InventoryRepository interface {
	Create(item *models.InventoryItem) error
	GetByID(id uint) (*models.InventoryItem, error)
	List(filter InventoryFilter) ([]models.InventoryItem, int64, error)
	GetActive() ([]models.InventoryItem, error)
	GetLowStock() ([]models.InventoryItem, error)
	GetOutOfStock() ([]models.InventoryItem, error)
	GetExpiring(before time.Time) ([]models.InventoryItem, error)
	Update(item *models.InventoryItem) error
	Delete(id uint) error
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(item *models.InventoryItem) error {
	return r.db.Create(item).Error
}

func (r *inventoryRepository) GetByID(id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) List(filter InventoryFilter) ([]models.InventoryItem, int64, error) {
	query := r.db.Model(&models.InventoryItem{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR sku ILIKE ?", pattern, pattern, pattern)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	switch filter.StockStatus {
	case models.StockStatusLow:
		query = query.Where("current_stock <= minimum_stock AND current_stock > 0")
	case models.StockStatusOut:
		query = query.Where("current_stock <= 0")
	case models.StockStatusIn:
		query = query.Where("current_stock > minimum_stock")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.InventoryItem
	err := query.
		Order("name").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&items).Error
	return items, total, err
}

func (r *inventoryRepository) GetActive() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.Where("is_active = ?", true).Order("name").Find(&items).Error
	return items, err
}

func (r *inventoryRepository) GetLowStock() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.
		Where("is_active = ? AND current_stock <= minimum_stock", true).
		Order("current_stock").
		Find(&items).Error
	return items, err
}

func (r *inventoryRepository) GetOutOfStock() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.
		Where("is_active = ? AND current_stock <= 0", true).
		Order("name").
		Find(&items).Error
	return items, err
}

func (r *inventoryRepository) GetExpiring(before time.Time) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.
		Where("is_active = ? AND expiry_date IS NOT NULL AND expiry_date <= ?", true, before).
		Order("expiry_date").
		Find(&items).Error
	return items, err
}

func (r *inventoryRepository) Update(item *models.InventoryItem) error {
	return r.db.Save(item).Error
}

func (r *inventoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.InventoryItem{}, id).Error
}
