package repository

import (
	"resto_manager/internal/models"

	"gorm.io/gorm"
)

type TableRepository interface {
	Create(table *models.Table) error
	GetByID(id uint) (*models.Table, error)
	GetByQRCode(code string) (*models.Table, error)
	List(location, status string, isActive *bool) ([]models.Table, error)
	GetAvailable(location string) ([]models.Table, error)
	Update(table *models.Table) error
	Delete(id uint) error
}

type tableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Create(table *models.Table) error {
	return r.db.Create(table).Error
}

func (r *tableRepository) GetByID(id uint) (*models.Table, error) {
	var table models.Table
	err := r.db.First(&table, id).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) GetByQRCode(code string) (*models.Table, error) {
	var table models.Table
	err := r.db.Where("qr_code = ?", code).First(&table).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) List(location, status string, isActive *bool) ([]models.Table, error) {
	query := r.db.Model(&models.Table{})
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}
	if location != "" {
		query = query.Where("location = ?", location)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var tables []models.Table
	err := query.Order("number").Find(&tables).Error
	return tables, err
}

func (r *tableRepository) GetAvailable(location string) ([]models.Table, error) {
	query := r.db.Where("status = ? AND is_active = ?", models.TableAvailable, true)
	if location != "" {
		query = query.Where("location = ?", location)
	}
	var tables []models.Table
	err := query.Order("number").Find(&tables).Error
	return tables, err
}

func (r *tableRepository) Update(table *models.Table) error {
	return r.db.Save(table).Error
}

func (r *tableRepository) Delete(id uint) error {
	return r.db.Delete(&models.Table{}, id).Error
}
