package repository

import (
	"time"

	"resto_manager/internal/models"

	"gorm.io/gorm"
)

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status        string
	PaymentStatus string
	TableID       uint
	WaiterID      uint
	StartDate     *time.Time
	EndDate       *time.Time
	Page          int
	Limit         int
}

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	List(filter OrderFilter) ([]models.Order, int64, error)
	GetActive() ([]models.Order, error)
	GetByDateRange(start, end time.Time) ([]models.Order, error)
	Update(order *models.Order) error
	UpdateItem(item *models.OrderItem) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("Table").
		Preload("Items.MenuItem").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(filter OrderFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.TableID != 0 {
		query = query.Where("table_id = ?", filter.TableID)
	}
	if filter.WaiterID != 0 {
		query = query.Where("waiter_id = ?", filter.WaiterID)
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.
		Preload("Table").
		Preload("Items.MenuItem").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&orders).Error
	return orders, total, err
}

func (r *orderRepository) GetActive() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Where("status IN ?", []string{
			string(models.OrderPending),
			string(models.OrderConfirmed),
			string(models.OrderPreparing),
			string(models.OrderReady),
		}).
		Preload("Table").
		Preload("Items.MenuItem").
		Order("created_at").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByDateRange(start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Where("created_at >= ? AND created_at < ?", start, end).
		Preload("Table").
		Preload("Items.MenuItem").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Omit("Table", "Items").Save(order).Error
}

func (r *orderRepository) UpdateItem(item *models.OrderItem) error {
	return r.db.Omit("MenuItem").Save(item).Error
}
