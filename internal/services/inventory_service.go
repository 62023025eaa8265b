package services

import (
	"time"

	"resto_manager/internal/models"
	"resto_manager/internal/repository"
)

type StockUpdateResult struct {
	Item     *models.InventoryItem `json:"inventory_item"`
	OldStock float64               `json:"old_stock"`
	NewStock float64               `json:"new_stock"`
	Change   float64               `json:"change"`
}

type BulkStockUpdate struct {
	ID        uint    `json:"id"`
	Quantity  float64 `json:"quantity"`
	Operation string  `json:"operation"`
	Reason    string  `json:"reason"`
}

type BulkStockEntryResult struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name,omitempty"`
	OldStock  float64 `json:"old_stock"`
	NewStock  float64 `json:"new_stock"`
	Quantity  float64 `json:"quantity"`
	Operation string  `json:"operation"`
	Reason    string  `json:"reason,omitempty"`
}

type BulkStockFailure struct {
	ID    uint   `json:"id"`
	Error string `json:"error"`
}

type BulkStockResult struct {
	Successful     []BulkStockEntryResult `json:"successful"`
	Failed         []BulkStockFailure     `json:"failed"`
	TotalProcessed int                    `json:"total_processed"`
	SuccessCount   int                    `json:"success_count"`
	ErrorCount     int                    `json:"error_count"`
}

type InventorySummary struct {
	TotalItems        int                    `json:"total_items"`
	LowStockCount     int                    `json:"low_stock_count"`
	OutOfStockCount   int                    `json:"out_of_stock_count"`
	ExpiringCount     int                    `json:"expiring_count"`
	TotalValue        float64                `json:"total_value"`
	CategoryBreakdown map[string]int         `json:"category_breakdown"`
	Alerts            InventorySummaryAlerts `json:"alerts"`
}

type InventorySummaryAlerts struct {
	LowStock   []models.InventoryItem `json:"low_stock"`
	OutOfStock []models.InventoryItem `json:"out_of_stock"`
	Expiring   []models.InventoryItem `json:"expiring"`
}

type InventoryService interface {
	CreateItem(item *models.InventoryItem) error
	GetItemByID(id uint) (*models.InventoryItem, error)
	ListItems(filter repository.InventoryFilter) ([]models.InventoryItem, int64, error)
	UpdateItem(item *models.InventoryItem) error
	DeleteItem(id uint) error
	UpdateStock(id uint, quantity float64, operation string) (*StockUpdateResult, error)
	BulkUpdateStock(updates []BulkStockUpdate) (*BulkStockResult, error)
	GetLowStockItems() ([]models.InventoryItem, error)
	GetOutOfStockItems() ([]models.InventoryItem, error)
	GetExpiringItems(days int) ([]models.InventoryItem, error)
	GetSummary() (*InventorySummary, error)
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
}

func NewInventoryService(inventoryRepo repository.InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepo: inventoryRepo}
}

func (s *inventoryService) CreateItem(item *models.InventoryItem) error {
	if item.Name == "" {
		return validationf("item name is required")
	}
	if !models.ValidInventoryCategory(item.Category) {
		return validationf("invalid category: %s", item.Category)
	}
	if !models.ValidInventoryUnit(item.Unit) {
		return validationf("invalid unit: %s", item.Unit)
	}
	if item.UnitCost < 0 || item.CurrentStock < 0 || item.MinimumStock < 0 {
		return validationf("stock and cost values cannot be negative")
	}
	if item.SKU == "" {
		item.SKU = models.GenerateSKU(item.Name, time.Now())
	}
	return s.inventoryRepo.Create(item)
}

func (s *inventoryService) GetItemByID(id uint) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return item, nil
}

func (s *inventoryService) ListItems(filter repository.InventoryFilter) ([]models.InventoryItem, int64, error) {
	return s.inventoryRepo.List(filter)
}

func (s *inventoryService) UpdateItem(item *models.InventoryItem) error {
	if !models.ValidInventoryCategory(item.Category) {
		return validationf("invalid category: %s", item.Category)
	}
	if !models.ValidInventoryUnit(item.Unit) {
		return validationf("invalid unit: %s", item.Unit)
	}
	if item.CurrentStock < 0 {
		return validationf("stock cannot be negative")
	}
	return s.inventoryRepo.Update(item)
}

func (s *inventoryService) DeleteItem(id uint) error {
	if _, err := s.inventoryRepo.GetByID(id); err != nil {
		return asNotFound(err)
	}
	return s.inventoryRepo.Delete(id)
}

// UpdateStock applies one ledger operation and reports old and new
// levels for the response.
func (s *inventoryService) UpdateStock(id uint, quantity float64, operation string) (*StockUpdateResult, error) {
	item, err := s.inventoryRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}

	oldStock := item.CurrentStock
	if err := item.ApplyStock(quantity, models.StockOperation(operation), time.Now()); err != nil {
		return nil, validationf("%v", err)
	}
	if err := s.inventoryRepo.Update(item); err != nil {
		return nil, err
	}

	return &StockUpdateResult{
		Item:     item,
		OldStock: oldStock,
		NewStock: item.CurrentStock,
		Change:   item.CurrentStock - oldStock,
	}, nil
}

// BulkUpdateStock applies each entry independently; one bad entry does
// not stop the rest, and both outcomes are reported.
func (s *inventoryService) BulkUpdateStock(updates []BulkStockUpdate) (*BulkStockResult, error) {
	if len(updates) == 0 {
		return nil, validationf("updates array is required")
	}

	result := &BulkStockResult{TotalProcessed: len(updates)}
	now := time.Now()
	for _, update := range updates {
		item, err := s.inventoryRepo.GetByID(update.ID)
		if err != nil {
			result.Failed = append(result.Failed, BulkStockFailure{ID: update.ID, Error: "Item not found"})
			continue
		}
		oldStock := item.CurrentStock
		if err := item.ApplyStock(update.Quantity, models.StockOperation(update.Operation), now); err != nil {
			result.Failed = append(result.Failed, BulkStockFailure{ID: update.ID, Error: err.Error()})
			continue
		}
		if err := s.inventoryRepo.Update(item); err != nil {
			result.Failed = append(result.Failed, BulkStockFailure{ID: update.ID, Error: err.Error()})
			continue
		}
		result.Successful = append(result.Successful, BulkStockEntryResult{
			ID:        item.ID,
			Name:      item.Name,
			OldStock:  oldStock,
			NewStock:  item.CurrentStock,
			Quantity:  update.Quantity,
			Operation: update.Operation,
			Reason:    update.Reason,
		})
	}
	result.SuccessCount = len(result.Successful)
	result.ErrorCount = len(result.Failed)
	return result, nil
}

func (s *inventoryService) GetLowStockItems() ([]models.InventoryItem, error) {
	return s.inventoryRepo.GetLowStock()
}

func (s *inventoryService) GetOutOfStockItems() ([]models.InventoryItem, error) {
	return s.inventoryRepo.GetOutOfStock()
}

func (s *inventoryService) GetExpiringItems(days int) ([]models.InventoryItem, error) {
	if days <= 0 {
		days = 7
	}
	return s.inventoryRepo.GetExpiring(time.Now().AddDate(0, 0, days))
}

func (s *inventoryService) GetSummary() (*InventorySummary, error) {
	items, err := s.inventoryRepo.GetActive()
	if err != nil {
		return nil, err
	}

	summary := &InventorySummary{
		TotalItems:        len(items),
		CategoryBreakdown: make(map[string]int),
	}
	now := time.Now()
	expiryCutoff := now.AddDate(0, 0, 7)
	for _, item := range items {
		summary.TotalValue += item.StockValue()
		summary.CategoryBreakdown[item.Category]++
		switch item.StockStatus() {
		case models.StockStatusOut:
			summary.OutOfStockCount++
			if len(summary.Alerts.OutOfStock) < 5 {
				summary.Alerts.OutOfStock = append(summary.Alerts.OutOfStock, item)
			}
		case models.StockStatusLow:
			summary.LowStockCount++
			if len(summary.Alerts.LowStock) < 5 {
				summary.Alerts.LowStock = append(summary.Alerts.LowStock, item)
			}
		}
		if item.ExpiryDate != nil && item.ExpiryDate.Before(expiryCutoff) {
			summary.ExpiringCount++
			if len(summary.Alerts.Expiring) < 5 {
				summary.Alerts.Expiring = append(summary.Alerts.Expiring, item)
			}
		}
	}
	return summary, nil
}
