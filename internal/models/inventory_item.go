package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"
)

type InventoryItem struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"unique;not null"`
	Description   string         `json:"description" gorm:"type:text"`
	SKU           string         `json:"sku" gorm:"unique"`
	Category      string         `json:"category" gorm:"not null"` // food, beverage, alcohol, supplies, cleaning, other
	Unit          string         `json:"unit" gorm:"not null"`     // kg, g, l, ml, pieces, bottles, cans, boxes, packets
	CurrentStock  float64        `json:"current_stock" gorm:"type:decimal(12,3);default:0"`
	MinimumStock  float64        `json:"minimum_stock" gorm:"type:decimal(12,3);default:10"`
	MaximumStock  float64        `json:"maximum_stock" gorm:"type:decimal(12,3);default:0"`
	UnitCost      float64        `json:"unit_cost" gorm:"type:decimal(12,2);not null"`
	Supplier      *SupplierInfo  `json:"supplier,omitempty" gorm:"serializer:json"`
	ExpiryDate    *time.Time     `json:"expiry_date"`
	Location      string         `json:"location"`
	IsActive      bool           `json:"is_active" gorm:"default:true"`
	LastRestocked *time.Time     `json:"last_restocked"`
	CreatedBy     *uint          `json:"created_by"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type SupplierInfo struct {
	Name    string `json:"name,omitempty"`
	Contact string `json:"contact,omitempty"`
	Email   string `json:"email,omitempty"`
}

type StockOperation string

const (
	StockAdd      StockOperation = "add"
	StockSubtract StockOperation = "subtract"
	StockSet      StockOperation = "set"
)

const (
	StockStatusOut       = "out_of_stock"
	StockStatusLow       = "low_stock"
	StockStatusOverstock = "overstock"
	StockStatusIn        = "in_stock"
)

var inventoryCategories = []string{"food", "beverage", "alcohol", "supplies", "cleaning", "other"}

var inventoryUnits = []string{"kg", "g", "l", "ml", "pieces", "bottles", "cans", "boxes", "packets"}

func ValidInventoryCategory(category string) bool {
	for _, c := range inventoryCategories {
		if c == category {
			return true
		}
	}
	return false
}

func ValidInventoryUnit(unit string) bool {
	for _, u := range inventoryUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// StockStatus derives the stock level classification from the current
// quantity against the configured thresholds. Out-of-stock wins over
// low-stock, a zero MaximumStock disables the overstock check.
func (i *InventoryItem) StockStatus() string {
	switch {
	case i.CurrentStock <= 0:
		return StockStatusOut
	case i.CurrentStock <= i.MinimumStock:
		return StockStatusLow
	case i.MaximumStock > 0 && i.CurrentStock >= i.MaximumStock:
		return StockStatusOverstock
	}
	return StockStatusIn
}

// StockValue returns the monetary value of the stock on hand.
func (i *InventoryItem) StockValue() float64 {
	return i.CurrentStock * i.UnitCost
}

// DaysUntilExpiry returns the whole days until the expiry date, negative
// when already expired. The second return is false when no expiry is set.
func (i *InventoryItem) DaysUntilExpiry(now time.Time) (int, bool) {
	if i.ExpiryDate == nil {
		return 0, false
	}
	return int(math.Ceil(i.ExpiryDate.Sub(now).Hours() / 24)), true
}

// ApplyStock mutates CurrentStock in place according to the ledger
// operation. Subtract and set clamp at zero; add stamps LastRestocked.
func (i *InventoryItem) ApplyStock(quantity float64, op StockOperation, now time.Time) error {
	switch op {
	case StockAdd:
		i.CurrentStock += quantity
		i.LastRestocked = &now
	case StockSubtract:
		i.CurrentStock = math.Max(0, i.CurrentStock-quantity)
	case StockSet:
		i.CurrentStock = math.Max(0, quantity)
	default:
		return fmt.Errorf("invalid stock operation: %s", op)
	}
	return nil
}

// GenerateSKU builds a SKU from the item name prefix and a timestamp,
// mirroring the format used for pre-existing stock records.
func GenerateSKU(name string, now time.Time) string {
	prefix := strings.ToUpper(strings.ReplaceAll(name, " ", ""))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	ts := fmt.Sprintf("%d", now.UnixMilli())
	return prefix + ts[len(ts)-6:]
}
