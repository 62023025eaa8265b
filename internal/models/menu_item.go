package models

import (
	"time"

	"gorm.io/gorm"
)

type MenuItem struct {
	ID              uint                 `json:"id" gorm:"primaryKey"`
	Name            string               `json:"name" gorm:"not null"`
	Description     string               `json:"description" gorm:"type:text"`
	CategoryID      uint                 `json:"category_id" gorm:"not null"`
	Category        Category             `json:"category" gorm:"foreignKey:CategoryID"`
	Price           float64              `json:"price" gorm:"type:decimal(12,2);not null"`
	Cost            float64              `json:"cost" gorm:"type:decimal(12,2);default:0"`
	Image           string               `json:"image"`
	IsAvailable     bool                 `json:"is_available" gorm:"default:true"`
	IsActive        bool                 `json:"is_active" gorm:"default:true"`
	PreparationTime int                  `json:"preparation_time" gorm:"default:15"` // minutes
	Ingredients     []MenuItemIngredient `json:"ingredients" gorm:"foreignKey:MenuItemID"`
	NutritionalInfo *NutritionalInfo     `json:"nutritional_info,omitempty" gorm:"serializer:json"`
	Allergens       []string             `json:"allergens" gorm:"serializer:json"`
	Tags            []string             `json:"tags" gorm:"serializer:json"`
	SortOrder       int                  `json:"sort_order" gorm:"default:0"`
	CreatedBy       *uint                `json:"created_by"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	DeletedAt       gorm.DeletedAt       `json:"deleted_at" gorm:"index"`
}

// MenuItemIngredient links a menu item to one inventory item with the
// quantity consumed per serving.
type MenuItemIngredient struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	MenuItemID      uint          `json:"menu_item_id" gorm:"not null;index"`
	InventoryItemID uint          `json:"inventory_item_id" gorm:"not null"`
	InventoryItem   InventoryItem `json:"inventory_item" gorm:"foreignKey:InventoryItemID"`
	Quantity        float64       `json:"quantity" gorm:"type:decimal(12,3);not null"`
	Unit            string        `json:"unit" gorm:"not null"` // kg, g, l, ml, pieces, cups, tbsp, tsp
}

type NutritionalInfo struct {
	Calories float64 `json:"calories,omitempty"`
	Protein  float64 `json:"protein,omitempty"`
	Carbs    float64 `json:"carbs,omitempty"`
	Fat      float64 `json:"fat,omitempty"`
	Fiber    float64 `json:"fiber,omitempty"`
}

// ProfitMargin returns the margin percentage, zero when cost is unset.
func (m *MenuItem) ProfitMargin() float64 {
	if m.Cost <= 0 || m.Price <= 0 {
		return 0
	}
	return (m.Price - m.Cost) / m.Price * 100
}
