package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Table struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Number    string         `json:"number" gorm:"unique;not null"`
	Capacity  int            `json:"capacity" gorm:"not null"`
	Location  string         `json:"location" gorm:"default:'indoor'"`   // indoor, outdoor, bar, vip, private
	Status    string         `json:"status" gorm:"default:'available'"` // available, occupied, reserved, cleaning, out_of_order
	QRCode    string         `json:"qr_code" gorm:"unique"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	Notes     string         `json:"notes"`
	CreatedBy *uint          `json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

const (
	TableAvailable  = "available"
	TableOccupied   = "occupied"
	TableReserved   = "reserved"
	TableCleaning   = "cleaning"
	TableOutOfOrder = "out_of_order"
)

var tableLocations = []string{"indoor", "outdoor", "bar", "vip", "private"}

func ValidTableLocation(location string) bool {
	for _, l := range tableLocations {
		if l == location {
			return true
		}
	}
	return false
}

func ValidTableStatus(status string) bool {
	switch status {
	case TableAvailable, TableOccupied, TableReserved, TableCleaning, TableOutOfOrder:
		return true
	}
	return false
}

// GenerateScanCode derives the customer-facing scan code for a table.
// The code is assigned once at creation and stored; the QR endpoint
// renders the same stored code on every call.
func GenerateScanCode(number string, now time.Time) string {
	return fmt.Sprintf("table-%s-%d", number, now.UnixMilli())
}
