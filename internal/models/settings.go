package models

import (
	"time"
)

// Settings is the single restaurant configuration row. It is created
// explicitly during migration with these defaults rather than
// materialized lazily on first read.
type Settings struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	RestaurantName string         `json:"restaurant_name" gorm:"default:'My Restaurant'"`
	Phone          string         `json:"phone"`
	Address        string         `json:"address"`
	Email          string         `json:"email"`
	Currency       string         `json:"currency" gorm:"default:'RWF'"` // RWF, USD, EUR, GBP
	Timezone       string         `json:"timezone" gorm:"default:'Africa/Kigali'"`
	TaxRate        float64        `json:"tax_rate" gorm:"default:18"`
	ServiceCharge  float64        `json:"service_charge" gorm:"default:10"`

	ReceiptPrinterName string `json:"receipt_printer_name"`
	ReceiptPaperSize   string `json:"receipt_paper_size" gorm:"default:'80mm'"` // 80mm, 58mm
	KitchenPrinterName string `json:"kitchen_printer_name"`
	AutoPrintKitchen   bool   `json:"auto_print_kitchen" gorm:"default:true"`
	PrintCustomerCopy  bool   `json:"print_customer_copy" gorm:"default:true"`
	PrintKitchenCopy   bool   `json:"print_kitchen_copy" gorm:"default:true"`

	NotifyNewOrders      bool `json:"notify_new_orders" gorm:"default:true"`
	NotifyOrderUpdates   bool `json:"notify_order_updates" gorm:"default:true"`
	NotifyLowStock       bool `json:"notify_low_stock" gorm:"default:true"`
	NotifyExpiringItems  bool `json:"notify_expiring_items" gorm:"default:true"`
	NotifySystemUpdates  bool `json:"notify_system_updates" gorm:"default:false"`
	NotifySecurityAlerts bool `json:"notify_security_alerts" gorm:"default:true"`

	BusinessHours   BusinessHours `json:"business_hours" gorm:"serializer:json"`
	LastUpdatedBy   *uint         `json:"last_updated_by"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

type BusinessHours struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

func ValidCurrency(currency string) bool {
	switch currency {
	case "RWF", "USD", "EUR", "GBP":
		return true
	}
	return false
}

// DefaultSettings returns the seed row used at migration time.
func DefaultSettings() *Settings {
	week := DayHours{Open: "09:00", Close: "22:00"}
	return &Settings{
		RestaurantName: "My Restaurant",
		Currency:       "RWF",
		Timezone:       "Africa/Kigali",
		TaxRate:        18,
		ServiceCharge:  10,
		ReceiptPaperSize:     "80mm",
		AutoPrintKitchen:     true,
		PrintCustomerCopy:    true,
		PrintKitchenCopy:     true,
		NotifyNewOrders:      true,
		NotifyOrderUpdates:   true,
		NotifyLowStock:       true,
		NotifyExpiringItems:  true,
		NotifySecurityAlerts: true,
		BusinessHours: BusinessHours{
			Monday:    week,
			Tuesday:   week,
			Wednesday: week,
			Thursday:  week,
			Friday:    DayHours{Open: "09:00", Close: "23:00"},
			Saturday:  DayHours{Open: "10:00", Close: "23:00"},
			Sunday:    DayHours{Open: "10:00", Close: "22:00"},
		},
	}
}
