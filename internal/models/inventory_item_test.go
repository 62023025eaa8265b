package models

import (
	"strings"
	"testing"
	"time"
)

func TestStockStatus(t *testing.T) {
	cases := []struct {
		name string
		item InventoryItem
		want string
	}{
		{"zero stock", InventoryItem{CurrentStock: 0, MinimumStock: 10}, StockStatusOut},
		{"negative stock", InventoryItem{CurrentStock: -1, MinimumStock: 10}, StockStatusOut},
		{"at minimum", InventoryItem{CurrentStock: 10, MinimumStock: 10}, StockStatusLow},
		{"below minimum", InventoryItem{CurrentStock: 5, MinimumStock: 10}, StockStatusLow},
		{"healthy", InventoryItem{CurrentStock: 50, MinimumStock: 10}, StockStatusIn},
		{"at maximum", InventoryItem{CurrentStock: 100, MinimumStock: 10, MaximumStock: 100}, StockStatusOverstock},
		{"no maximum configured", InventoryItem{CurrentStock: 1000, MinimumStock: 10}, StockStatusIn},
		{"out wins over low", InventoryItem{CurrentStock: 0, MinimumStock: 0}, StockStatusOut},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.item.StockStatus(); got != tc.want {
				t.Errorf("StockStatus() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestApplyStock(t *testing.T) {
	now := time.Now()

	t.Run("add stamps last restocked", func(t *testing.T) {
		item := InventoryItem{CurrentStock: 5}
		if err := item.ApplyStock(3, StockAdd, now); err != nil {
			t.Fatalf("ApplyStock: %v", err)
		}
		if item.CurrentStock != 8 {
			t.Errorf("stock = %.1f, want 8", item.CurrentStock)
		}
		if item.LastRestocked == nil || !item.LastRestocked.Equal(now) {
			t.Error("LastRestocked not stamped")
		}
	})

	t.Run("subtract clamps at zero", func(t *testing.T) {
		item := InventoryItem{CurrentStock: 5}
		item.ApplyStock(12, StockSubtract, now)
		if item.CurrentStock != 0 {
			t.Errorf("stock = %.1f, want 0", item.CurrentStock)
		}
		if item.LastRestocked != nil {
			t.Error("subtract must not stamp LastRestocked")
		}
	})

	t.Run("set clamps negative input", func(t *testing.T) {
		item := InventoryItem{CurrentStock: 5}
		item.ApplyStock(-3, StockSet, now)
		if item.CurrentStock != 0 {
			t.Errorf("stock = %.1f, want 0", item.CurrentStock)
		}
	})

	t.Run("rejects unknown operation", func(t *testing.T) {
		item := InventoryItem{CurrentStock: 5}
		if err := item.ApplyStock(1, StockOperation("divide"), now); err == nil {
			t.Error("unknown operation should error")
		}
		if item.CurrentStock != 5 {
			t.Errorf("stock changed on invalid operation: %.1f", item.CurrentStock)
		}
	})
}

func TestStockValue(t *testing.T) {
	item := InventoryItem{CurrentStock: 12.5, UnitCost: 400}
	if got := item.StockValue(); got != 5000 {
		t.Errorf("StockValue() = %.2f, want 5000", got)
	}
}

func TestDaysUntilExpiry(t *testing.T) {
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	t.Run("no expiry", func(t *testing.T) {
		item := InventoryItem{}
		if _, ok := item.DaysUntilExpiry(now); ok {
			t.Error("expected ok=false without an expiry date")
		}
	})

	t.Run("future expiry", func(t *testing.T) {
		expiry := now.Add(48 * time.Hour)
		item := InventoryItem{ExpiryDate: &expiry}
		days, ok := item.DaysUntilExpiry(now)
		if !ok || days != 2 {
			t.Errorf("days = %d ok = %v, want 2 true", days, ok)
		}
	})

	t.Run("already expired", func(t *testing.T) {
		expiry := now.Add(-72 * time.Hour)
		item := InventoryItem{ExpiryDate: &expiry}
		days, ok := item.DaysUntilExpiry(now)
		if !ok || days >= 0 {
			t.Errorf("days = %d, want negative", days)
		}
	})
}

func TestGenerateSKU(t *testing.T) {
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	sku := GenerateSKU("Tomato Sauce", now)
	if !strings.HasPrefix(sku, "TOM") || len(sku) != 9 {
		t.Errorf("SKU = %q, want TOM followed by six digits", sku)
	}

	short := GenerateSKU("Oil", now)
	if !strings.HasPrefix(short, "OIL") {
		t.Errorf("SKU = %q, want OIL prefix", short)
	}
}

func TestGenerateScanCode(t *testing.T) {
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	code := GenerateScanCode("12", now)
	if !strings.HasPrefix(code, "table-12-") {
		t.Errorf("scan code = %q, want table-12- prefix", code)
	}
}
