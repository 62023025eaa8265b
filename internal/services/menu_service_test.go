package services

import (
	"errors"
	"testing"

	"resto_manager/internal/models"
)

type menuFixture struct {
	service    MenuService
	menu       *fakeMenuRepo
	categories *fakeCategoryRepo
	cache      *fakeMenuCache
}

func newMenuFixture() *menuFixture {
	menu := newFakeMenuRepo()
	categories := newFakeCategoryRepo()
	cache := &fakeMenuCache{}
	return &menuFixture{
		service:    NewMenuService(menu, categories, cache),
		menu:       menu,
		categories: categories,
		cache:      cache,
	}
}

func TestDeleteCategory(t *testing.T) {
	t.Run("blocked while menu items remain", func(t *testing.T) {
		f := newMenuFixture()
		f.categories.Create(&models.Category{Name: "Mains", IsActive: true})
		f.menu.Create(&models.MenuItem{Name: "Steak", CategoryID: 1, Price: 20000, IsActive: true, IsAvailable: true})

		err := f.service.DeleteCategory(1)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if _, err := f.categories.GetByID(1); err != nil {
			t.Error("category should still exist")
		}
	})

	t.Run("allowed once empty", func(t *testing.T) {
		f := newMenuFixture()
		f.categories.Create(&models.Category{Name: "Seasonal", IsActive: true})
		if err := f.service.DeleteCategory(1); err != nil {
			t.Fatalf("DeleteCategory: %v", err)
		}
		if _, err := f.categories.GetByID(1); err == nil {
			t.Error("category should be gone")
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		f := newMenuFixture()
		if err := f.service.DeleteCategory(5); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestCreateMenuItem(t *testing.T) {
	t.Run("attaches converted ingredients", func(t *testing.T) {
		f := newMenuFixture()
		f.categories.Create(&models.Category{Name: "Mains", IsActive: true})

		item := &models.MenuItem{Name: "Pasta", CategoryID: 1, Price: 9000, IsActive: true, IsAvailable: true}
		err := f.service.CreateMenuItem(item, []MenuItemIngredientRequest{
			{InventoryItemID: 3, Quantity: 0.2, Unit: "kg"},
		})
		if err != nil {
			t.Fatalf("CreateMenuItem: %v", err)
		}
		stored, _ := f.menu.GetByID(item.ID)
		if len(stored.Ingredients) != 1 || stored.Ingredients[0].InventoryItemID != 3 {
			t.Errorf("ingredients = %+v", stored.Ingredients)
		}
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		f := newMenuFixture()
		err := f.service.CreateMenuItem(&models.MenuItem{Name: "Pasta", CategoryID: 9, Price: 9000}, nil)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("rejects negative price and ingredient quantity", func(t *testing.T) {
		f := newMenuFixture()
		f.categories.Create(&models.Category{Name: "Mains", IsActive: true})
		if err := f.service.CreateMenuItem(&models.MenuItem{Name: "Pasta", CategoryID: 1, Price: -1}, nil); err == nil {
			t.Error("negative price should be rejected")
		}
		err := f.service.CreateMenuItem(&models.MenuItem{Name: "Pasta", CategoryID: 1, Price: 9000}, []MenuItemIngredientRequest{
			{InventoryItemID: 1, Quantity: -0.5, Unit: "kg"},
		})
		if err == nil {
			t.Error("negative ingredient quantity should be rejected")
		}
	})
}

func TestUpdateMenuItem(t *testing.T) {
	f := newMenuFixture()
	f.categories.Create(&models.Category{Name: "Mains", IsActive: true})
	item := &models.MenuItem{Name: "Pasta", CategoryID: 1, Price: 9000, IsActive: true, IsAvailable: true}
	f.service.CreateMenuItem(item, []MenuItemIngredientRequest{{InventoryItemID: 3, Quantity: 0.2, Unit: "kg"}})

	t.Run("nil ingredients leave the recipe alone", func(t *testing.T) {
		updated := *item
		updated.Price = 9500
		if err := f.service.UpdateMenuItem(&updated, nil); err != nil {
			t.Fatalf("UpdateMenuItem: %v", err)
		}
		stored, _ := f.menu.GetByID(item.ID)
		if len(stored.Ingredients) != 1 {
			t.Errorf("ingredients = %+v, want the original recipe kept", stored.Ingredients)
		}
		if !almostEqual(stored.Price, 9500) {
			t.Errorf("price = %.2f, want 9500", stored.Price)
		}
	})

	t.Run("empty slice clears the recipe", func(t *testing.T) {
		updated := *item
		if err := f.service.UpdateMenuItem(&updated, []MenuItemIngredientRequest{}); err != nil {
			t.Fatalf("UpdateMenuItem: %v", err)
		}
		stored, _ := f.menu.GetByID(item.ID)
		if len(stored.Ingredients) != 0 {
			t.Errorf("ingredients = %+v, want cleared", stored.Ingredients)
		}
	})
}

func TestToggleAvailability(t *testing.T) {
	f := newMenuFixture()
	f.categories.Create(&models.Category{Name: "Mains", IsActive: true})
	item := &models.MenuItem{Name: "Pasta", CategoryID: 1, Price: 9000, IsActive: true, IsAvailable: true}
	f.service.CreateMenuItem(item, nil)

	toggled, err := f.service.ToggleAvailability(item.ID)
	if err != nil {
		t.Fatalf("ToggleAvailability: %v", err)
	}
	if toggled.IsAvailable {
		t.Error("expected item unavailable after toggle")
	}
	toggled, _ = f.service.ToggleAvailability(item.ID)
	if !toggled.IsAvailable {
		t.Error("expected item available after second toggle")
	}
}

func TestGetCustomerMenu(t *testing.T) {
	seed := func(f *menuFixture) {
		f.categories.Create(&models.Category{Name: "Mains", IsActive: true})
		f.categories.Create(&models.Category{Name: "Drinks", IsActive: true})
		f.categories.Create(&models.Category{Name: "Retired", IsActive: false})
		f.menu.Create(&models.MenuItem{Name: "Pasta", CategoryID: 1, Price: 9000, IsActive: true, IsAvailable: true})
		f.menu.Create(&models.MenuItem{Name: "Hidden", CategoryID: 1, Price: 9000, IsActive: true, IsAvailable: false})
	}

	t.Run("groups available items under active categories", func(t *testing.T) {
		f := newMenuFixture()
		seed(f)

		menu, err := f.service.GetCustomerMenu()
		if err != nil {
			t.Fatalf("GetCustomerMenu: %v", err)
		}
		if len(menu) != 1 {
			t.Fatalf("sections = %d, want 1 (empty and inactive categories skipped)", len(menu))
		}
		if menu[0].Category.Name != "Mains" || len(menu[0].Items) != 1 {
			t.Errorf("section = %+v", menu[0])
		}
	})

	t.Run("second read is served from cache", func(t *testing.T) {
		f := newMenuFixture()
		seed(f)

		f.service.GetCustomerMenu()
		before := f.menu.availableCalls
		f.service.GetCustomerMenu()
		if f.menu.availableCalls != before {
			t.Error("second read should not hit the repository")
		}
		if f.cache.hits == 0 {
			t.Error("cache was never hit")
		}
	})

	t.Run("mutations invalidate the cache", func(t *testing.T) {
		f := newMenuFixture()
		seed(f)

		f.service.GetCustomerMenu()
		f.service.ToggleAvailability(1)
		if f.cache.populated {
			t.Error("cache should be invalidated after a mutation")
		}
		if f.cache.invalidations == 0 {
			t.Error("invalidation never reached the cache")
		}
	})
}
