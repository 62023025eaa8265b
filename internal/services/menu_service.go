package services

import (
	"log"

	"resto_manager/internal/models"
	"resto_manager/internal/repository"
)

// MenuCache holds the rendered public menu between mutations.
// Implemented by the redis client; a nil cache disables caching.
type MenuCache interface {
	GetCustomerMenu(dest interface{}) (bool, error)
	SetCustomerMenu(menu interface{}) error
	InvalidateCustomerMenu() error
}

type CustomerMenuSection struct {
	Category models.Category   `json:"category"`
	Items    []models.MenuItem `json:"items"`
}

type MenuItemIngredientRequest struct {
	InventoryItemID uint    `json:"inventory_item_id" binding:"required"`
	Quantity        float64 `json:"quantity" binding:"required"`
	Unit            string  `json:"unit" binding:"required"`
}

type MenuService interface {
	// Categories
	CreateCategory(category *models.Category) error
	GetCategories(includeInactive bool) ([]models.Category, error)
	UpdateCategory(category *models.Category) error
	DeleteCategory(id uint) error

	// Menu items
	CreateMenuItem(item *models.MenuItem, ingredients []MenuItemIngredientRequest) error
	GetMenuItemByID(id uint) (*models.MenuItem, error)
	ListMenuItems(filter repository.MenuItemFilter) ([]models.MenuItem, int64, error)
	UpdateMenuItem(item *models.MenuItem, ingredients []MenuItemIngredientRequest) error
	DeleteMenuItem(id uint) error
	ToggleAvailability(id uint) (*models.MenuItem, error)

	// Public customer menu
	GetCustomerMenu() ([]CustomerMenuSection, error)
}

type menuService struct {
	menuRepo     repository.MenuRepository
	categoryRepo repository.CategoryRepository
	cache        MenuCache
}

func NewMenuService(menuRepo repository.MenuRepository, categoryRepo repository.CategoryRepository, cache MenuCache) MenuService {
	return &menuService{menuRepo: menuRepo, categoryRepo: categoryRepo, cache: cache}
}

func (s *menuService) CreateCategory(category *models.Category) error {
	if category.Name == "" {
		return validationf("category name is required")
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

func (s *menuService) GetCategories(includeInactive bool) ([]models.Category, error) {
	if includeInactive {
		return s.categoryRepo.GetAll()
	}
	return s.categoryRepo.GetActive()
}

func (s *menuService) UpdateCategory(category *models.Category) error {
	if _, err := s.categoryRepo.GetByID(category.ID); err != nil {
		return asNotFound(err)
	}
	if err := s.categoryRepo.Update(category); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

// DeleteCategory refuses while menu items still reference the category.
func (s *menuService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		return asNotFound(err)
	}
	count, err := s.menuRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return validationf("cannot delete category with existing menu items")
	}
	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

func (s *menuService) CreateMenuItem(item *models.MenuItem, ingredients []MenuItemIngredientRequest) error {
	if item.Name == "" {
		return validationf("menu item name is required")
	}
	if item.Price < 0 {
		return validationf("price cannot be negative")
	}
	if _, err := s.categoryRepo.GetByID(item.CategoryID); err != nil {
		return asNotFound(err)
	}
	converted, err := convertIngredients(ingredients)
	if err != nil {
		return err
	}
	item.Ingredients = converted
	if err := s.menuRepo.Create(item); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

func (s *menuService) GetMenuItemByID(id uint) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return item, nil
}

func (s *menuService) ListMenuItems(filter repository.MenuItemFilter) ([]models.MenuItem, int64, error) {
	return s.menuRepo.List(filter)
}

func (s *menuService) UpdateMenuItem(item *models.MenuItem, ingredients []MenuItemIngredientRequest) error {
	if item.Price < 0 {
		return validationf("price cannot be negative")
	}
	if _, err := s.menuRepo.GetByID(item.ID); err != nil {
		return asNotFound(err)
	}
	if err := s.menuRepo.Update(item); err != nil {
		return err
	}
	if ingredients != nil {
		converted, err := convertIngredients(ingredients)
		if err != nil {
			return err
		}
		if err := s.menuRepo.ReplaceIngredients(item.ID, converted); err != nil {
			return err
		}
	}
	s.invalidateCache()
	return nil
}

func (s *menuService) DeleteMenuItem(id uint) error {
	if _, err := s.menuRepo.GetByID(id); err != nil {
		return asNotFound(err)
	}
	if err := s.menuRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

func (s *menuService) ToggleAvailability(id uint) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	item.IsAvailable = !item.IsAvailable
	if err := s.menuRepo.Update(item); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return item, nil
}

// GetCustomerMenu returns active categories with their available items,
// served from cache when a prior read populated it.
func (s *menuService) GetCustomerMenu() ([]CustomerMenuSection, error) {
	if s.cache != nil {
		var cached []CustomerMenuSection
		if ok, err := s.cache.GetCustomerMenu(&cached); err == nil && ok {
			return cached, nil
		}
	}

	categories, err := s.categoryRepo.GetActive()
	if err != nil {
		return nil, err
	}
	menu := make([]CustomerMenuSection, 0, len(categories))
	for _, category := range categories {
		items, err := s.menuRepo.GetAvailableByCategory(category.ID)
		if err != nil {
			return nil, err
		}
		if len(items) > 0 {
			menu = append(menu, CustomerMenuSection{Category: category, Items: items})
		}
	}

	if s.cache != nil {
		if err := s.cache.SetCustomerMenu(menu); err != nil {
			log.Printf("Warning: failed to cache customer menu: %v", err)
		}
	}
	return menu, nil
}

func (s *menuService) invalidateCache() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCustomerMenu(); err != nil {
		log.Printf("Warning: failed to invalidate customer menu cache: %v", err)
	}
}

func convertIngredients(ingredients []MenuItemIngredientRequest) ([]models.MenuItemIngredient, error) {
	converted := make([]models.MenuItemIngredient, 0, len(ingredients))
	for i, ing := range ingredients {
		if ing.Quantity < 0 {
			return nil, validationf("ingredient %d: quantity cannot be negative", i+1)
		}
		converted = append(converted, models.MenuItemIngredient{
			InventoryItemID: ing.InventoryItemID,
			Quantity:        ing.Quantity,
			Unit:            ing.Unit,
		})
	}
	return converted, nil
}
