package handlers

import (
	"net/http"

	"resto_manager/internal/middleware"
	"resto_manager/internal/models"
	"resto_manager/internal/repository"
	"resto_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuService services.MenuService
}

func NewMenuHandler(menuService services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

func (h *MenuHandler) GetCategories(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true"
	categories, err := h.menuService.GetCategories(includeInactive)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"categories": categories})
}

func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.menuService.CreateCategory(&category); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, "Category created successfully", gin.H{"category": category})
}

func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		respondBindError(c, err)
		return
	}
	category.ID = id
	if err := h.menuService.UpdateCategory(&category); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Category updated successfully", gin.H{"category": category})
}

func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.menuService.DeleteCategory(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Category deleted successfully", nil)
}

func (h *MenuHandler) ListItems(c *gin.Context) {
	page, limit := paginationParams(c)
	filter := repository.MenuItemFilter{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}
	if category := c.Query("category"); category != "" {
		if id, ok := parseUint(category); ok {
			filter.CategoryID = id
		}
	}
	if available := c.Query("isAvailable"); available != "" {
		v := available == "true"
		filter.IsAvailable = &v
	}
	if active := c.Query("isActive"); active != "" {
		v := active == "true"
		filter.IsActive = &v
	}

	items, total, err := h.menuService.ListMenuItems(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"items":      items,
		"pagination": buildPagination(page, limit, total),
	})
}

func (h *MenuHandler) GetItemByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	item, err := h.menuService.GetMenuItemByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"item": item})
}

type menuItemRequest struct {
	Name            string                               `json:"name"`
	Description     string                               `json:"description"`
	CategoryID      uint                                 `json:"category_id"`
	Price           float64                              `json:"price"`
	Cost            float64                              `json:"cost"`
	Image           string                               `json:"image"`
	IsAvailable     *bool                                `json:"is_available"`
	IsActive        *bool                                `json:"is_active"`
	PreparationTime int                                  `json:"preparation_time"`
	Ingredients     []services.MenuItemIngredientRequest `json:"ingredients"`
	NutritionalInfo *models.NutritionalInfo              `json:"nutritional_info"`
	Allergens       []string                             `json:"allergens"`
	Tags            []string                             `json:"tags"`
	SortOrder       int                                  `json:"sort_order"`
}

func (r *menuItemRequest) toModel() models.MenuItem {
	item := models.MenuItem{
		Name:            r.Name,
		Description:     r.Description,
		CategoryID:      r.CategoryID,
		Price:           r.Price,
		Cost:            r.Cost,
		Image:           r.Image,
		IsAvailable:     true,
		IsActive:        true,
		PreparationTime: r.PreparationTime,
		NutritionalInfo: r.NutritionalInfo,
		Allergens:       r.Allergens,
		Tags:            r.Tags,
		SortOrder:       r.SortOrder,
	}
	if r.IsAvailable != nil {
		item.IsAvailable = *r.IsAvailable
	}
	if r.IsActive != nil {
		item.IsActive = *r.IsActive
	}
	return item
}

func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item := req.toModel()
	user := middleware.CurrentUser(c)
	item.CreatedBy = &user.ID
	if err := h.menuService.CreateMenuItem(&item, req.Ingredients); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, "Menu item created successfully", gin.H{"item": item})
}

func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item := req.toModel()
	item.ID = id
	if err := h.menuService.UpdateMenuItem(&item, req.Ingredients); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Menu item updated successfully", gin.H{"item": item})
}

func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.menuService.DeleteMenuItem(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Menu item deleted successfully", nil)
}

func (h *MenuHandler) ToggleAvailability(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	item, err := h.menuService.ToggleAvailability(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Menu item availability updated", gin.H{"item": item})
}

func (h *MenuHandler) GetCustomerMenu(c *gin.Context) {
	menu, err := h.menuService.GetCustomerMenu()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"menu": menu})
}
