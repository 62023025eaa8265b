package handlers

import (
	"net/http"
	"strconv"

	"resto_manager/internal/middleware"
	"resto_manager/internal/models"
	"resto_manager/internal/repository"
	"resto_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryService services.InventoryService
}

func NewInventoryHandler(inventoryService services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

type inventoryItemView struct {
	models.InventoryItem
	StockStatus string  `json:"stock_status"`
	StockValue  float64 `json:"stock_value"`
}

func inventoryView(item models.InventoryItem) inventoryItemView {
	return inventoryItemView{
		InventoryItem: item,
		StockStatus:   item.StockStatus(),
		StockValue:    item.StockValue(),
	}
}

func inventoryViews(items []models.InventoryItem) []inventoryItemView {
	views := make([]inventoryItemView, len(items))
	for i, item := range items {
		views[i] = inventoryView(item)
	}
	return views
}

func (h *InventoryHandler) List(c *gin.Context) {
	page, limit := paginationParams(c)
	filter := repository.InventoryFilter{
		Category:    c.Query("category"),
		Search:      c.Query("search"),
		StockStatus: c.Query("stockStatus"),
		Page:        page,
		Limit:       limit,
	}
	if isActive := c.Query("isActive"); isActive != "" {
		active := isActive == "true"
		filter.IsActive = &active
	}

	items, total, err := h.inventoryService.ListItems(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"items":      inventoryViews(items),
		"pagination": buildPagination(page, limit, total),
	})
}

func (h *InventoryHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	item, err := h.inventoryService.GetItemByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"item": inventoryView(*item)})
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		respondBindError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	item.CreatedBy = &user.ID
	if err := h.inventoryService.CreateItem(&item); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, "Inventory item created successfully", gin.H{"item": inventoryView(item)})
}

func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	existing, err := h.inventoryService.GetItemByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		respondBindError(c, err)
		return
	}
	item.ID = existing.ID
	item.SKU = existing.SKU
	item.CreatedAt = existing.CreatedAt
	item.CreatedBy = existing.CreatedBy

	if err := h.inventoryService.UpdateItem(&item); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Inventory item updated successfully", gin.H{"item": inventoryView(item)})
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.inventoryService.DeleteItem(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Inventory item deleted successfully", nil)
}

func (h *InventoryHandler) UpdateStock(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Quantity  float64 `json:"quantity" binding:"required"`
		Operation string  `json:"operation" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.inventoryService.UpdateStock(id, req.Quantity, req.Operation)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Stock updated successfully", gin.H{
		"inventoryItem": inventoryView(*result.Item),
		"oldStock":      result.OldStock,
		"newStock":      result.NewStock,
		"change":        result.Change,
	})
}

func (h *InventoryHandler) BulkUpdateStock(c *gin.Context) {
	var req struct {
		Updates []services.BulkStockUpdate `json:"updates"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.inventoryService.BulkUpdateStock(req.Updates)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Bulk stock update completed", gin.H{
		"successful":     result.Successful,
		"failed":         result.Failed,
		"totalProcessed": result.TotalProcessed,
		"successCount":   result.SuccessCount,
		"errorCount":     result.ErrorCount,
	})
}

func (h *InventoryHandler) GetLowStock(c *gin.Context) {
	items, err := h.inventoryService.GetLowStockItems()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"items": inventoryViews(items)})
}

func (h *InventoryHandler) GetOutOfStock(c *gin.Context) {
	items, err := h.inventoryService.GetOutOfStockItems()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"items": inventoryViews(items)})
}

func (h *InventoryHandler) GetExpiring(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	items, err := h.inventoryService.GetExpiringItems(days)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"items": inventoryViews(items)})
}

func (h *InventoryHandler) GetSummary(c *gin.Context) {
	summary, err := h.inventoryService.GetSummary()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"summary": summary})
}
