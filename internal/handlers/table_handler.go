package handlers

import (
	"net/http"

	"resto_manager/internal/models"
	"resto_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type TableHandler struct {
	tableService services.TableService
}

func NewTableHandler(tableService services.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

func (h *TableHandler) List(c *gin.Context) {
	var isActive *bool
	if active := c.Query("isActive"); active != "" {
		v := active == "true"
		isActive = &v
	}
	tables, err := h.tableService.ListTables(c.Query("location"), c.Query("status"), isActive)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"tables": tables})
}

func (h *TableHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	table, err := h.tableService.GetTableByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"table": table})
}

func (h *TableHandler) Create(c *gin.Context) {
	var table models.Table
	if err := c.ShouldBindJSON(&table); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.tableService.CreateTable(&table); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, "Table created successfully", gin.H{"table": table})
}

func (h *TableHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var table models.Table
	if err := c.ShouldBindJSON(&table); err != nil {
		respondBindError(c, err)
		return
	}
	table.ID = id
	if err := h.tableService.UpdateTable(&table); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Table updated successfully", gin.H{"table": table})
}

func (h *TableHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	table, err := h.tableService.UpdateStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Table status updated successfully", gin.H{"table": table})
}

func (h *TableHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.tableService.DeleteTable(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Table deleted successfully", nil)
}

func (h *TableHandler) GetAvailable(c *gin.Context) {
	tables, err := h.tableService.GetAvailableTables(c.Query("location"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"tables": tables})
}

func (h *TableHandler) GetQRCode(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	qr, err := h.tableService.GetQRCode(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"table":         qr.Table,
		"qrCodeUrl":     qr.QRCodeURL,
		"qrCodeDataUrl": qr.QRCodeDataURL,
	})
}

func (h *TableHandler) GetSummary(c *gin.Context) {
	summary, err := h.tableService.GetSummary()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"summary": summary})
}
