package services

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"time"

	"resto_manager/internal/models"
	"resto_manager/internal/repository"

	qrcode "github.com/skip2/go-qrcode"
)

type TableQRCode struct {
	Table         *models.Table `json:"table"`
	QRCodeURL     string        `json:"qr_code_url"`
	QRCodeDataURL string        `json:"qrCodeDataUrl"`
}

type TableSummary struct {
	TotalTables       int                          `json:"total_tables"`
	StatusBreakdown   map[string]int               `json:"status_breakdown"`
	LocationBreakdown map[string]TableLocationStat `json:"location_breakdown"`
}

type TableLocationStat struct {
	Count     int `json:"count"`
	Available int `json:"available"`
	Occupied  int `json:"occupied"`
}

type TableService interface {
	CreateTable(table *models.Table) error
	GetTableByID(id uint) (*models.Table, error)
	ListTables(location, status string, isActive *bool) ([]models.Table, error)
	GetAvailableTables(location string) ([]models.Table, error)
	UpdateTable(table *models.Table) error
	UpdateStatus(id uint, status string) (*models.Table, error)
	DeleteTable(id uint) error
	GetQRCode(id uint) (*TableQRCode, error)
	GetSummary() (*TableSummary, error)
}

type tableService struct {
	tableRepo repository.TableRepository
	baseURL   string
}

// NewTableService wires the table workflow; baseURL is the public
// address embedded into scan-code URLs.
func NewTableService(tableRepo repository.TableRepository, baseURL string) TableService {
	return &tableService{tableRepo: tableRepo, baseURL: baseURL}
}

func (s *tableService) CreateTable(table *models.Table) error {
	if table.Number == "" {
		return validationf("table number is required")
	}
	if table.Capacity < 1 {
		return validationf("table capacity must be at least 1")
	}
	if table.Location == "" {
		table.Location = "indoor"
	}
	if !models.ValidTableLocation(table.Location) {
		return validationf("invalid table location: %s", table.Location)
	}
	if table.Status == "" {
		table.Status = models.TableAvailable
	}
	// The scan code is assigned once and never regenerated.
	if table.QRCode == "" {
		table.QRCode = models.GenerateScanCode(table.Number, time.Now())
	}
	return s.tableRepo.Create(table)
}

func (s *tableService) GetTableByID(id uint) (*models.Table, error) {
	table, err := s.tableRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return table, nil
}

func (s *tableService) ListTables(location, status string, isActive *bool) ([]models.Table, error) {
	return s.tableRepo.List(location, status, isActive)
}

func (s *tableService) GetAvailableTables(location string) ([]models.Table, error) {
	return s.tableRepo.GetAvailable(location)
}

func (s *tableService) UpdateTable(table *models.Table) error {
	existing, err := s.tableRepo.GetByID(table.ID)
	if err != nil {
		return asNotFound(err)
	}
	if table.Status != "" && !models.ValidTableStatus(table.Status) {
		return validationf("invalid table status: %s", table.Status)
	}
	table.QRCode = existing.QRCode
	table.CreatedAt = existing.CreatedAt
	return s.tableRepo.Update(table)
}

func (s *tableService) UpdateStatus(id uint, status string) (*models.Table, error) {
	if !models.ValidTableStatus(status) {
		return nil, validationf("invalid table status: %s", status)
	}
	table, err := s.tableRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	table.Status = status
	if err := s.tableRepo.Update(table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *tableService) DeleteTable(id uint) error {
	if _, err := s.tableRepo.GetByID(id); err != nil {
		return asNotFound(err)
	}
	return s.tableRepo.Delete(id)
}

// GetQRCode renders the table's stored scan code as a PNG data URL.
// The image is generated per call; the embedded code never changes.
func (s *tableService) GetQRCode(id uint) (*TableQRCode, error) {
	table, err := s.tableRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}

	scanURL := fmt.Sprintf("%s/?table=%s", s.baseURL, url.QueryEscape(table.QRCode))
	png, err := qrcode.Encode(scanURL, qrcode.High, 300)
	if err != nil {
		return nil, fmt.Errorf("failed to render qr code: %w", err)
	}

	return &TableQRCode{
		Table:         table,
		QRCodeURL:     scanURL,
		QRCodeDataURL: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	}, nil
}

func (s *tableService) GetSummary() (*TableSummary, error) {
	active := true
	tables, err := s.tableRepo.List("", "", &active)
	if err != nil {
		return nil, err
	}

	summary := &TableSummary{
		TotalTables:       len(tables),
		StatusBreakdown:   make(map[string]int),
		LocationBreakdown: make(map[string]TableLocationStat),
	}
	for _, table := range tables {
		summary.StatusBreakdown[table.Status]++
		stat := summary.LocationBreakdown[table.Location]
		stat.Count++
		switch table.Status {
		case models.TableAvailable:
			stat.Available++
		case models.TableOccupied:
			stat.Occupied++
		}
		summary.LocationBreakdown[table.Location] = stat
	}
	return summary, nil
}
