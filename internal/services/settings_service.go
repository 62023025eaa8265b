package services

import (
	"resto_manager/internal/models"
	"resto_manager/internal/repository"
)

type SettingsService interface {
	GetSettings() (*models.Settings, error)
	UpdateSettings(settings *models.Settings, updatedBy uint) (*models.Settings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) GetSettings() (*models.Settings, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, asNotFound(err)
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(settings *models.Settings, updatedBy uint) (*models.Settings, error) {
	existing, err := s.settingsRepo.Get()
	if err != nil {
		return nil, asNotFound(err)
	}
	if settings.Currency != "" && !models.ValidCurrency(settings.Currency) {
		return nil, validationf("invalid currency: %s", settings.Currency)
	}
	if settings.TaxRate < 0 || settings.TaxRate > 100 {
		return nil, validationf("tax rate must be between 0 and 100")
	}
	if settings.ServiceCharge < 0 || settings.ServiceCharge > 100 {
		return nil, validationf("service charge must be between 0 and 100")
	}
	settings.ID = existing.ID
	settings.CreatedAt = existing.CreatedAt
	settings.LastUpdatedBy = &updatedBy
	if err := s.settingsRepo.Update(settings); err != nil {
		return nil, err
	}
	return settings, nil
}
