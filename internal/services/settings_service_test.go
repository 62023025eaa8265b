package services

import (
	"errors"
	"testing"

	"resto_manager/internal/models"

	"gorm.io/gorm"
)

type fakeSettingsRepo struct {
	settings *models.Settings
}

func (r *fakeSettingsRepo) Get() (*models.Settings, error) {
	if r.settings == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *r.settings
	return &copied, nil
}

func (r *fakeSettingsRepo) Create(settings *models.Settings) error {
	settings.ID = 1
	stored := *settings
	r.settings = &stored
	return nil
}

func (r *fakeSettingsRepo) Update(settings *models.Settings) error {
	stored := *settings
	r.settings = &stored
	return nil
}

func TestUpdateSettings(t *testing.T) {
	seed := func() (SettingsService, *fakeSettingsRepo) {
		repo := &fakeSettingsRepo{}
		repo.Create(models.DefaultSettings())
		return NewSettingsService(repo), repo
	}

	t.Run("preserves the singleton identity", func(t *testing.T) {
		svc, repo := seed()
		updated, err := svc.UpdateSettings(&models.Settings{
			RestaurantName: "The Corner Bistro",
			Currency:       "USD",
			TaxRate:        15,
			ServiceCharge:  5,
		}, 3)
		if err != nil {
			t.Fatalf("UpdateSettings: %v", err)
		}
		if updated.ID != 1 {
			t.Errorf("ID = %d, want the existing row kept", updated.ID)
		}
		if updated.LastUpdatedBy == nil || *updated.LastUpdatedBy != 3 {
			t.Errorf("LastUpdatedBy = %v, want 3", updated.LastUpdatedBy)
		}
		if repo.settings.RestaurantName != "The Corner Bistro" {
			t.Errorf("stored name = %q", repo.settings.RestaurantName)
		}
	})

	t.Run("rejects out of range rates", func(t *testing.T) {
		svc, _ := seed()
		if _, err := svc.UpdateSettings(&models.Settings{TaxRate: 120}, 3); err == nil {
			t.Error("tax rate above 100 should be rejected")
		}
		if _, err := svc.UpdateSettings(&models.Settings{ServiceCharge: -5}, 3); err == nil {
			t.Error("negative service charge should be rejected")
		}
	})

	t.Run("rejects unknown currency", func(t *testing.T) {
		svc, _ := seed()
		if _, err := svc.UpdateSettings(&models.Settings{Currency: "DOGE"}, 3); err == nil {
			t.Error("unknown currency should be rejected")
		}
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		svc := NewSettingsService(&fakeSettingsRepo{})
		if _, err := svc.GetSettings(); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
