package services

import (
	"errors"
	"testing"

	"resto_manager/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser(t *testing.T) {
	t.Run("hashes the password and defaults the role", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo)

		user := &models.User{Username: "jdoe", Email: "jdoe@restaurant.local", IsActive: true}
		if err := svc.CreateUser(user, "secret123"); err != nil {
			t.Fatalf("CreateUser: %v", err)
		}
		if user.Role != string(models.RoleWaiter) {
			t.Errorf("role = %q, want waiter", user.Role)
		}
		if user.PasswordHash == "secret123" || user.PasswordHash == "" {
			t.Error("password stored unhashed")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")); err != nil {
			t.Error("hash does not verify against the password")
		}
	})

	t.Run("rejects short passwords and bad roles", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo())
		if err := svc.CreateUser(&models.User{Username: "a", Email: "a@b.c"}, "abc"); err == nil {
			t.Error("short password should be rejected")
		}
		if err := svc.CreateUser(&models.User{Username: "a", Email: "a@b.c", Role: "owner"}, "secret123"); err == nil {
			t.Error("unknown role should be rejected")
		}
	})
}

func TestUpdateUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	user := &models.User{Username: "jdoe", Email: "jdoe@restaurant.local", IsActive: true}
	svc.CreateUser(user, "secret123")
	originalHash := user.PasswordHash

	updated := &models.User{ID: user.ID, Username: "jdoe", Email: "new@restaurant.local", Role: string(models.RoleCashier), IsActive: true}
	if err := svc.UpdateUser(updated); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	stored, _ := repo.GetByID(user.ID)
	if stored.PasswordHash != originalHash {
		t.Error("update must not touch the password hash")
	}
	if stored.Email != "new@restaurant.local" || stored.Role != string(models.RoleCashier) {
		t.Errorf("stored = %+v", stored)
	}
}

func TestToggleStatus(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	user := &models.User{Username: "jdoe", Email: "jdoe@restaurant.local", IsActive: true}
	svc.CreateUser(user, "secret123")

	toggled, err := svc.ToggleStatus(user.ID)
	if err != nil {
		t.Fatalf("ToggleStatus: %v", err)
	}
	if toggled.IsActive {
		t.Error("expected user deactivated")
	}
	toggled, _ = svc.ToggleStatus(user.ID)
	if !toggled.IsActive {
		t.Error("expected user reactivated")
	}

	if _, err := svc.ToggleStatus(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
