package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Username     string         `json:"username" gorm:"unique;not null"`
	Email        string         `json:"email" gorm:"unique;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	Phone        string         `json:"phone"`
	Role         string         `json:"role" gorm:"default:'waiter'"` // admin, manager, cashier, waiter, stock_manager
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	LastLogin    *time.Time     `json:"last_login"`
	CreatedBy    *uint          `json:"created_by"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleManager      UserRole = "manager"
	RoleCashier      UserRole = "cashier"
	RoleWaiter       UserRole = "waiter"
	RoleStockManager UserRole = "stock_manager"
)

// ValidRole reports whether role is one of the known staff roles.
func ValidRole(role string) bool {
	switch UserRole(role) {
	case RoleAdmin, RoleManager, RoleCashier, RoleWaiter, RoleStockManager:
		return true
	}
	return false
}
