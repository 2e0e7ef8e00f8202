package entity

import "time"

// Role tiers. SystemAdmin passes every endpoint gate.
const (
	RoleSystemAdmin  = "SystemAdmin"
	RoleManagement   = "Management"
	RoleStoreManager = "StoreManager"
	RoleDriver       = "Driver"
	RoleAssistant    = "Assistant"
	RoleCustomer     = "Customer"
)

// User is a staff account (customers authenticate separately).
type User struct {
	UserID       string    `json:"user_id" gorm:"primaryKey;size:36"`
	UserName     string    `json:"user_name" gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:200;not null"`
	Role         string    `json:"role" gorm:"size:20;not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
