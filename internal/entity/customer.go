package entity

import "time"

type Customer struct {
	CustomerID       string    `json:"customer_id" gorm:"primaryKey;size:36"`
	CustomerUserName string    `json:"customer_user_name" gorm:"size:100;uniqueIndex;not null"`
	CustomerName     string    `json:"customer_name" gorm:"size:200;not null"`
	PhoneNumber      string    `json:"phone_number" gorm:"size:20;uniqueIndex;not null"`
	Address          string    `json:"address" gorm:"size:500"`
	PasswordHash     string    `json:"-" gorm:"size:200;not null"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Customer) TableName() string {
	return "customers"
}
