package entity

import "time"

type Truck struct {
	TruckID    string `json:"truck_id" gorm:"primaryKey;size:36"`
	LicenseNum string `json:"license_num" gorm:"size:20;uniqueIndex;not null"`
	Capacity   int    `json:"capacity" gorm:"not null"`
	IsActive   bool   `json:"is_active" gorm:"default:true"`
}

func (Truck) TableName() string {
	return "trucks"
}

type Driver struct {
	DriverID           string `json:"driver_id" gorm:"primaryKey;size:36"`
	Name               string `json:"name" gorm:"size:200;not null"`
	WeeklyWorkingHours int    `json:"weekly_working_hours" gorm:"default:0"`
	UserID             string `json:"user_id" gorm:"size:36;index"`
}

func (Driver) TableName() string {
	return "drivers"
}

type Assistant struct {
	AssistantID        string `json:"assistant_id" gorm:"primaryKey;size:36"`
	Name               string `json:"name" gorm:"size:200;not null"`
	WeeklyWorkingHours int    `json:"weekly_working_hours" gorm:"default:0"`
	UserID             string `json:"user_id" gorm:"size:36;index"`
}

func (Assistant) TableName() string {
	return "assistants"
}

type TruckSchedule struct {
	ScheduleID    string    `json:"schedule_id" gorm:"primaryKey;size:36"`
	RouteID       string    `json:"route_id" gorm:"size:36;not null;index"`
	TruckID       string    `json:"truck_id" gorm:"size:36;not null;index"`
	DriverID      string    `json:"driver_id" gorm:"size:36;not null"`
	AssistantID   string    `json:"assistant_id" gorm:"size:36;not null"`
	ScheduledDate time.Time `json:"scheduled_date" gorm:"not null;index"`
	DepartureTime string    `json:"departure_time" gorm:"size:8"`
	Duration      int       `json:"duration"`
	Status        string    `json:"status" gorm:"size:20;not null;default:PLANNED"`
}

func (TruckSchedule) TableName() string {
	return "truck_schedules"
}

// TruckAllocation reserves space on a truck schedule for one order.
type TruckAllocation struct {
	AllocationID   string    `json:"allocation_id" gorm:"primaryKey;size:36"`
	OrderID        string    `json:"order_id" gorm:"size:36;not null;index"`
	ScheduleID     string    `json:"schedule_id" gorm:"size:36;not null;index"`
	ShipmentDate   time.Time `json:"shipment_date"`
	AllocatedSpace float64   `json:"allocated_space" gorm:"type:decimal(12,2);not null"`
	Status         string    `json:"status" gorm:"size:20;not null;default:PLANNED"`
	CreatedAt      time.Time `json:"created_at"`
}

func (TruckAllocation) TableName() string {
	return "truck_allocations"
}
