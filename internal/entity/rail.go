package entity

import "time"

// Schedule statuses shared by train and truck runs.
const (
	ScheduleStatusPlanned    = "PLANNED"
	ScheduleStatusInProgress = "IN_PROGRESS"
	ScheduleStatusCompleted  = "COMPLETED"
	ScheduleStatusCancelled  = "CANCELLED"
)

// ActiveAllocationStatuses are the allocation statuses that count toward
// schedule utilization.
var ActiveAllocationStatuses = []string{ScheduleStatusPlanned, ScheduleStatusInProgress}

func ValidScheduleStatus(s string) bool {
	switch s {
	case ScheduleStatusPlanned, ScheduleStatusInProgress, ScheduleStatusCompleted, ScheduleStatusCancelled:
		return true
	}
	return false
}

type Train struct {
	TrainID   string `json:"train_id" gorm:"primaryKey;size:36"`
	TrainName string `json:"train_name" gorm:"size:200;not null"`
	Capacity  int    `json:"capacity" gorm:"not null"`
}

func (Train) TableName() string {
	return "trains"
}

type TrainSchedule struct {
	ScheduleID           string    `json:"schedule_id" gorm:"primaryKey;size:36"`
	TrainID              string    `json:"train_id" gorm:"size:36;not null;index"`
	SourceStationID      string    `json:"source_station_id" gorm:"size:36;not null"`
	DestinationStationID string    `json:"destination_station_id" gorm:"size:36;not null"`
	ScheduledDate        time.Time `json:"scheduled_date" gorm:"not null;index"`
	DepartureTime        string    `json:"departure_time" gorm:"size:8"`
	ArrivalTime          string    `json:"arrival_time" gorm:"size:8"`
	CargoCapacity        float64   `json:"cargo_capacity" gorm:"type:decimal(12,2);not null"`
	Status               string    `json:"status" gorm:"size:20;not null;default:PLANNED"`
}

func (TrainSchedule) TableName() string {
	return "train_schedules"
}

// RailAllocation reserves space on a train schedule for one order.
type RailAllocation struct {
	AllocationID   string    `json:"allocation_id" gorm:"primaryKey;size:36"`
	OrderID        string    `json:"order_id" gorm:"size:36;not null;index"`
	ScheduleID     string    `json:"schedule_id" gorm:"size:36;not null;index"`
	ShipmentDate   time.Time `json:"shipment_date"`
	AllocatedSpace float64   `json:"allocated_space" gorm:"type:decimal(12,2);not null"`
	Status         string    `json:"status" gorm:"size:20;not null;default:PLANNED"`
	CreatedAt      time.Time `json:"created_at"`
}

func (RailAllocation) TableName() string {
	return "rail_allocations"
}
