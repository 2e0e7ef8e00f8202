package service

import (
	"context"
	"math"
	"time"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/repository"
)

// CapacityService computes cargo space demand per order and residual capacity
// per train schedule. It reads committed rows only; reservation itself happens
// in AllocationService.
type CapacityService struct {
	orderRepo      *repository.OrderRepository
	trainRepo      *repository.TrainRepository
	allocationRepo *repository.AllocationRepository

	now func() time.Time
}

func NewCapacityService(orderRepo *repository.OrderRepository, trainRepo *repository.TrainRepository, allocationRepo *repository.AllocationRepository) *CapacityService {
	return &CapacityService{
		orderRepo:      orderRepo,
		trainRepo:      trainRepo,
		allocationRepo: allocationRepo,
		now:            time.Now,
	}
}

// OrderSpace returns the total space units an order consumes: the sum of
// quantity times the product's space consumption rate over its items. An
// order with no items is reported as not found.
func (s *CapacityService) OrderSpace(ctx context.Context, orderID string) (float64, error) {
	rows, err := s.orderRepo.ItemsWithSpaceRates(ctx, orderID)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, repository.ErrNotFound
	}

	var total float64
	for _, row := range rows {
		total += float64(row.Quantity) * row.SpaceConsumptionRate
	}
	return total, nil
}

// AllocatedSpace totals the active allocations on a train schedule.
func (s *CapacityService) AllocatedSpace(ctx context.Context, scheduleID string) (float64, error) {
	return s.allocationRepo.SumRailAllocated(ctx, scheduleID)
}

// AvailableSpace returns the residual capacity of a schedule, never negative.
func (s *CapacityService) AvailableSpace(ctx context.Context, scheduleID string) (float64, error) {
	schedule, err := s.trainRepo.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		return 0, err
	}

	allocated, err := s.AllocatedSpace(ctx, scheduleID)
	if err != nil {
		return 0, err
	}

	return math.Max(0, schedule.CargoCapacity-allocated), nil
}

// CapacityCheck is the result of a capacity probe. The check is advisory: a
// concurrent writer may consume the space between check and allocation.
type CapacityCheck struct {
	ScheduleID     string  `json:"schedule_id"`
	IsAvailable    bool    `json:"is_available"`
	AvailableSpace float64 `json:"available_space"`
	RequiredSpace  float64 `json:"required_space"`
}

func (s *CapacityService) Check(ctx context.Context, scheduleID string, requiredSpace float64) (*CapacityCheck, error) {
	available, err := s.AvailableSpace(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	return &CapacityCheck{
		ScheduleID:     scheduleID,
		IsAvailable:    available >= requiredSpace,
		AvailableSpace: available,
		RequiredSpace:  requiredSpace,
	}, nil
}

// CapacityInfo summarizes a schedule's utilization.
type CapacityInfo struct {
	ScheduleID            string  `json:"schedule_id"`
	CargoCapacity         float64 `json:"cargo_capacity"`
	AllocatedSpace        float64 `json:"allocated_space"`
	AvailableSpace        float64 `json:"available_space"`
	UtilizationPercentage float64 `json:"utilization_percentage"`
	IsFull                bool    `json:"is_full"`
}

func (s *CapacityService) Info(ctx context.Context, scheduleID string) (*CapacityInfo, error) {
	schedule, err := s.trainRepo.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	allocated, err := s.AllocatedSpace(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	available := schedule.CargoCapacity - allocated
	var utilization float64
	if schedule.CargoCapacity > 0 {
		utilization = math.Round(allocated/schedule.CargoCapacity*100*100) / 100
	}

	return &CapacityInfo{
		ScheduleID:            scheduleID,
		CargoCapacity:         schedule.CargoCapacity,
		AllocatedSpace:        allocated,
		AvailableSpace:        math.Max(0, available),
		UtilizationPercentage: utilization,
		IsFull:                available <= 0,
	}, nil
}

// NextAvailableSchedule scans PLANNED schedules for the train on the given
// station pair in date order and returns the first with enough residual
// capacity, or nil when none qualifies. When after is non-nil the scan starts
// strictly past it, otherwise from today.
func (s *CapacityService) NextAvailableSchedule(ctx context.Context, trainID, sourceStationID, destinationStationID string, requiredSpace float64, after *time.Time) (*entity.TrainSchedule, error) {
	from := s.now().Truncate(24 * time.Hour)
	strictlyAfter := false
	if after != nil {
		from = *after
		strictlyAfter = true
	}

	schedules, err := s.trainRepo.FindPlannedSchedules(ctx, trainID, sourceStationID, destinationStationID, from, strictlyAfter)
	if err != nil {
		return nil, err
	}

	for i := range schedules {
		available, err := s.AvailableSpace(ctx, schedules[i].ScheduleID)
		if err != nil {
			return nil, err
		}
		if available >= requiredSpace {
			return &schedules[i], nil
		}
	}
	return nil, nil
}
