package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/repository"
)

// ErrInsufficientCapacity is returned when a schedule cannot hold the order's
// cargo space.
var ErrInsufficientCapacity = errors.New("insufficient capacity on schedule")

// AllocationService reserves cargo space on rail and road schedules. Creation
// re-checks capacity inside the same transaction as the insert, so either
// both happen or neither does. Two allocations racing the same schedule can
// still both pass the check under read-committed isolation.
type AllocationService struct {
	allocationRepo *repository.AllocationRepository
	orderRepo      *repository.OrderRepository
	trainRepo      *repository.TrainRepository
	truckRepo      *repository.TruckRepository
	capacitySvc    *CapacityService
}

func NewAllocationService(
	allocationRepo *repository.AllocationRepository,
	orderRepo *repository.OrderRepository,
	trainRepo *repository.TrainRepository,
	truckRepo *repository.TruckRepository,
	capacitySvc *CapacityService,
) *AllocationService {
	return &AllocationService{
		allocationRepo: allocationRepo,
		orderRepo:      orderRepo,
		trainRepo:      trainRepo,
		truckRepo:      truckRepo,
		capacitySvc:    capacitySvc,
	}
}

type CreateAllocationRequest struct {
	OrderID      string    `json:"order_id" binding:"required"`
	ScheduleID   string    `json:"schedule_id" binding:"required"`
	ShipmentDate time.Time `json:"shipment_date" binding:"required"`
}

type UpdateAllocationRequest struct {
	ShipmentDate *time.Time `json:"shipment_date"`
	Status       *string    `json:"status"`
}

func (s *AllocationService) ListRail(ctx context.Context) ([]entity.RailAllocation, error) {
	return s.allocationRepo.FindAllRail(ctx)
}

func (s *AllocationService) GetRail(ctx context.Context, id string) (*entity.RailAllocation, error) {
	return s.allocationRepo.FindRailByID(ctx, id)
}

func (s *AllocationService) ListRailBySchedule(ctx context.Context, scheduleID string) ([]entity.RailAllocation, error) {
	if _, err := s.trainRepo.FindScheduleByID(ctx, scheduleID); err != nil {
		return nil, err
	}
	return s.allocationRepo.FindRailBySchedule(ctx, scheduleID)
}

// CreateRail reserves space for the order on a train schedule. The allocated
// space is derived from the order's items, never supplied by the caller. On
// success the order moves to SCHEDULED_RAIL.
func (s *AllocationService) CreateRail(ctx context.Context, req CreateAllocationRequest) (*entity.RailAllocation, error) {
	order, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	required, err := s.capacitySvc.OrderSpace(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	allocation := &entity.RailAllocation{
		AllocationID:   uuid.New().String(),
		OrderID:        req.OrderID,
		ScheduleID:     req.ScheduleID,
		ShipmentDate:   req.ShipmentDate,
		AllocatedSpace: required,
		Status:         entity.ScheduleStatusPlanned,
	}

	err = s.allocationRepo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var schedule entity.TrainSchedule
		if err := tx.Where("schedule_id = ?", req.ScheduleID).First(&schedule).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}

		var allocated float64
		if err := tx.Model(&entity.RailAllocation{}).
			Where("schedule_id = ? AND status IN ?", req.ScheduleID, entity.ActiveAllocationStatuses).
			Select("COALESCE(SUM(allocated_space), 0)").
			Scan(&allocated).Error; err != nil {
			return err
		}

		if schedule.CargoCapacity-allocated < required {
			return ErrInsufficientCapacity
		}

		if err := tx.Create(allocation).Error; err != nil {
			return err
		}

		order.Status = entity.OrderStatusScheduledRail
		return tx.Save(order).Error
	})
	if err != nil {
		return nil, err
	}
	return allocation, nil
}

func (s *AllocationService) UpdateRail(ctx context.Context, id string, req UpdateAllocationRequest) (*entity.RailAllocation, error) {
	allocation, err := s.allocationRepo.FindRailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ShipmentDate != nil {
		allocation.ShipmentDate = *req.ShipmentDate
	}
	if req.Status != nil {
		if !entity.ValidScheduleStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		allocation.Status = *req.Status
	}
	if err := s.allocationRepo.UpdateRail(ctx, allocation); err != nil {
		return nil, err
	}
	return allocation, nil
}

func (s *AllocationService) DeleteRail(ctx context.Context, id string) error {
	if _, err := s.allocationRepo.FindRailByID(ctx, id); err != nil {
		return err
	}
	return s.allocationRepo.DeleteRail(ctx, id)
}

func (s *AllocationService) ListTruck(ctx context.Context) ([]entity.TruckAllocation, error) {
	return s.allocationRepo.FindAllTruck(ctx)
}

func (s *AllocationService) GetTruck(ctx context.Context, id string) (*entity.TruckAllocation, error) {
	return s.allocationRepo.FindTruckByID(ctx, id)
}

func (s *AllocationService) ListTruckBySchedule(ctx context.Context, scheduleID string) ([]entity.TruckAllocation, error) {
	if _, err := s.truckRepo.FindScheduleByID(ctx, scheduleID); err != nil {
		return nil, err
	}
	return s.allocationRepo.FindTruckBySchedule(ctx, scheduleID)
}

// CreateTruck mirrors CreateRail for road schedules. Truck capacity comes
// from the assigned truck rather than the schedule row. On success the order
// moves to SCHEDULED_ROAD.
func (s *AllocationService) CreateTruck(ctx context.Context, req CreateAllocationRequest) (*entity.TruckAllocation, error) {
	order, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	required, err := s.capacitySvc.OrderSpace(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	allocation := &entity.TruckAllocation{
		AllocationID:   uuid.New().String(),
		OrderID:        req.OrderID,
		ScheduleID:     req.ScheduleID,
		ShipmentDate:   req.ShipmentDate,
		AllocatedSpace: required,
		Status:         entity.ScheduleStatusPlanned,
	}

	err = s.allocationRepo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var schedule entity.TruckSchedule
		if err := tx.Where("schedule_id = ?", req.ScheduleID).First(&schedule).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}

		var truck entity.Truck
		if err := tx.Where("truck_id = ?", schedule.TruckID).First(&truck).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}

		var allocated float64
		if err := tx.Model(&entity.TruckAllocation{}).
			Where("schedule_id = ? AND status IN ?", req.ScheduleID, entity.ActiveAllocationStatuses).
			Select("COALESCE(SUM(allocated_space), 0)").
			Scan(&allocated).Error; err != nil {
			return err
		}

		if float64(truck.Capacity)-allocated < required {
			return ErrInsufficientCapacity
		}

		if err := tx.Create(allocation).Error; err != nil {
			return err
		}

		order.Status = entity.OrderStatusScheduledRoad
		return tx.Save(order).Error
	})
	if err != nil {
		return nil, err
	}
	return allocation, nil
}

func (s *AllocationService) UpdateTruck(ctx context.Context, id string, req UpdateAllocationRequest) (*entity.TruckAllocation, error) {
	allocation, err := s.allocationRepo.FindTruckByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ShipmentDate != nil {
		allocation.ShipmentDate = *req.ShipmentDate
	}
	if req.Status != nil {
		if !entity.ValidScheduleStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		allocation.Status = *req.Status
	}
	if err := s.allocationRepo.UpdateTruck(ctx, allocation); err != nil {
		return nil, err
	}
	return allocation, nil
}

func (s *AllocationService) DeleteTruck(ctx context.Context, id string) error {
	if _, err := s.allocationRepo.FindTruckByID(ctx, id); err != nil {
		return err
	}
	return s.allocationRepo.DeleteTruck(ctx, id)
}
