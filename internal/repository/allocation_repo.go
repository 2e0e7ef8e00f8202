package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
)

type AllocationRepository struct {
	db *gorm.DB
}

func NewAllocationRepository(db *gorm.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

// DB exposes the underlying connection for transactional allocation flows.
func (r *AllocationRepository) DB() *gorm.DB {
	return r.db
}

func (r *AllocationRepository) FindAllRail(ctx context.Context) ([]entity.RailAllocation, error) {
	var allocations []entity.RailAllocation
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&allocations).Error
	return allocations, err
}

func (r *AllocationRepository) FindRailByID(ctx context.Context, id string) (*entity.RailAllocation, error) {
	var allocation entity.RailAllocation
	err := r.db.WithContext(ctx).Where("allocation_id = ?", id).First(&allocation).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &allocation, nil
}

func (r *AllocationRepository) FindRailBySchedule(ctx context.Context, scheduleID string) ([]entity.RailAllocation, error) {
	var allocations []entity.RailAllocation
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Order("created_at").
		Find(&allocations).Error
	return allocations, err
}

// SumRailAllocated totals the space reserved on a schedule by allocations in
// active statuses.
func (r *AllocationRepository) SumRailAllocated(ctx context.Context, scheduleID string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&entity.RailAllocation{}).
		Select("COALESCE(SUM(allocated_space), 0)").
		Where("schedule_id = ?", scheduleID).
		Where("status IN ?", entity.ActiveAllocationStatuses).
		Scan(&total).Error
	return total, err
}

func (r *AllocationRepository) CreateRail(ctx context.Context, allocation *entity.RailAllocation) error {
	return r.db.WithContext(ctx).Create(allocation).Error
}

func (r *AllocationRepository) UpdateRail(ctx context.Context, allocation *entity.RailAllocation) error {
	return r.db.WithContext(ctx).Save(allocation).Error
}

func (r *AllocationRepository) DeleteRail(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("allocation_id = ?", id).Delete(&entity.RailAllocation{}).Error
}

func (r *AllocationRepository) FindAllTruck(ctx context.Context) ([]entity.TruckAllocation, error) {
	var allocations []entity.TruckAllocation
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&allocations).Error
	return allocations, err
}

func (r *AllocationRepository) FindTruckByID(ctx context.Context, id string) (*entity.TruckAllocation, error) {
	var allocation entity.TruckAllocation
	err := r.db.WithContext(ctx).Where("allocation_id = ?", id).First(&allocation).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &allocation, nil
}

func (r *AllocationRepository) FindTruckBySchedule(ctx context.Context, scheduleID string) ([]entity.TruckAllocation, error) {
	var allocations []entity.TruckAllocation
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Order("created_at").
		Find(&allocations).Error
	return allocations, err
}

func (r *AllocationRepository) SumTruckAllocated(ctx context.Context, scheduleID string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&entity.TruckAllocation{}).
		Select("COALESCE(SUM(allocated_space), 0)").
		Where("schedule_id = ?", scheduleID).
		Where("status IN ?", entity.ActiveAllocationStatuses).
		Scan(&total).Error
	return total, err
}

func (r *AllocationRepository) CreateTruck(ctx context.Context, allocation *entity.TruckAllocation) error {
	return r.db.WithContext(ctx).Create(allocation).Error
}

func (r *AllocationRepository) UpdateTruck(ctx context.Context, allocation *entity.TruckAllocation) error {
	return r.db.WithContext(ctx).Save(allocation).Error
}

func (r *AllocationRepository) DeleteTruck(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("allocation_id = ?", id).Delete(&entity.TruckAllocation{}).Error
}
