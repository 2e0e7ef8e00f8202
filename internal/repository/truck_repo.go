package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
)

type TruckRepository struct {
	db *gorm.DB
}

func NewTruckRepository(db *gorm.DB) *TruckRepository {
	return &TruckRepository{db: db}
}

func (r *TruckRepository) FindAll(ctx context.Context) ([]entity.Truck, error) {
	var trucks []entity.Truck
	err := r.db.WithContext(ctx).Order("license_num").Find(&trucks).Error
	return trucks, err
}

func (r *TruckRepository) FindActive(ctx context.Context) ([]entity.Truck, error) {
	var trucks []entity.Truck
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("license_num").Find(&trucks).Error
	return trucks, err
}

func (r *TruckRepository) FindByID(ctx context.Context, id string) (*entity.Truck, error) {
	var truck entity.Truck
	err := r.db.WithContext(ctx).Where("truck_id = ?", id).First(&truck).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &truck, nil
}

func (r *TruckRepository) LicenseNumTaken(ctx context.Context, licenseNum, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entity.Truck{}).Where("license_num = ?", licenseNum)
	if excludeID != "" {
		query = query.Where("truck_id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *TruckRepository) Create(ctx context.Context, truck *entity.Truck) error {
	return r.db.WithContext(ctx).Create(truck).Error
}

func (r *TruckRepository) Update(ctx context.Context, truck *entity.Truck) error {
	return r.db.WithContext(ctx).Save(truck).Error
}

func (r *TruckRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("truck_id = ?", id).Delete(&entity.Truck{}).Error
}

func (r *TruckRepository) FindAllSchedules(ctx context.Context) ([]entity.TruckSchedule, error) {
	var schedules []entity.TruckSchedule
	err := r.db.WithContext(ctx).Order("scheduled_date").Find(&schedules).Error
	return schedules, err
}

func (r *TruckRepository) FindScheduleByID(ctx context.Context, id string) (*entity.TruckSchedule, error) {
	var schedule entity.TruckSchedule
	err := r.db.WithContext(ctx).Where("schedule_id = ?", id).First(&schedule).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &schedule, nil
}

func (r *TruckRepository) CreateSchedule(ctx context.Context, schedule *entity.TruckSchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *TruckRepository) UpdateSchedule(ctx context.Context, schedule *entity.TruckSchedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *TruckRepository) DeleteSchedule(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("schedule_id = ?", id).Delete(&entity.TruckSchedule{}).Error
}

func (r *TruckRepository) FindAllDrivers(ctx context.Context) ([]entity.Driver, error) {
	var drivers []entity.Driver
	err := r.db.WithContext(ctx).Order("name").Find(&drivers).Error
	return drivers, err
}

func (r *TruckRepository) FindDriverByID(ctx context.Context, id string) (*entity.Driver, error) {
	var driver entity.Driver
	err := r.db.WithContext(ctx).Where("driver_id = ?", id).First(&driver).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &driver, nil
}

func (r *TruckRepository) CreateDriver(ctx context.Context, driver *entity.Driver) error {
	return r.db.WithContext(ctx).Create(driver).Error
}

func (r *TruckRepository) UpdateDriver(ctx context.Context, driver *entity.Driver) error {
	return r.db.WithContext(ctx).Save(driver).Error
}

func (r *TruckRepository) DeleteDriver(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("driver_id = ?", id).Delete(&entity.Driver{}).Error
}

func (r *TruckRepository) FindAllAssistants(ctx context.Context) ([]entity.Assistant, error) {
	var assistants []entity.Assistant
	err := r.db.WithContext(ctx).Order("name").Find(&assistants).Error
	return assistants, err
}

func (r *TruckRepository) FindAssistantByID(ctx context.Context, id string) (*entity.Assistant, error) {
	var assistant entity.Assistant
	err := r.db.WithContext(ctx).Where("assistant_id = ?", id).First(&assistant).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &assistant, nil
}

func (r *TruckRepository) CreateAssistant(ctx context.Context, assistant *entity.Assistant) error {
	return r.db.WithContext(ctx).Create(assistant).Error
}

func (r *TruckRepository) UpdateAssistant(ctx context.Context, assistant *entity.Assistant) error {
	return r.db.WithContext(ctx).Save(assistant).Error
}

func (r *TruckRepository) DeleteAssistant(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("assistant_id = ?", id).Delete(&entity.Assistant{}).Error
}
