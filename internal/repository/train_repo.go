package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
)

type TrainRepository struct {
	db *gorm.DB
}

func NewTrainRepository(db *gorm.DB) *TrainRepository {
	return &TrainRepository{db: db}
}

func (r *TrainRepository) FindAll(ctx context.Context) ([]entity.Train, error) {
	var trains []entity.Train
	err := r.db.WithContext(ctx).Order("train_name").Find(&trains).Error
	return trains, err
}

func (r *TrainRepository) FindByID(ctx context.Context, id string) (*entity.Train, error) {
	var train entity.Train
	err := r.db.WithContext(ctx).Where("train_id = ?", id).First(&train).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &train, nil
}

func (r *TrainRepository) Create(ctx context.Context, train *entity.Train) error {
	return r.db.WithContext(ctx).Create(train).Error
}

func (r *TrainRepository) Update(ctx context.Context, train *entity.Train) error {
	return r.db.WithContext(ctx).Save(train).Error
}

func (r *TrainRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("train_id = ?", id).Delete(&entity.Train{}).Error
}

func (r *TrainRepository) FindAllSchedules(ctx context.Context) ([]entity.TrainSchedule, error) {
	var schedules []entity.TrainSchedule
	err := r.db.WithContext(ctx).Order("scheduled_date").Find(&schedules).Error
	return schedules, err
}

func (r *TrainRepository) FindScheduleByID(ctx context.Context, id string) (*entity.TrainSchedule, error) {
	var schedule entity.TrainSchedule
	err := r.db.WithContext(ctx).Where("schedule_id = ?", id).First(&schedule).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &schedule, nil
}

// FindPlannedSchedules lists PLANNED schedules for a train on a station pair,
// scheduled on or after from, earliest first.
func (r *TrainRepository) FindPlannedSchedules(ctx context.Context, trainID, sourceStationID, destinationStationID string, from time.Time, strictlyAfter bool) ([]entity.TrainSchedule, error) {
	query := r.db.WithContext(ctx).
		Where("train_id = ?", trainID).
		Where("source_station_id = ?", sourceStationID).
		Where("destination_station_id = ?", destinationStationID).
		Where("status = ?", entity.ScheduleStatusPlanned)

	if strictlyAfter {
		query = query.Where("scheduled_date > ?", from)
	} else {
		query = query.Where("scheduled_date >= ?", from)
	}

	var schedules []entity.TrainSchedule
	err := query.Order("scheduled_date").Find(&schedules).Error
	return schedules, err
}

func (r *TrainRepository) CreateSchedule(ctx context.Context, schedule *entity.TrainSchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *TrainRepository) UpdateSchedule(ctx context.Context, schedule *entity.TrainSchedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *TrainRepository) DeleteSchedule(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("schedule_id = ?", id).Delete(&entity.TrainSchedule{}).Error
}
