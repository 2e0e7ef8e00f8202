package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/repository"
)

// TrainService manages trains and their schedules.
type TrainService struct {
	trainRepo *repository.TrainRepository
	cityRepo  *repository.CityRepository
}

func NewTrainService(trainRepo *repository.TrainRepository, cityRepo *repository.CityRepository) *TrainService {
	return &TrainService{trainRepo: trainRepo, cityRepo: cityRepo}
}

type CreateTrainRequest struct {
	TrainName string `json:"train_name" binding:"required,max=200"`
	Capacity  int    `json:"capacity" binding:"required,gt=0"`
}

type UpdateTrainRequest struct {
	TrainName *string `json:"train_name"`
	Capacity  *int    `json:"capacity"`
}

type CreateTrainScheduleRequest struct {
	TrainID              string    `json:"train_id" binding:"required"`
	SourceStationID      string    `json:"source_station_id" binding:"required"`
	DestinationStationID string    `json:"destination_station_id" binding:"required"`
	ScheduledDate        time.Time `json:"scheduled_date" binding:"required"`
	DepartureTime        string    `json:"departure_time" binding:"max=8"`
	ArrivalTime          string    `json:"arrival_time" binding:"max=8"`
	CargoCapacity        float64   `json:"cargo_capacity" binding:"required,gt=0"`
}

type UpdateTrainScheduleRequest struct {
	ScheduledDate *time.Time `json:"scheduled_date"`
	DepartureTime *string    `json:"departure_time"`
	ArrivalTime   *string    `json:"arrival_time"`
	CargoCapacity *float64   `json:"cargo_capacity"`
	Status        *string    `json:"status"`
}

func (s *TrainService) List(ctx context.Context) ([]entity.Train, error) {
	return s.trainRepo.FindAll(ctx)
}

func (s *TrainService) Get(ctx context.Context, id string) (*entity.Train, error) {
	return s.trainRepo.FindByID(ctx, id)
}

func (s *TrainService) Create(ctx context.Context, req CreateTrainRequest) (*entity.Train, error) {
	train := &entity.Train{
		TrainID:   uuid.New().String(),
		TrainName: req.TrainName,
		Capacity:  req.Capacity,
	}
	if err := s.trainRepo.Create(ctx, train); err != nil {
		return nil, err
	}
	return train, nil
}

func (s *TrainService) Update(ctx context.Context, id string, req UpdateTrainRequest) (*entity.Train, error) {
	train, err := s.trainRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.TrainName != nil {
		train.TrainName = *req.TrainName
	}
	if req.Capacity != nil {
		train.Capacity = *req.Capacity
	}
	if err := s.trainRepo.Update(ctx, train); err != nil {
		return nil, err
	}
	return train, nil
}

func (s *TrainService) Delete(ctx context.Context, id string) error {
	if _, err := s.trainRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.trainRepo.Delete(ctx, id)
}

func (s *TrainService) ListSchedules(ctx context.Context) ([]entity.TrainSchedule, error) {
	return s.trainRepo.FindAllSchedules(ctx)
}

func (s *TrainService) GetSchedule(ctx context.Context, id string) (*entity.TrainSchedule, error) {
	return s.trainRepo.FindScheduleByID(ctx, id)
}

func (s *TrainService) CreateSchedule(ctx context.Context, req CreateTrainScheduleRequest) (*entity.TrainSchedule, error) {
	if _, err := s.trainRepo.FindByID(ctx, req.TrainID); err != nil {
		return nil, err
	}
	if _, err := s.cityRepo.FindStationByID(ctx, req.SourceStationID); err != nil {
		return nil, err
	}
	if _, err := s.cityRepo.FindStationByID(ctx, req.DestinationStationID); err != nil {
		return nil, err
	}

	schedule := &entity.TrainSchedule{
		ScheduleID:           uuid.New().String(),
		TrainID:              req.TrainID,
		SourceStationID:      req.SourceStationID,
		DestinationStationID: req.DestinationStationID,
		ScheduledDate:        req.ScheduledDate,
		DepartureTime:        req.DepartureTime,
		ArrivalTime:          req.ArrivalTime,
		CargoCapacity:        req.CargoCapacity,
		Status:               entity.ScheduleStatusPlanned,
	}
	if err := s.trainRepo.CreateSchedule(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *TrainService) UpdateSchedule(ctx context.Context, id string, req UpdateTrainScheduleRequest) (*entity.TrainSchedule, error) {
	schedule, err := s.trainRepo.FindScheduleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ScheduledDate != nil {
		schedule.ScheduledDate = *req.ScheduledDate
	}
	if req.DepartureTime != nil {
		schedule.DepartureTime = *req.DepartureTime
	}
	if req.ArrivalTime != nil {
		schedule.ArrivalTime = *req.ArrivalTime
	}
	if req.CargoCapacity != nil {
		schedule.CargoCapacity = *req.CargoCapacity
	}
	if req.Status != nil {
		if !entity.ValidScheduleStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		schedule.Status = *req.Status
	}
	if err := s.trainRepo.UpdateSchedule(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *TrainService) DeleteSchedule(ctx context.Context, id string) error {
	if _, err := s.trainRepo.FindScheduleByID(ctx, id); err != nil {
		return err
	}
	return s.trainRepo.DeleteSchedule(ctx, id)
}
