package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/repository"
)

var ErrLicenseNumTaken = errors.New("license number already taken")

// TruckService manages the road fleet: trucks, drivers, assistants and truck
// schedules.
type TruckService struct {
	truckRepo *repository.TruckRepository
	routeRepo *repository.RouteRepository
}

func NewTruckService(truckRepo *repository.TruckRepository, routeRepo *repository.RouteRepository) *TruckService {
	return &TruckService{truckRepo: truckRepo, routeRepo: routeRepo}
}

type CreateTruckRequest struct {
	LicenseNum string `json:"license_num" binding:"required,max=20"`
	Capacity   int    `json:"capacity" binding:"required,gt=0"`
}

type UpdateTruckRequest struct {
	LicenseNum *string `json:"license_num"`
	Capacity   *int    `json:"capacity"`
	IsActive   *bool   `json:"is_active"`
}

type CreateTruckScheduleRequest struct {
	RouteID       string    `json:"route_id" binding:"required"`
	TruckID       string    `json:"truck_id" binding:"required"`
	DriverID      string    `json:"driver_id" binding:"required"`
	AssistantID   string    `json:"assistant_id" binding:"required"`
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
	DepartureTime string    `json:"departure_time" binding:"max=8"`
	Duration      int       `json:"duration" binding:"gte=0"`
}

type UpdateTruckScheduleRequest struct {
	ScheduledDate *time.Time `json:"scheduled_date"`
	DepartureTime *string    `json:"departure_time"`
	Duration      *int       `json:"duration"`
	Status        *string    `json:"status"`
}

type CreateCrewMemberRequest struct {
	Name               string `json:"name" binding:"required,max=200"`
	WeeklyWorkingHours int    `json:"weekly_working_hours" binding:"gte=0"`
	UserID             string `json:"user_id"`
}

type UpdateCrewMemberRequest struct {
	Name               *string `json:"name"`
	WeeklyWorkingHours *int    `json:"weekly_working_hours"`
	UserID             *string `json:"user_id"`
}

func (s *TruckService) List(ctx context.Context) ([]entity.Truck, error) {
	return s.truckRepo.FindAll(ctx)
}

func (s *TruckService) ListActive(ctx context.Context) ([]entity.Truck, error) {
	return s.truckRepo.FindActive(ctx)
}

func (s *TruckService) Get(ctx context.Context, id string) (*entity.Truck, error) {
	return s.truckRepo.FindByID(ctx, id)
}

func (s *TruckService) Create(ctx context.Context, req CreateTruckRequest) (*entity.Truck, error) {
	taken, err := s.truckRepo.LicenseNumTaken(ctx, req.LicenseNum, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrLicenseNumTaken
	}

	truck := &entity.Truck{
		TruckID:    uuid.New().String(),
		LicenseNum: req.LicenseNum,
		Capacity:   req.Capacity,
		IsActive:   true,
	}
	if err := s.truckRepo.Create(ctx, truck); err != nil {
		return nil, err
	}
	return truck, nil
}

func (s *TruckService) Update(ctx context.Context, id string, req UpdateTruckRequest) (*entity.Truck, error) {
	truck, err := s.truckRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.LicenseNum != nil && *req.LicenseNum != truck.LicenseNum {
		taken, err := s.truckRepo.LicenseNumTaken(ctx, *req.LicenseNum, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrLicenseNumTaken
		}
		truck.LicenseNum = *req.LicenseNum
	}
	if req.Capacity != nil {
		truck.Capacity = *req.Capacity
	}
	if req.IsActive != nil {
		truck.IsActive = *req.IsActive
	}
	if err := s.truckRepo.Update(ctx, truck); err != nil {
		return nil, err
	}
	return truck, nil
}

func (s *TruckService) Delete(ctx context.Context, id string) error {
	if _, err := s.truckRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.truckRepo.Delete(ctx, id)
}

func (s *TruckService) ListSchedules(ctx context.Context) ([]entity.TruckSchedule, error) {
	return s.truckRepo.FindAllSchedules(ctx)
}

func (s *TruckService) GetSchedule(ctx context.Context, id string) (*entity.TruckSchedule, error) {
	return s.truckRepo.FindScheduleByID(ctx, id)
}

func (s *TruckService) CreateSchedule(ctx context.Context, req CreateTruckScheduleRequest) (*entity.TruckSchedule, error) {
	if _, err := s.routeRepo.FindByID(ctx, req.RouteID); err != nil {
		return nil, err
	}
	if _, err := s.truckRepo.FindByID(ctx, req.TruckID); err != nil {
		return nil, err
	}
	if _, err := s.truckRepo.FindDriverByID(ctx, req.DriverID); err != nil {
		return nil, err
	}
	if _, err := s.truckRepo.FindAssistantByID(ctx, req.AssistantID); err != nil {
		return nil, err
	}

	schedule := &entity.TruckSchedule{
		ScheduleID:    uuid.New().String(),
		RouteID:       req.RouteID,
		TruckID:       req.TruckID,
		DriverID:      req.DriverID,
		AssistantID:   req.AssistantID,
		ScheduledDate: req.ScheduledDate,
		DepartureTime: req.DepartureTime,
		Duration:      req.Duration,
		Status:        entity.ScheduleStatusPlanned,
	}
	if err := s.truckRepo.CreateSchedule(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *TruckService) UpdateSchedule(ctx context.Context, id string, req UpdateTruckScheduleRequest) (*entity.TruckSchedule, error) {
	schedule, err := s.truckRepo.FindScheduleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ScheduledDate != nil {
		schedule.ScheduledDate = *req.ScheduledDate
	}
	if req.DepartureTime != nil {
		schedule.DepartureTime = *req.DepartureTime
	}
	if req.Duration != nil {
		schedule.Duration = *req.Duration
	}
	if req.Status != nil {
		if !entity.ValidScheduleStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		schedule.Status = *req.Status
	}
	if err := s.truckRepo.UpdateSchedule(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *TruckService) DeleteSchedule(ctx context.Context, id string) error {
	if _, err := s.truckRepo.FindScheduleByID(ctx, id); err != nil {
		return err
	}
	return s.truckRepo.DeleteSchedule(ctx, id)
}

func (s *TruckService) ListDrivers(ctx context.Context) ([]entity.Driver, error) {
	return s.truckRepo.FindAllDrivers(ctx)
}

func (s *TruckService) GetDriver(ctx context.Context, id string) (*entity.Driver, error) {
	return s.truckRepo.FindDriverByID(ctx, id)
}

func (s *TruckService) CreateDriver(ctx context.Context, req CreateCrewMemberRequest) (*entity.Driver, error) {
	driver := &entity.Driver{
		DriverID:           uuid.New().String(),
		Name:               req.Name,
		WeeklyWorkingHours: req.WeeklyWorkingHours,
		UserID:             req.UserID,
	}
	if err := s.truckRepo.CreateDriver(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *TruckService) UpdateDriver(ctx context.Context, id string, req UpdateCrewMemberRequest) (*entity.Driver, error) {
	driver, err := s.truckRepo.FindDriverByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		driver.Name = *req.Name
	}
	if req.WeeklyWorkingHours != nil {
		driver.WeeklyWorkingHours = *req.WeeklyWorkingHours
	}
	if req.UserID != nil {
		driver.UserID = *req.UserID
	}
	if err := s.truckRepo.UpdateDriver(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *TruckService) DeleteDriver(ctx context.Context, id string) error {
	if _, err := s.truckRepo.FindDriverByID(ctx, id); err != nil {
		return err
	}
	return s.truckRepo.DeleteDriver(ctx, id)
}

func (s *TruckService) ListAssistants(ctx context.Context) ([]entity.Assistant, error) {
	return s.truckRepo.FindAllAssistants(ctx)
}

func (s *TruckService) GetAssistant(ctx context.Context, id string) (*entity.Assistant, error) {
	return s.truckRepo.FindAssistantByID(ctx, id)
}

func (s *TruckService) CreateAssistant(ctx context.Context, req CreateCrewMemberRequest) (*entity.Assistant, error) {
	assistant := &entity.Assistant{
		AssistantID:        uuid.New().String(),
		Name:               req.Name,
		WeeklyWorkingHours: req.WeeklyWorkingHours,
		UserID:             req.UserID,
	}
	if err := s.truckRepo.CreateAssistant(ctx, assistant); err != nil {
		return nil, err
	}
	return assistant, nil
}

func (s *TruckService) UpdateAssistant(ctx context.Context, id string, req UpdateCrewMemberRequest) (*entity.Assistant, error) {
	assistant, err := s.truckRepo.FindAssistantByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		assistant.Name = *req.Name
	}
	if req.WeeklyWorkingHours != nil {
		assistant.WeeklyWorkingHours = *req.WeeklyWorkingHours
	}
	if req.UserID != nil {
		assistant.UserID = *req.UserID
	}
	if err := s.truckRepo.UpdateAssistant(ctx, assistant); err != nil {
		return nil, err
	}
	return assistant, nil
}

func (s *TruckService) DeleteAssistant(ctx context.Context, id string) error {
	if _, err := s.truckRepo.FindAssistantByID(ctx, id); err != nil {
		return err
	}
	return s.truckRepo.DeleteAssistant(ctx, id)
}
