package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/repository"
)

// CityService manages cities and their railway stations.
type CityService struct {
	cityRepo *repository.CityRepository
}

func NewCityService(cityRepo *repository.CityRepository) *CityService {
	return &CityService{cityRepo: cityRepo}
}

type CreateCityRequest struct {
	CityName string `json:"city_name" binding:"required,max=100"`
	Province string `json:"province" binding:"max=100"`
}

type UpdateCityRequest struct {
	CityName *string `json:"city_name"`
	Province *string `json:"province"`
}

type CreateStationRequest struct {
	StationName string `json:"station_name" binding:"required,max=200"`
	CityID      string `json:"city_id" binding:"required"`
}

type UpdateStationRequest struct {
	StationName *string `json:"station_name"`
	CityID      *string `json:"city_id"`
}

func (s *CityService) List(ctx context.Context) ([]entity.City, error) {
	return s.cityRepo.FindAll(ctx)
}

func (s *CityService) Get(ctx context.Context, id string) (*entity.City, error) {
	return s.cityRepo.FindByID(ctx, id)
}

func (s *CityService) Create(ctx context.Context, req CreateCityRequest) (*entity.City, error) {
	city := &entity.City{
		CityID:   uuid.New().String(),
		CityName: req.CityName,
		Province: req.Province,
	}
	if err := s.cityRepo.Create(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *CityService) Update(ctx context.Context, id string, req UpdateCityRequest) (*entity.City, error) {
	city, err := s.cityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.CityName != nil {
		city.CityName = *req.CityName
	}
	if req.Province != nil {
		city.Province = *req.Province
	}
	if err := s.cityRepo.Update(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *CityService) Delete(ctx context.Context, id string) error {
	if _, err := s.cityRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.cityRepo.Delete(ctx, id)
}

func (s *CityService) ListStations(ctx context.Context) ([]entity.RailwayStation, error) {
	return s.cityRepo.FindAllStations(ctx)
}

func (s *CityService) GetStation(ctx context.Context, id string) (*entity.RailwayStation, error) {
	return s.cityRepo.FindStationByID(ctx, id)
}

func (s *CityService) CreateStation(ctx context.Context, req CreateStationRequest) (*entity.RailwayStation, error) {
	if _, err := s.cityRepo.FindByID(ctx, req.CityID); err != nil {
		return nil, err
	}

	station := &entity.RailwayStation{
		StationID:   uuid.New().String(),
		StationName: req.StationName,
		CityID:      req.CityID,
	}
	if err := s.cityRepo.CreateStation(ctx, station); err != nil {
		return nil, err
	}
	return station, nil
}

func (s *CityService) UpdateStation(ctx context.Context, id string, req UpdateStationRequest) (*entity.RailwayStation, error) {
	station, err := s.cityRepo.FindStationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.CityID != nil && *req.CityID != station.CityID {
		if _, err := s.cityRepo.FindByID(ctx, *req.CityID); err != nil {
			return nil, err
		}
		station.CityID = *req.CityID
	}
	if req.StationName != nil {
		station.StationName = *req.StationName
	}
	if err := s.cityRepo.UpdateStation(ctx, station); err != nil {
		return nil, err
	}
	return station, nil
}

func (s *CityService) DeleteStation(ctx context.Context, id string) error {
	if _, err := s.cityRepo.FindStationByID(ctx, id); err != nil {
		return err
	}
	return s.cityRepo.DeleteStation(ctx, id)
}
