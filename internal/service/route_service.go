package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/repository"
)

type RouteService struct {
	routeRepo *repository.RouteRepository
	storeRepo *repository.StoreRepository
	cityRepo  *repository.CityRepository
}

func NewRouteService(routeRepo *repository.RouteRepository, storeRepo *repository.StoreRepository, cityRepo *repository.CityRepository) *RouteService {
	return &RouteService{routeRepo: routeRepo, storeRepo: storeRepo, cityRepo: cityRepo}
}

type CreateRouteRequest struct {
	StoreID     string `json:"store_id" binding:"required"`
	StartCityID string `json:"start_city_id" binding:"required"`
	EndCityID   string `json:"end_city_id" binding:"required"`
	Distance    int    `json:"distance" binding:"gte=0"`
}

type UpdateRouteRequest struct {
	StartCityID *string `json:"start_city_id"`
	EndCityID   *string `json:"end_city_id"`
	Distance    *int    `json:"distance"`
}

func (s *RouteService) List(ctx context.Context) ([]entity.Route, error) {
	return s.routeRepo.FindAll(ctx)
}

func (s *RouteService) Get(ctx context.Context, id string) (*entity.Route, error) {
	return s.routeRepo.FindByID(ctx, id)
}

func (s *RouteService) Create(ctx context.Context, req CreateRouteRequest) (*entity.Route, error) {
	if _, err := s.storeRepo.FindByID(ctx, req.StoreID); err != nil {
		return nil, err
	}
	if _, err := s.cityRepo.FindByID(ctx, req.StartCityID); err != nil {
		return nil, err
	}
	if _, err := s.cityRepo.FindByID(ctx, req.EndCityID); err != nil {
		return nil, err
	}

	route := &entity.Route{
		RouteID:     uuid.New().String(),
		StoreID:     req.StoreID,
		StartCityID: req.StartCityID,
		EndCityID:   req.EndCityID,
		Distance:    req.Distance,
	}
	if err := s.routeRepo.Create(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

func (s *RouteService) Update(ctx context.Context, id string, req UpdateRouteRequest) (*entity.Route, error) {
	route, err := s.routeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.StartCityID != nil {
		if _, err := s.cityRepo.FindByID(ctx, *req.StartCityID); err != nil {
			return nil, err
		}
		route.StartCityID = *req.StartCityID
	}
	if req.EndCityID != nil {
		if _, err := s.cityRepo.FindByID(ctx, *req.EndCityID); err != nil {
			return nil, err
		}
		route.EndCityID = *req.EndCityID
	}
	if req.Distance != nil {
		route.Distance = *req.Distance
	}
	if err := s.routeRepo.Update(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

func (s *RouteService) Delete(ctx context.Context, id string) error {
	if _, err := s.routeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.routeRepo.Delete(ctx, id)
}
