package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/repository"
)

// StoreService manages stores, which also act as warehouses for order
// routing.
type StoreService struct {
	storeRepo *repository.StoreRepository
	cityRepo  *repository.CityRepository
}

func NewStoreService(storeRepo *repository.StoreRepository, cityRepo *repository.CityRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo, cityRepo: cityRepo}
}

type CreateStoreRequest struct {
	Name            string  `json:"name" binding:"required,max=200"`
	TelephoneNumber string  `json:"telephone_number" binding:"max=20"`
	Address         string  `json:"address"`
	ContactPerson   *string `json:"contact_person"`
	StationID       string  `json:"station_id" binding:"required"`
}

type UpdateStoreRequest struct {
	Name            *string `json:"name"`
	TelephoneNumber *string `json:"telephone_number"`
	Address         *string `json:"address"`
	ContactPerson   *string `json:"contact_person"`
	StationID       *string `json:"station_id"`
}

func (s *StoreService) List(ctx context.Context) ([]entity.StoreWithCity, error) {
	return s.storeRepo.FindAllWithCity(ctx)
}

func (s *StoreService) Get(ctx context.Context, id string) (*entity.Store, error) {
	return s.storeRepo.FindByID(ctx, id)
}

func (s *StoreService) GetByManager(ctx context.Context, userID string) (*entity.Store, error) {
	return s.storeRepo.FindByManager(ctx, userID)
}

func (s *StoreService) Create(ctx context.Context, req CreateStoreRequest) (*entity.Store, error) {
	if _, err := s.cityRepo.FindStationByID(ctx, req.StationID); err != nil {
		return nil, err
	}

	store := &entity.Store{
		StoreID:         uuid.New().String(),
		Name:            req.Name,
		TelephoneNumber: req.TelephoneNumber,
		Address:         req.Address,
		ContactPerson:   req.ContactPerson,
		StationID:       req.StationID,
	}
	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *StoreService) Update(ctx context.Context, id string, req UpdateStoreRequest) (*entity.Store, error) {
	store, err := s.storeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StationID != nil && *req.StationID != store.StationID {
		if _, err := s.cityRepo.FindStationByID(ctx, *req.StationID); err != nil {
			return nil, err
		}
		store.StationID = *req.StationID
	}
	if req.Name != nil {
		store.Name = *req.Name
	}
	if req.TelephoneNumber != nil {
		store.TelephoneNumber = *req.TelephoneNumber
	}
	if req.Address != nil {
		store.Address = *req.Address
	}
	if req.ContactPerson != nil {
		store.ContactPerson = req.ContactPerson
	}

	if err := s.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *StoreService) Delete(ctx context.Context, id string) error {
	if _, err := s.storeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.storeRepo.Delete(ctx, id)
}
