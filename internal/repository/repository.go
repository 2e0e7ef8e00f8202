package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repositories bundles every repository over one gorm connection.
type Repositories struct {
	User       *UserRepository
	Customer   *CustomerRepository
	Order      *OrderRepository
	Product    *ProductRepository
	Store      *StoreRepository
	City       *CityRepository
	Route      *RouteRepository
	Train      *TrainRepository
	Truck      *TruckRepository
	Allocation *AllocationRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Customer:   NewCustomerRepository(db),
		Order:      NewOrderRepository(db),
		Product:    NewProductRepository(db),
		Store:      NewStoreRepository(db),
		City:       NewCityRepository(db),
		Route:      NewRouteRepository(db),
		Train:      NewTrainRepository(db),
		Truck:      NewTruckRepository(db),
		Allocation: NewAllocationRepository(db),
	}
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
