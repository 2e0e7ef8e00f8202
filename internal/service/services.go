package service

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/config"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/repository"
)

// Services is the service collection wired into the handlers.
type Services struct {
	Auth       *AuthService
	User       *UserService
	Customer   *CustomerService
	Order      *OrderService
	Product    *ProductService
	Store      *StoreService
	City       *CityService
	Route      *RouteService
	Train      *TrainService
	Truck      *TruckService
	Capacity   *CapacityService
	Allocation *AllocationService
	Report     *ReportService
}

func NewServices(repos *repository.Repositories, db *gorm.DB, rdb *redis.Client, cfg *config.Config) *Services {
	auth := NewAuthService(repos.User, repos.Customer, rdb, cfg.JWT)
	capacity := NewCapacityService(repos.Order, repos.Train, repos.Allocation)

	return &Services{
		Auth:       auth,
		User:       NewUserService(repos.User, auth),
		Customer:   NewCustomerService(repos.Customer, auth),
		Order:      NewOrderService(repos.Order, repos.Customer, repos.Store),
		Product:    NewProductService(repos.Product),
		Store:      NewStoreService(repos.Store, repos.City),
		City:       NewCityService(repos.City),
		Route:      NewRouteService(repos.Route, repos.Store, repos.City),
		Train:      NewTrainService(repos.Train, repos.City),
		Truck:      NewTruckService(repos.Truck, repos.Route),
		Capacity:   capacity,
		Allocation: NewAllocationService(repos.Allocation, repos.Order, repos.Train, repos.Truck, capacity),
		Report:     NewReportService(db),
	}
}
