package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
)

type CityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{db: db}
}

func (r *CityRepository) FindAll(ctx context.Context) ([]entity.City, error) {
	var cities []entity.City
	err := r.db.WithContext(ctx).Order("city_name").Find(&cities).Error
	return cities, err
}

func (r *CityRepository) FindByID(ctx context.Context, id string) (*entity.City, error) {
	var city entity.City
	err := r.db.WithContext(ctx).Where("city_id = ?", id).First(&city).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &city, nil
}

func (r *CityRepository) Create(ctx context.Context, city *entity.City) error {
	return r.db.WithContext(ctx).Create(city).Error
}

func (r *CityRepository) Update(ctx context.Context, city *entity.City) error {
	return r.db.WithContext(ctx).Save(city).Error
}

func (r *CityRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("city_id = ?", id).Delete(&entity.City{}).Error
}

func (r *CityRepository) FindAllStations(ctx context.Context) ([]entity.RailwayStation, error) {
	var stations []entity.RailwayStation
	err := r.db.WithContext(ctx).Order("station_name").Find(&stations).Error
	return stations, err
}

func (r *CityRepository) FindStationByID(ctx context.Context, id string) (*entity.RailwayStation, error) {
	var station entity.RailwayStation
	err := r.db.WithContext(ctx).Where("station_id = ?", id).First(&station).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &station, nil
}

func (r *CityRepository) CreateStation(ctx context.Context, station *entity.RailwayStation) error {
	return r.db.WithContext(ctx).Create(station).Error
}

func (r *CityRepository) UpdateStation(ctx context.Context, station *entity.RailwayStation) error {
	return r.db.WithContext(ctx).Save(station).Error
}

func (r *CityRepository) DeleteStation(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("station_id = ?", id).Delete(&entity.RailwayStation{}).Error
}
