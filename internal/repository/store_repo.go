package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
)

type StoreRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// FindAllWithCity lists stores joined with their station's city and the
// assigned manager's name, when either exists.
func (r *StoreRepository) FindAllWithCity(ctx context.Context) ([]entity.StoreWithCity, error) {
	var rows []entity.StoreWithCity
	err := r.db.WithContext(ctx).
		Table("stores").
		Select("stores.store_id, stores.name, stores.telephone_number, stores.address, stores.contact_person, stores.station_id, cities.city_name, users.user_name AS manager_name").
		Joins("LEFT JOIN railway_stations ON railway_stations.station_id = stores.station_id").
		Joins("LEFT JOIN cities ON cities.city_id = railway_stations.city_id").
		Joins("LEFT JOIN users ON users.user_id = stores.contact_person").
		Order("stores.name").
		Scan(&rows).Error
	return rows, err
}

func (r *StoreRepository) FindByID(ctx context.Context, id string) (*entity.Store, error) {
	var store entity.Store
	err := r.db.WithContext(ctx).Where("store_id = ?", id).First(&store).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &store, nil
}

// FindByManager locates the store whose contact person is the given user.
func (r *StoreRepository) FindByManager(ctx context.Context, userID string) (*entity.Store, error) {
	var store entity.Store
	err := r.db.WithContext(ctx).Where("contact_person = ?", userID).First(&store).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &store, nil
}

func (r *StoreRepository) Create(ctx context.Context, store *entity.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *StoreRepository) Update(ctx context.Context, store *entity.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("store_id = ?", id).Delete(&entity.Store{}).Error
}
