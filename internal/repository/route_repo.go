package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
)

type RouteRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

func (r *RouteRepository) FindAll(ctx context.Context) ([]entity.Route, error) {
	var routes []entity.Route
	err := r.db.WithContext(ctx).Find(&routes).Error
	return routes, err
}

func (r *RouteRepository) FindByID(ctx context.Context, id string) (*entity.Route, error) {
	var route entity.Route
	err := r.db.WithContext(ctx).Where("route_id = ?", id).First(&route).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &route, nil
}

func (r *RouteRepository) Create(ctx context.Context, route *entity.Route) error {
	return r.db.WithContext(ctx).Create(route).Error
}

func (r *RouteRepository) Update(ctx context.Context, route *entity.Route) error {
	return r.db.WithContext(ctx).Save(route).Error
}

func (r *RouteRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("route_id = ?", id).Delete(&entity.Route{}).Error
}
