package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/repository"
)

type ProductService struct {
	productRepo *repository.ProductRepository
}

func NewProductService(productRepo *repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

type CreateProductRequest struct {
	ProductName          string  `json:"product_name" binding:"required,max=200"`
	SpaceConsumptionRate float64 `json:"space_consumption_rate" binding:"required,gt=0"`
}

type UpdateProductRequest struct {
	ProductName          *string  `json:"product_name"`
	SpaceConsumptionRate *float64 `json:"space_consumption_rate"`
}

func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.FindAll(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*entity.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*entity.Product, error) {
	product := &entity.Product{
		ProductTypeID:        uuid.New().String(),
		ProductName:          req.ProductName,
		SpaceConsumptionRate: req.SpaceConsumptionRate,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, req UpdateProductRequest) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ProductName != nil {
		product.ProductName = *req.ProductName
	}
	if req.SpaceConsumptionRate != nil {
		product.SpaceConsumptionRate = *req.SpaceConsumptionRate
	}
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}
