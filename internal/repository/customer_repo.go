package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.db.WithContext(ctx).Order("created_at").Find(&customers).Error
	return customers, err
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).Where("customer_id = ?", id).First(&customer).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &customer, nil
}

func (r *CustomerRepository) FindByUserName(ctx context.Context, userName string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).Where("customer_user_name = ?", userName).First(&customer).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &customer, nil
}

func (r *CustomerRepository) UserNameTaken(ctx context.Context, userName, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("customer_user_name = ?", userName)
	if excludeID != "" {
		query = query.Where("customer_id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *CustomerRepository) PhoneNumberTaken(ctx context.Context, phone, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("phone_number = ?", phone)
	if excludeID != "" {
		query = query.Where("customer_id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *CustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("customer_id = ?", id).Delete(&entity.Customer{}).Error
}
