package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/repository"
)

var ErrPhoneNumberTaken = errors.New("phone number already taken")

type CustomerService struct {
	customerRepo *repository.CustomerRepository
	authSvc      *AuthService
}

func NewCustomerService(customerRepo *repository.CustomerRepository, authSvc *AuthService) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, authSvc: authSvc}
}

type SignupRequest struct {
	CustomerUserName string `json:"customer_user_name" binding:"required,min=3,max=50"`
	CustomerName     string `json:"customer_name" binding:"required,max=100"`
	PhoneNumber      string `json:"phone_number" binding:"required,max=20"`
	Address          string `json:"address" binding:"required"`
	Password         string `json:"password" binding:"required,min=8"`
}

type UpdateCustomerRequest struct {
	CustomerName *string `json:"customer_name"`
	PhoneNumber  *string `json:"phone_number"`
	Address      *string `json:"address"`
	Password     *string `json:"password"`
}

func (s *CustomerService) List(ctx context.Context) ([]entity.Customer, error) {
	return s.customerRepo.FindAll(ctx)
}

func (s *CustomerService) Get(ctx context.Context, id string) (*entity.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}

// Signup registers a customer account and logs it in, returning the new
// customer together with a token pair.
func (s *CustomerService) Signup(ctx context.Context, req SignupRequest) (*entity.Customer, *LoginResult, error) {
	taken, err := s.customerRepo.UserNameTaken(ctx, req.CustomerUserName, "")
	if err != nil {
		return nil, nil, err
	}
	if taken {
		return nil, nil, ErrUserNameTaken
	}

	taken, err = s.customerRepo.PhoneNumberTaken(ctx, req.PhoneNumber, "")
	if err != nil {
		return nil, nil, err
	}
	if taken {
		return nil, nil, ErrPhoneNumberTaken
	}

	hash, err := s.authSvc.HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	customer := &entity.Customer{
		CustomerID:       uuid.New().String(),
		CustomerUserName: req.CustomerUserName,
		CustomerName:     req.CustomerName,
		PhoneNumber:      req.PhoneNumber,
		Address:          req.Address,
		PasswordHash:     hash,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, nil, err
	}

	login, err := s.authSvc.LoginCustomer(ctx, req.CustomerUserName, req.Password)
	if err != nil {
		return nil, nil, err
	}
	return customer, login, nil
}

func (s *CustomerService) Update(ctx context.Context, id string, req UpdateCustomerRequest) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PhoneNumber != nil && *req.PhoneNumber != customer.PhoneNumber {
		taken, err := s.customerRepo.PhoneNumberTaken(ctx, *req.PhoneNumber, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrPhoneNumberTaken
		}
		customer.PhoneNumber = *req.PhoneNumber
	}
	if req.CustomerName != nil {
		customer.CustomerName = *req.CustomerName
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Password != nil {
		hash, err := s.authSvc.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		customer.PasswordHash = hash
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}
