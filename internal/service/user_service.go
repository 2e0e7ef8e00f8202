package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/entity"
	"github.com/buwaneka-halpage/kandypack-logistics-platform/internal/repository"
)

var (
	ErrUserNameTaken = errors.New("user name already taken")
	ErrInvalidRole   = errors.New("invalid role")
)

// UserService manages staff accounts. Customer accounts live in
// CustomerService.
type UserService struct {
	userRepo *repository.UserRepository
	authSvc  *AuthService
}

func NewUserService(userRepo *repository.UserRepository, authSvc *AuthService) *UserService {
	return &UserService{userRepo: userRepo, authSvc: authSvc}
}

type CreateUserRequest struct {
	UserName string `json:"user_name" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

type UpdateUserRequest struct {
	UserName *string `json:"user_name"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

func validRole(role string) bool {
	switch role {
	case entity.RoleSystemAdmin, entity.RoleManagement, entity.RoleStoreManager,
		entity.RoleDriver, entity.RoleAssistant:
		return true
	}
	return false
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *UserService) ListByRole(ctx context.Context, role string) ([]entity.User, error) {
	return s.userRepo.FindByRole(ctx, role)
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*entity.User, error) {
	if !validRole(req.Role) {
		return nil, ErrInvalidRole
	}

	taken, err := s.userRepo.UserNameTaken(ctx, req.UserName, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUserNameTaken
	}

	hash, err := s.authSvc.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		UserID:       uuid.New().String(),
		UserName:     req.UserName,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, req UpdateUserRequest) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.UserName != nil && *req.UserName != user.UserName {
		taken, err := s.userRepo.UserNameTaken(ctx, *req.UserName, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrUserNameTaken
		}
		user.UserName = *req.UserName
	}
	if req.Password != nil {
		hash, err := s.authSvc.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if req.Role != nil {
		if !validRole(*req.Role) {
			return nil, ErrInvalidRole
		}
		user.Role = *req.Role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
