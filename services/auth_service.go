package services

import (
	"context"
	"fmt"

	"ecommerce-api/models"
	"ecommerce-api/repositories"
	"ecommerce-api/utils"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

type AuthService struct {
	users UserStore
}

func NewAuthService() *AuthService {
	return &AuthService{
		users: repositories.NewUserRepository(),
	}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "customer"
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid email or password", models.ErrUnauthorized)
	}

	ok, err := utils.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil || !ok {
		return nil, fmt.Errorf("%w: invalid email or password", models.ErrUnauthorized)
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

func (s *AuthService) Profile(ctx context.Context, userID int) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}
