package services

import (
	"context"

	"luxehub-properties/internal/auth"
	apperrors "luxehub-properties/internal/errors"
	"luxehub-properties/internal/models"
	"luxehub-properties/internal/repositories"
	"luxehub-properties/internal/validators"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo      repositories.UserRepository
	validator validators.UserValidator
	jwtSecret string
}

func NewUserService(repo repositories.UserRepository, validator validators.UserValidator, jwtSecret string) *UserService {
	return &UserService{repo: repo, validator: validator, jwtSecret: jwtSecret}
}

func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if err := s.validator.ValidateRegister(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflict("a user with email %q already exists", req.Email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       primitive.NewObjectID(),
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hashed),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*auth.TokenDetails, error) {
	if err := s.validator.ValidateLogin(req.Email, req.Password); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewValidation("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.NewValidation("invalid email or password")
	}

	return auth.GenerateJWT(user.ID.Hex(), user.FullName, user.Email, s.jwtSecret)
}
