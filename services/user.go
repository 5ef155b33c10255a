package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/bhavanavimanjulkar2/Wanderlust/models"
	"github.com/bhavanavimanjulkar2/Wanderlust/repository"
)

// UserService covers signup and login; everything else about users is just
// ownership comparison elsewhere.
type UserService interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.User, error)
}

type UserServiceImpl struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{users: users}
}

func (s *UserServiceImpl) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if err != repository.ErrNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 14)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           primitive.NewObjectID(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err == repository.ErrNotFound {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
