package service

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/itsmzaid/OLS-Backend/pkg/domain/model"
)

var ErrRegistrationFailed = errors.New("user registration failed")

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	PhoneNo  string
}

// ProfilePatch carries the optional fields of a partial profile update.
type ProfilePatch struct {
	Name    *string
	PhoneNo *string
}

type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*model.UserProfile, error)
	Login(ctx context.Context, email, password string) (*model.Credentials, error)
	RefreshToken(ctx context.Context, refreshToken string) (*model.Credentials, error)
	GetProfile(ctx context.Context, userID string) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (*model.UserProfile, error)
	Logout(ctx context.Context, userID string) error
	DeleteAccount(ctx context.Context, userID string) error
}

func NewUserService(provider model.IdentityProvider, users model.UserRepository, dispatcher EventDispatcher) UserService {
	return &userService{provider: provider, users: users, dispatcher: dispatcher}
}

type userService struct {
	provider   model.IdentityProvider
	users      model.UserRepository
	dispatcher EventDispatcher
}

func (s *userService) Register(ctx context.Context, input RegisterInput) (*model.UserProfile, error) {
	uid, err := s.provider.CreateUser(ctx, input.Name, input.Email, input.Password, input.PhoneNo)
	if err != nil {
		log.WithError(err).WithField("email", input.Email).Error("identity provider rejected registration")
		return nil, ErrRegistrationFailed
	}

	profile := &model.UserProfile{
		UserID:    uid,
		Name:      input.Name,
		Email:     input.Email,
		PhoneNo:   input.PhoneNo,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.Create(ctx, profile); err != nil {
		log.WithError(err).WithField("userId", uid).Error("profile persistence failed")
		return nil, ErrRegistrationFailed
	}

	if err := s.dispatcher.Dispatch(model.UserRegistered{UserID: uid, Email: input.Email}); err != nil {
		log.WithError(err).Error("failed to dispatch event")
	}

	return profile, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*model.Credentials, error) {
	return s.provider.SignIn(ctx, email, password)
}

func (s *userService) RefreshToken(ctx context.Context, refreshToken string) (*model.Credentials, error) {
	return s.provider.Refresh(ctx, refreshToken)
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	return s.users.Find(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (*model.UserProfile, error) {
	profile, err := s.users.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		profile.Name = *patch.Name
	}
	if patch.PhoneNo != nil {
		profile.PhoneNo = *patch.PhoneNo
	}

	if err := s.users.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *userService) Logout(ctx context.Context, userID string) error {
	return s.provider.RevokeTokens(ctx, userID)
}

func (s *userService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.provider.DeleteUser(ctx, userID); err != nil {
		return err
	}
	// The profile document goes with the account; a missing one is fine.
	if err := s.users.Delete(ctx, userID); err != nil && !errors.Is(err, model.ErrUserNotFound) {
		return err
	}
	return nil
}
