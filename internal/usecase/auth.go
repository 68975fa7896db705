package usecase

import (
	"context"
	"errors"

	"biryani-club/internal/domain/user"
	"biryani-club/internal/infra"
	"biryani-club/internal/pkg/errs"
	"biryani-club/internal/pkg/jwt"
	"biryani-club/internal/pkg/password"
	"biryani-club/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrEmailTaken         = errors.New("email already registered")
	ErrTokenGeneration    = errors.New("token generation failed")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type RegisterParams struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error)
	Register(ctx context.Context, params RegisterParams) (string, *readmodel.AuthorizedUserRM, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error) {
	userRM, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, errs.Wrap(err, "failed to find user")
	}

	if !userRM.IsActive {
		return "", nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(userRM.Role)
	if err != nil {
		return "", nil, errs.Wrap(err, "stored role is invalid")
	}

	token, err := a.jwtService.GenerateToken(userRM.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	if err := a.userRepo.UpdateLastLogin(ctx, userRM.ID); err != nil {
		return "", nil, errs.Wrap(err, "failed to update last login")
	}

	return token, userRM, nil
}

func (a *authUseCaseImpl) Register(ctx context.Context, params RegisterParams) (string, *readmodel.AuthorizedUserRM, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return "", nil, err
	}
	if _, err := user.NewPassword(params.Password); err != nil {
		return "", nil, err
	}

	hash, err := password.HashPassword(params.Password)
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to hash password")
	}

	newUser := user.NewUser(email, hash, params.FullName, params.Phone, user.RoleCustomer)
	if err := a.userRepo.Create(ctx, newUser); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, errs.Wrap(err, "failed to create user")
	}

	token, err := a.jwtService.GenerateToken(newUser.ID(), newUser.Role())
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	userRM, err := a.userRepo.FindByID(ctx, newUser.ID())
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to load created user")
	}

	return token, userRM, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	userRM, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}

	if !userRM.IsActive {
		return nil, ErrUserInactive
	}

	return userRM, nil
}
