//go:build unit || e2e

package builder

import (
	"time"

	domuser "biryani-club/internal/domain/user"
	reqdto "biryani-club/internal/handler/dto/request"
	"biryani-club/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	Password     string
	PasswordHash string
	FullName     string
	Phone        string
	Role         string
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Password:     "password123",
		PasswordHash: "$2a$10$hashedpasswordhashedpassw",
		FullName:     "Test Customer",
		Phone:        "9876543210",
		Role:         "customer",
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := domuser.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(email, u.PasswordHash, u.FullName, u.Phone, role), nil
}

func (u *UserBuilder) BuildReadModel() *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Role:      u.Role,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

func (u *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildRegisterRequestDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    u.Email,
		Password: u.Password,
		FullName: u.FullName,
		Phone:    u.Phone,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPassword(password string) *UserBuilder {
	u.Password = password
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithFullName(name string) *UserBuilder {
	u.FullName = name
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = phone
	return u
}

func (u *UserBuilder) Inactive() *UserBuilder {
	u.IsActive = false
	return u
}
