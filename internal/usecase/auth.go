package usecase

import (
	"context"
	"errors"

	"karoca-backend/internal/domain/staff"
	"karoca-backend/internal/pkg/jwt"
	"karoca-backend/internal/pkg/password"
	"karoca-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrStaffNotFound        = errors.New("staff member not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrStaffInactive        = errors.New("staff account is inactive")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type StaffRepository interface {
	FindByEmail(ctx context.Context, email staff.Email) (*queries.AuthorizedStaffView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedStaffView, error)
	UpdateLastLogin(ctx context.Context, staffID uuid.UUID) error
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials staff.Credentials) (string, *queries.AuthorizedStaffView, error)
	GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*queries.AuthorizedStaffView, error)
	ValidateToken(tokenString string) (uuid.UUID, staff.Role, error)
}

type authUseCaseImpl struct {
	staffRepo  StaffRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(staffRepo StaffRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		staffRepo:  staffRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials staff.Credentials) (string, *queries.AuthorizedStaffView, error) {
	staffView, err := a.validateStaff(ctx, credentials)
	if err != nil {
		return "", nil, err
	}

	role, err := staff.NewRole(staffView.Role)
	if err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(staffView.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	err = a.staffRepo.UpdateLastLogin(ctx, staffView.ID)
	if err != nil {
		return "", nil, err
	}

	return token, staffView, nil
}

func (a *authUseCaseImpl) validateStaff(ctx context.Context, credentials staff.Credentials) (*queries.AuthorizedStaffView, error) {
	staffView, hashedPassword, err := a.staffRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		return nil, ErrStaffNotFound
	}

	if staffView == nil {
		return nil, ErrStaffNotFound
	}

	if !staffView.IsActive {
		return nil, ErrStaffInactive
	}

	err = password.ComparePassword(hashedPassword, credentials.Password().Value())
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return staffView, nil
}

func (a *authUseCaseImpl) GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*queries.AuthorizedStaffView, error) {
	view, err := a.staffRepo.FindByID(ctx, staffID)
	if err != nil || view == nil {
		return nil, ErrStaffNotFound
	}

	if !view.IsActive {
		return nil, ErrStaffInactive
	}

	return view, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, staff.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.StaffID, role, nil
}
