package vehicle

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyVehicleName   = errors.New("vehicle name cannot be empty")
	ErrNegativeDailyRate  = errors.New("daily rate cannot be negative")
	ErrVehicleNameTooLong = errors.New("vehicle name is too long (max 255 characters)")
)

const MaxVehicleNameLength = 255

// Vehicle is read-only to the booking core: the fleet is owned by the
// administrative surface, bookings only consume id and daily rate.
type Vehicle struct {
	id             uuid.UUID
	name           string
	category       string
	dailyRateCents int64
	available      bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewVehicle(id uuid.UUID, name, category string, dailyRateCents int64, available bool) (*Vehicle, error) {
	if err := validateVehicleName(name); err != nil {
		return nil, err
	}

	if dailyRateCents < 0 {
		return nil, ErrNegativeDailyRate
	}

	return &Vehicle{
		id:             id,
		name:           strings.TrimSpace(name),
		category:       strings.TrimSpace(category),
		dailyRateCents: dailyRateCents,
		available:      available,
	}, nil
}

func validateVehicleName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyVehicleName
	}
	if len(name) > MaxVehicleNameLength {
		return ErrVehicleNameTooLong
	}
	return nil
}

func (v *Vehicle) ID() uuid.UUID         { return v.id }
func (v *Vehicle) Name() string          { return v.name }
func (v *Vehicle) Category() string      { return v.category }
func (v *Vehicle) DailyRateCents() int64 { return v.dailyRateCents }
func (v *Vehicle) IsAvailable() bool     { return v.available }
func (v *Vehicle) CreatedAt() time.Time  { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time  { return v.updatedAt }
