package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrReturnBeforePickup = errors.New("return date cannot be before pickup date")
	ErrMissingDates       = errors.New("pickup and return dates are required")
	ErrEmptyCustomerName  = errors.New("customer name cannot be empty")
	ErrEmptyCustomerPhone = errors.New("customer phone cannot be empty")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrNegativeMoney      = errors.New("money cannot be negative")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether the trimmed value passes the same shape
// check NewCustomer applies.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

const hoursPerDay = 24

// DateRange is the rental period. Equal pickup and return dates are
// allowed and charged as a single day.
type DateRange struct {
	pickup time.Time
	ret    time.Time
}

func NewDateRange(pickup, ret time.Time) (DateRange, error) {
	if pickup.IsZero() || ret.IsZero() {
		return DateRange{}, ErrMissingDates
	}
	if ret.Before(pickup) {
		return DateRange{}, ErrReturnBeforePickup
	}
	return DateRange{pickup: pickup, ret: ret}, nil
}

func (d DateRange) Pickup() time.Time {
	return d.pickup
}

func (d DateRange) Return() time.Time {
	return d.ret
}

// Days is the chargeable day count: the elapsed duration rounded up to
// whole days, floored at 1. The floor is business policy, not input
// hygiene: a same-day rental is a one-day charge, never a free one.
func (d DateRange) Days() int64 {
	hours := d.ret.Sub(d.pickup).Hours()
	days := int64(hours / hoursPerDay)
	if hours > float64(days*hoursPerDay) {
		days++
	}
	if days <= 0 {
		days = 1
	}
	return days
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Euros() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Customer holds the contact fields collected on submission, trimmed
// and shape-checked.
type Customer struct {
	name  string
	email string
	phone string
}

func NewCustomer(name, email, phone string) (Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return Customer{}, ErrEmptyCustomerName
	}
	if !emailRegex.MatchString(email) {
		return Customer{}, ErrInvalidEmail
	}
	if phone == "" {
		return Customer{}, ErrEmptyCustomerPhone
	}

	return Customer{name: name, email: email, phone: phone}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }
func (c Customer) Phone() string { return c.phone }

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
