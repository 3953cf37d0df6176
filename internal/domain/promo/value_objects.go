package promo

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidPromoCode       = errors.New("invalid promo code format")
	ErrInvalidDiscountPercent = errors.New("discount percentage must be between 0 and 100")
)

var promoCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Code is normalized at construction (trimmed, uppercased) so that the
// store can hold normalized values and lookup stays a plain equality check.
type Code string

func NewCode(code string) (Code, error) {
	code = Normalize(code)
	if !promoCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidPromoCode
	}
	return Code(code), nil
}

func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (c Code) String() string {
	return string(c)
}

type DiscountPercent int32

func NewDiscountPercent(percent int32) (DiscountPercent, error) {
	if percent < 0 || percent > 100 {
		return 0, ErrInvalidDiscountPercent
	}
	return DiscountPercent(percent), nil
}

func (d DiscountPercent) Value() int32 {
	return int32(d)
}

// Apply takes the percentage off the given amount using integer math,
// truncating toward zero. The result is never negative.
func (d DiscountPercent) Apply(amountCents int64) int64 {
	result := amountCents * int64(100-d) / 100
	if result < 0 {
		return 0
	}
	return result
}
