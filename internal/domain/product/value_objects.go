package product

import (
	"strings"
)

const (
	MaxNameLength        = 120
	MaxDescriptionLength = 2000
)

// Price is an amount in minor currency units (pesewas for GHS).
type Price struct {
	minor    int64
	currency string
}

func NewPrice(minor int64, currency string) (Price, error) {
	if minor <= 0 {
		return Price{}, ErrInvalidPrice
	}
	c := strings.ToLower(strings.TrimSpace(currency))
	if len(c) != 3 {
		return Price{}, ErrInvalidCurrency
	}
	for _, r := range c {
		if r < 'a' || r > 'z' {
			return Price{}, ErrInvalidCurrency
		}
	}
	return Price{minor: minor, currency: c}, nil
}

func (p Price) Minor() int64     { return p.minor }
func (p Price) Currency() string { return p.currency }

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Name{}, ErrEmptyName
	}
	if len([]rune(t)) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }
