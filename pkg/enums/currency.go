package enums

import "fmt"

// Currency represents supported monetary denominations for catalog prices.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyHTG Currency = "HTG"
)

var validCurrencies = []Currency{
	CurrencyUSD,
	CurrencyHTG,
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}

// IsValid reports whether the currency is recognized.
func (c Currency) IsValid() bool {
	for _, candidate := range validCurrencies {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCurrency converts a raw string into a Currency.
func ParseCurrency(value string) (Currency, error) {
	for _, candidate := range validCurrencies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid currency %q", value)
}

// CurrencyForRegion returns the currency label fixed by catalog construction.
func CurrencyForRegion(region Region) Currency {
	if region == RegionHaiti {
		return CurrencyHTG
	}
	return CurrencyUSD
}
