package catalog

import (
	"strings"

	"github.com/mhanac/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// FormatMoney renders a display price. USD amounts carry the symbol prefix,
// HTG the code suffix. Whole amounts drop the fraction.
//
// Example: FormatMoney(decimal.NewFromInt(4500), enums.CurrencyHTG) => "4,500 HTG"
func FormatMoney(amount decimal.Decimal, currency enums.Currency) string {
	body := thousandSep(amount)
	switch currency {
	case enums.CurrencyUSD:
		return "$" + body
	case enums.CurrencyHTG:
		return body + " HTG"
	default:
		return body + " " + currency.String()
	}
}

func thousandSep(d decimal.Decimal) string {
	s := d.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	head, tail, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, c := range head {
		if i != 0 && (len(head)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	out := b.String()
	if hasFrac {
		out += "." + tail
	}
	if neg {
		out = "-" + out
	}
	return out
}
