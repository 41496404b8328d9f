package cart

import (
	"github.com/shopspring/decimal"

	cartdto "github.com/mhanac/storefront-backend/api/controllers/cart/dto"
	"github.com/mhanac/storefront-backend/internal/catalog"
	cartsvc "github.com/mhanac/storefront-backend/internal/cart"
	"github.com/mhanac/storefront-backend/pkg/enums"
)

func newCartView(c *cartsvc.Cart, lang enums.Language) cartdto.CartView {
	lines := c.Items()
	items := make([]cartdto.CartItemView, 0, len(lines))
	currency := enums.CurrencyUSD
	for i, line := range lines {
		if i == 0 {
			currency = line.Product.Currency
		}
		lineTotal := line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, cartdto.CartItemView{
			ProductID: line.ProductID,
			Title:     line.Product.Title.For(lang),
			Quantity:  line.Quantity,
			UnitPrice: catalog.FormatMoney(line.Product.Price, line.Product.Currency),
			LineTotal: catalog.FormatMoney(lineTotal, line.Product.Currency),
			Currency:  line.Product.Currency.String(),
			Image:     line.Product.Image,
		})
	}

	return cartdto.CartView{
		Items:    items,
		Count:    c.Count(),
		Subtotal: catalog.FormatMoney(c.Subtotal(), currency),
		Open:     c.Open(),
	}
}
