package storefront

import (
	"github.com/mhanac/storefront-backend/internal/catalog"
	"github.com/mhanac/storefront-backend/internal/i18n"
	"github.com/mhanac/storefront-backend/pkg/enums"
)

// View is the JSON payload behind every storefront page: the settled
// selection, the region's category rail, the product grid, and the
// new-arrival rail.
type View struct {
	Region     string         `json:"region"`
	Language   string         `json:"language"`
	Category   string         `json:"category"`
	Search     string         `json:"search,omitempty"`
	Sort       string         `json:"sort"`
	Categories []CategoryView `json:"categories"`
	Products   []ProductView  `json:"products"`
	NewRail    []ProductView  `json:"new_arrivals"`
}

type CategoryView struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type ProductView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
	Image    string `json:"image,omitempty"`
	IsNew    bool   `json:"is_new,omitempty"`
}

func newProductView(p catalog.Product, lang enums.Language) ProductView {
	return ProductView{
		ID:       p.ID,
		Title:    p.Title.For(lang),
		Category: p.Category.String(),
		Price:    catalog.FormatMoney(p.Price, p.Currency),
		Currency: p.Currency.String(),
		Image:    p.Image,
		IsNew:    p.IsNew,
	}
}

func newProductViews(list []catalog.Product, lang enums.Language) []ProductView {
	out := make([]ProductView, 0, len(list))
	for _, p := range list {
		out = append(out, newProductView(p, lang))
	}
	return out
}

func newCategoryViews(list []catalog.Category, lang enums.Language, tr *i18n.Translator) []CategoryView {
	out := make([]CategoryView, 0, len(list))
	for _, c := range list {
		out = append(out, CategoryView{
			Key:   c.Key.String(),
			Label: tr.CategoryLabel(lang, c.Key),
		})
	}
	return out
}
