package cart

import (
	"testing"

	"github.com/mhanac/storefront-backend/internal/catalog"
	"github.com/mhanac/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

func fixtureProduct(id string, price int64) catalog.Product {
	return catalog.Product{
		ID:       id,
		Region:   enums.RegionUS,
		Category: enums.CategoryElectronics,
		Title:    catalog.Title{enums.LanguageEN: "Fixture " + id},
		Price:    decimal.NewFromInt(price),
		Currency: enums.CurrencyUSD,
	}
}

func TestAddMergesByProductID(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	p1 := fixtureProduct("p1", 30)
	p2 := fixtureProduct("p2", 5)

	c.Add(p1, 2)
	c.Add(p1, 3)
	c.Add(p2, 1)

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].ProductID != "p1" || items[0].Quantity != 5 {
		t.Fatalf("p1 line = %+v", items[0])
	}
	if c.Count() != 6 {
		t.Fatalf("count = %d", c.Count())
	}
	if !c.Open() {
		t.Fatal("add must open the review flag")
	}
}

func TestAddClampsQuantity(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	c.Add(fixtureProduct("p1", 10), 0)
	c.Add(fixtureProduct("p2", 10), -4)
	if c.Count() != 2 {
		t.Fatalf("count = %d, want each clamped to 1", c.Count())
	}
}

func TestSubtotalUsesSnapshotPrice(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	p := fixtureProduct("p1", 30)
	c.Add(p, 2)

	// Later catalog price changes must not reprice the line.
	p.Price = decimal.NewFromInt(99)
	c.Add(fixtureProduct("p2", 5), 4)

	want := decimal.NewFromInt(80) // 2*30 + 4*5
	if !c.Subtotal().Equal(want) {
		t.Fatalf("subtotal = %s, want %s", c.Subtotal(), want)
	}
	if c.Count() != 6 {
		t.Fatalf("count = %d", c.Count())
	}
}

func TestRemoveAndSetQuantity(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	c.Add(fixtureProduct("p1", 10), 1)
	c.Add(fixtureProduct("p2", 20), 1)

	c.SetQuantity("p1", 7)
	c.SetQuantity("p1", -3)
	c.SetQuantity("ghost", 9)
	c.Remove("p2")
	c.Remove("ghost")

	items := c.Items()
	if len(items) != 1 || items[0].ProductID != "p1" || items[0].Quantity != 1 {
		t.Fatalf("items = %+v", items)
	}
}

func TestClearKeepsVisibilityFlag(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	c.Add(fixtureProduct("p1", 10), 1)
	c.Clear()
	if c.Count() != 0 || len(c.Items()) != 0 {
		t.Fatal("clear left items behind")
	}
	if !c.Open() {
		t.Fatal("clear must not close the review flag")
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	c.Add(fixtureProduct("p1", 30), 2)
	c.Add(fixtureProduct("p2", 5), 1)

	raw, err := c.MarshalItems()
	if err != nil {
		t.Fatal(err)
	}

	got := Restore(raw, true)
	if got.Count() != 3 || !got.Open() {
		t.Fatalf("restored cart count=%d open=%v", got.Count(), got.Open())
	}
	if !got.Subtotal().Equal(decimal.NewFromInt(65)) {
		t.Fatalf("restored subtotal = %s", got.Subtotal())
	}
}

func TestRestoreCorruptPayloadStartsEmpty(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "not-json", `{"items": 1}`, `[{"product_id": "", "quantity": 0}]`} {
		c := Restore(raw, false)
		if c.Count() != 0 {
			t.Fatalf("Restore(%q) not empty", raw)
		}
	}
}
