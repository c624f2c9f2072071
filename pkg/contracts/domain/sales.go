package domain

import (
	"github.com/shopspring/decimal"
)

// SalesRecord is one row of the source workbook after schema mapping.
// Later stages only ever see these fields, never the raw header strings.
//
// Usage:
//   record := SalesRecord{
//       Row:          0,
//       Category:     "Furniture",
//       UnitPrice:    decimal.RequireFromString("100"),
//       ShippingCost: decimal.RequireFromString("10"),
//   }
type SalesRecord struct {
	// Row is the zero-based index of the data row in sheet order.
	// It is the x value of the sales trend chart.
	Row int `json:"row"`

	// Category is the product category, used as the grouping key.
	// It is empty when the workbook cell was blank.
	Category string `json:"product_category"`

	// UnitPrice is the sale amount of the row in dollars.
	UnitPrice decimal.Decimal `json:"unit_price"`

	// ShippingCost is the shipping cost of the row in dollars.
	ShippingCost decimal.Decimal `json:"shipping_cost"`
}

// Categorized reports whether the record has a category to be grouped under.
func (r SalesRecord) Categorized() bool {
	return r.Category != ""
}

// SalesDataset is the raw record set loaded from a workbook.
// It is built once by the loader and not modified afterwards. Records
// without a category are kept: they belong to the sales trend but not to
// any category.
type SalesDataset struct {
	Source  string        `json:"source"`
	Sheet   string        `json:"sheet"`
	Records []SalesRecord `json:"records"`
}

// Len returns the number of records.
func (d *SalesDataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Categories returns the distinct categories in first-seen order,
// leaving out uncategorized records.
func (d *SalesDataset) Categories() []string {
	if d == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(d.Records))
	var out []string
	for _, r := range d.Records {
		if !r.Categorized() {
			continue
		}
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	return out
}

// Totals sums unit price and shipping cost over the categorized records,
// the same rows the summary totals cover.
func (d *SalesDataset) Totals() (unitPrice, shippingCost decimal.Decimal) {
	unitPrice, shippingCost = decimal.Zero, decimal.Zero
	if d == nil {
		return
	}
	for _, r := range d.Records {
		if !r.Categorized() {
			continue
		}
		unitPrice = unitPrice.Add(r.UnitPrice)
		shippingCost = shippingCost.Add(r.ShippingCost)
	}
	return
}
