package domain

import (
	"github.com/shopspring/decimal"
)

// CategorySummary contains the aggregated sales data of one product category
type CategorySummary struct {
	Category          string          `json:"category"`
	TotalUnitPrice    decimal.Decimal `json:"total_unit_price"`
	TotalShippingCost decimal.Decimal `json:"total_shipping_cost"`
	RecordCount       int             `json:"record_count"`
}

// SalesSummary is the aggregate table: one entry per category, in the order
// each category was first seen in the raw record set.
type SalesSummary struct {
	Categories []CategorySummary `json:"categories"`

	index map[string]int
}

// NewSalesSummary creates an empty aggregate table
func NewSalesSummary() *SalesSummary {
	return &SalesSummary{index: make(map[string]int)}
}

// Add folds one record into its category entry, creating the entry on first sight.
// Uncategorized records are ignored.
func (s *SalesSummary) Add(r SalesRecord) {
	if !r.Categorized() {
		return
	}
	if s.index == nil {
		s.reindex()
	}
	i, ok := s.index[r.Category]
	if !ok {
		i = len(s.Categories)
		s.index[r.Category] = i
		s.Categories = append(s.Categories, CategorySummary{
			Category:          r.Category,
			TotalUnitPrice:    decimal.Zero,
			TotalShippingCost: decimal.Zero,
		})
	}
	c := &s.Categories[i]
	c.TotalUnitPrice = c.TotalUnitPrice.Add(r.UnitPrice)
	c.TotalShippingCost = c.TotalShippingCost.Add(r.ShippingCost)
	c.RecordCount++
}

// Lookup returns the entry for a category
func (s *SalesSummary) Lookup(category string) (CategorySummary, bool) {
	if s == nil {
		return CategorySummary{}, false
	}
	if s.index == nil {
		s.reindex()
	}
	i, ok := s.index[category]
	if !ok {
		return CategorySummary{}, false
	}
	return s.Categories[i], true
}

// Len returns the number of categories
func (s *SalesSummary) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Categories)
}

// Totals sums both aggregate columns across all categories.
func (s *SalesSummary) Totals() (unitPrice, shippingCost decimal.Decimal) {
	unitPrice, shippingCost = decimal.Zero, decimal.Zero
	if s == nil {
		return
	}
	for _, c := range s.Categories {
		unitPrice = unitPrice.Add(c.TotalUnitPrice)
		shippingCost = shippingCost.Add(c.TotalShippingCost)
	}
	return
}

func (s *SalesSummary) reindex() {
	s.index = make(map[string]int, len(s.Categories))
	for i, c := range s.Categories {
		s.index[c.Category] = i
	}
}
