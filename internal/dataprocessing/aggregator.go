package dataprocessing

import (
	"github.com/premlamishra/pdf-report-generator-fpdf/pkg/contracts/domain"
)

// Aggregate groups the dataset by category, in first-seen order, summing
// unit price and shipping cost.
func Aggregate(dataset *domain.SalesDataset) *domain.SalesSummary {
	summary := domain.NewSalesSummary()
	if dataset == nil {
		return summary
	}
	for _, r := range dataset.Records {
		summary.Add(r)
	}
	return summary
}
