package console

import (
	"context"

	"github.com/feastly/admin-console/internal/model"
)

// PaymentFilter narrows the payment list. Status and method are also passed
// upstream so the backend can narrow early; the local pass keeps the result
// deterministic regardless of what the backend honored.
type PaymentFilter struct {
	Search string
	Status string
	Method string
}

// PaymentCounts are the aggregates shown above the payment table.
type PaymentCounts struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Failed    int     `json:"failed"`
	Refunded  int     `json:"refunded"`
	Volume    float64 `json:"volume"`
}

// PaymentPage is the rendered payment list plus its aggregates.
type PaymentPage struct {
	Items  []model.Payment `json:"items"`
	Counts PaymentCounts   `json:"counts"`
}

// Payments fetches the payment list and filters it in memory.
func (s *Service) Payments(ctx context.Context, filter PaymentFilter) (PaymentPage, error) {
	data, err := s.data()
	if err != nil {
		return PaymentPage{}, err
	}
	all, err := data.ListPayments(ctx, normalizeEnum(filter.Status), normalizeEnum(filter.Method))
	if err != nil {
		return PaymentPage{}, err
	}

	page := PaymentPage{Items: []model.Payment{}}
	for _, p := range all {
		page.Counts.Total++
		switch p.Status {
		case model.TxnCompleted:
			page.Counts.Completed++
			page.Counts.Volume += p.Amount
		case model.TxnFailed:
			page.Counts.Failed++
		case model.TxnRefunded:
			page.Counts.Refunded++
		}
		if paymentMatches(p, filter) {
			page.Items = append(page.Items, p)
		}
	}
	s.record(ctx, "console.payments.list", map[string]any{"visible": len(page.Items)})
	return page, nil
}

func paymentMatches(p model.Payment, filter PaymentFilter) bool {
	if !searchMatches(filter.Search, p.TransactionID, p.OrderNumber, p.Customer.Name, p.Restaurant.Name) {
		return false
	}
	if !enumMatches(filter.Status, p.Status) {
		return false
	}
	return enumMatches(filter.Method, p.Method)
}

// normalizeEnum maps the "no constraint" sentinel to the empty string the
// stores expect.
func normalizeEnum(value string) string {
	if value == "all" {
		return ""
	}
	return value
}
