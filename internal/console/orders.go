package console

import (
	"context"

	"github.com/feastly/admin-console/internal/model"
)

// OrderFilter narrows the order list.
type OrderFilter struct {
	Search        string
	Status        string
	PaymentStatus string
}

// OrderCounts are the aggregates shown above the order table.
type OrderCounts struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Delivered int `json:"delivered"`
	Cancelled int `json:"cancelled"`
}

// OrderPage is the rendered order list plus its aggregates.
type OrderPage struct {
	Items  []model.Order `json:"items"`
	Counts OrderCounts   `json:"counts"`
}

// Orders fetches the order list and filters it in memory.
func (s *Service) Orders(ctx context.Context, filter OrderFilter) (OrderPage, error) {
	data, err := s.data()
	if err != nil {
		return OrderPage{}, err
	}
	all, err := data.ListOrders(ctx)
	if err != nil {
		return OrderPage{}, err
	}

	page := OrderPage{Items: []model.Order{}}
	for _, o := range all {
		page.Counts.Total++
		switch o.Status {
		case model.OrderDelivered:
			page.Counts.Delivered++
		case model.OrderCancelled:
			page.Counts.Cancelled++
		default:
			page.Counts.Active++
		}
		if orderMatches(o, filter) {
			page.Items = append(page.Items, o)
		}
	}
	s.record(ctx, "console.orders.list", map[string]any{"visible": len(page.Items)})
	return page, nil
}

func orderMatches(o model.Order, filter OrderFilter) bool {
	if !searchMatches(filter.Search, o.OrderNumber, o.Customer.Name, o.Restaurant.Name) {
		return false
	}
	if !enumMatches(filter.Status, o.Status) {
		return false
	}
	return enumMatches(filter.PaymentStatus, o.PaymentStatus)
}

// Order fetches a single order for the details dialog.
func (s *Service) Order(ctx context.Context, id string) (model.Order, error) {
	data, err := s.data()
	if err != nil {
		return model.Order{}, err
	}
	return data.GetOrder(ctx, id)
}

// AdvanceOrder validates and applies a status change.
func (s *Service) AdvanceOrder(ctx context.Context, id, status string) (model.Order, error) {
	data, err := s.data()
	if err != nil {
		return model.Order{}, err
	}
	if err := s.opts.Validator.Validate(DraftOrder, map[string]any{"status": status}); err != nil {
		return model.Order{}, err
	}
	return data.UpdateOrderStatus(ctx, id, status)
}
