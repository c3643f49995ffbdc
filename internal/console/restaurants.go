package console

import (
	"context"

	"github.com/feastly/admin-console/internal/model"
)

// RestaurantFilter narrows the restaurant list.
type RestaurantFilter struct {
	Search string
	Status string
	City   string
}

// RestaurantCounts are the aggregates shown above the restaurant grid.
type RestaurantCounts struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Pending   int `json:"pending"`
	Suspended int `json:"suspended"`
}

// RestaurantPage is the rendered restaurant list plus its aggregates.
type RestaurantPage struct {
	Items  []model.Restaurant `json:"items"`
	Counts RestaurantCounts   `json:"counts"`
}

// Restaurants fetches the restaurant list and filters it in memory.
func (s *Service) Restaurants(ctx context.Context, filter RestaurantFilter) (RestaurantPage, error) {
	data, err := s.data()
	if err != nil {
		return RestaurantPage{}, err
	}
	all, err := data.ListRestaurants(ctx)
	if err != nil {
		return RestaurantPage{}, err
	}

	page := RestaurantPage{Items: []model.Restaurant{}}
	for _, r := range all {
		page.Counts.Total++
		switch r.Status {
		case model.RestaurantActive:
			page.Counts.Active++
		case model.RestaurantPending:
			page.Counts.Pending++
		case model.RestaurantSuspended:
			page.Counts.Suspended++
		}
		if restaurantMatches(r, filter) {
			page.Items = append(page.Items, r)
		}
	}
	s.record(ctx, "console.restaurants.list", map[string]any{"visible": len(page.Items)})
	return page, nil
}

func restaurantMatches(r model.Restaurant, filter RestaurantFilter) bool {
	if !searchMatches(filter.Search, r.Name, r.Description, r.Owner.Name) {
		return false
	}
	if !enumMatches(filter.Status, r.Status) {
		return false
	}
	return enumMatches(filter.City, r.Address.City)
}

// Restaurant fetches one restaurant to seed the edit dialog.
func (s *Service) Restaurant(ctx context.Context, id string) (model.Restaurant, error) {
	data, err := s.data()
	if err != nil {
		return model.Restaurant{}, err
	}
	return data.GetRestaurant(ctx, id)
}

// UpdateRestaurant validates the staged draft and persists it.
func (s *Service) UpdateRestaurant(ctx context.Context, restaurant model.Restaurant) (model.Restaurant, error) {
	data, err := s.data()
	if err != nil {
		return model.Restaurant{}, err
	}
	if err := s.opts.Validator.Validate(DraftRestaurant, restaurant); err != nil {
		return model.Restaurant{}, err
	}
	return data.UpdateRestaurant(ctx, restaurant)
}
