package console

import (
	"context"

	"github.com/feastly/admin-console/internal/model"
)

// BannerFilter narrows the banner list. Zero values admit everything.
type BannerFilter struct {
	Search    string
	Placement string
	Status    string // "active" | "inactive" | "" | "all"
}

// BannerCounts are the aggregates shown above the banner grid.
type BannerCounts struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Clicks      int `json:"clicks"`
	Impressions int `json:"impressions"`
}

// BannerPage is the rendered banner list plus its aggregates.
type BannerPage struct {
	Items  []model.Banner `json:"items"`
	Counts BannerCounts   `json:"counts"`
}

// Banners fetches the full banner list and filters it in memory.
func (s *Service) Banners(ctx context.Context, filter BannerFilter) (BannerPage, error) {
	data, err := s.data()
	if err != nil {
		return BannerPage{}, err
	}
	all, err := data.ListBanners(ctx)
	if err != nil {
		return BannerPage{}, err
	}

	page := BannerPage{Items: []model.Banner{}}
	for _, b := range all {
		page.Counts.Total++
		if b.IsActive {
			page.Counts.Active++
		}
		page.Counts.Clicks += b.Clicks
		page.Counts.Impressions += b.Impressions
		if bannerMatches(b, filter) {
			page.Items = append(page.Items, b)
		}
	}
	s.record(ctx, "console.banners.list", map[string]any{"visible": len(page.Items)})
	return page, nil
}

func bannerMatches(b model.Banner, filter BannerFilter) bool {
	if !searchMatches(filter.Search, b.Title, b.Description) {
		return false
	}
	if !enumMatches(filter.Placement, b.Placement) {
		return false
	}
	status := "inactive"
	if b.IsActive {
		status = "active"
	}
	return enumMatches(filter.Status, status)
}

// SaveBanner validates the draft and creates or updates the banner.
func (s *Service) SaveBanner(ctx context.Context, banner model.Banner) (model.Banner, error) {
	data, err := s.data()
	if err != nil {
		return model.Banner{}, err
	}
	if err := s.opts.Validator.Validate(DraftBanner, banner); err != nil {
		return model.Banner{}, err
	}
	if banner.ID == "" {
		return data.CreateBanner(ctx, banner)
	}
	return data.UpdateBanner(ctx, banner)
}

// DeleteBanner removes the banner.
func (s *Service) DeleteBanner(ctx context.Context, id string) error {
	data, err := s.data()
	if err != nil {
		return err
	}
	return data.DeleteBanner(ctx, id)
}
